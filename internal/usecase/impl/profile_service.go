package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "companion/internal/delivery/context"
	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/gamification"
	"companion/internal/domain/repository"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	userRepo       repository.UserRepository
	pnjProfileRepo repository.PNJProfileRepository
	levels         *gamification.LevelTable
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	PNJProfileRepo repository.PNJProfileRepository
	Levels         *gamification.LevelTable
	Logger         *slog.Logger
}

// NewProfileService creates a new profile service instance.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:       params.UserRepo,
		pnjProfileRepo: params.PNJProfileRepo,
		levels:         params.Levels,
		logger:         params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CompleteOnboarding creates the account on first call and updates the display
// name afterwards. The role is fixed once chosen.
func (srv *profileService) CompleteOnboarding(ctx context.Context, userID uuid.UUID, email string, input *usecase.CompleteOnboardingInput) (*entity.User, error) {
	if !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("role must be player or pnj")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return srv.createUser(ctx, userID, email, input)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.Role != input.Role {
		return nil, domainerrors.ErrConflict.WrapMessage("role cannot be changed after onboarding")
	}

	user.DisplayName = strings.TrimSpace(input.DisplayName)
	user.OnboardingCompleted = true
	user.UpdatedAt = time.Now()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

func (srv *profileService) createUser(ctx context.Context, userID uuid.UUID, email string, input *usecase.CompleteOnboardingInput) (*entity.User, error) {
	level, err := srv.levels.LevelFromXP(0)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	now := time.Now()
	user := &entity.User{
		ID:                  userID,
		Email:               email,
		DisplayName:         strings.TrimSpace(input.DisplayName),
		Role:                input.Role,
		OnboardingCompleted: true,
		Level:               level,
		Badges:              []string{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage(email)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User onboarded", slog.Any("userID", user.ID), slog.String("role", user.Role.String()))

	return user, nil
}

// UpsertPNJProfile is reserved to onboarded companions.
func (srv *profileService) UpsertPNJProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpsertPNJProfileInput) (*entity.PNJProfile, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.OnboardingCompleted {
		return nil, domainerrors.ErrOnboardingRequired
	}
	if user.Role != entity.RolePNJ {
		return nil, domainerrors.ErrRoleRequired.WrapMessage("only companions have a bookable profile")
	}
	if input.HourlyRate <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("hourly rate must be positive")
	}

	profile, err := srv.pnjProfileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrPNJProfileNotFound) {
		profile = &entity.PNJProfile{ID: uuid.New(), UserID: userID, CreatedAt: time.Now()}
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to find pnj profile")
	}

	profile.HourlyRate = input.HourlyRate
	profile.Bio = strings.TrimSpace(input.Bio)
	profile.Activities = normalizeActivities(input.Activities)
	profile.UpdatedAt = time.Now()

	if err := srv.pnjProfileRepo.Upsert(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save pnj profile")
	}

	return profile, nil
}

func (srv *profileService) GetPNJProfile(ctx context.Context, profileID uuid.UUID) (*entity.PNJProfile, error) {
	profile, err := srv.pnjProfileRepo.FindByID(ctx, profileID)
	if errors.Is(err, repository.ErrPNJProfileNotFound) {
		return nil, domainerrors.ErrPNJProfileNotFound.WrapMessage(profileID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pnj profile")
	}

	return profile, nil
}

func (srv *profileService) GetMe(ctx context.Context, userID uuid.UUID) (*usecase.Me, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	me := &usecase.Me{User: user}
	if user.Role != entity.RolePNJ {
		return me, nil
	}

	profile, err := srv.pnjProfileRepo.FindByUserID(ctx, userID)
	switch {
	case errors.Is(err, repository.ErrPNJProfileNotFound):
	case err != nil:
		return nil, errors.Wrap(err, "failed to find pnj profile")
	default:
		me.PNJProfile = profile
	}

	return me, nil
}

func (srv *profileService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage(userID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// normalizeActivities lowercases, trims and de-duplicates, keeping first-seen order.
func normalizeActivities(activities []string) []string {
	result := make([]string, 0, len(activities))
	for _, activity := range activities {
		activity = strings.ToLower(strings.TrimSpace(activity))
		if activity == "" || slices.Contains(result, activity) {
			continue
		}
		result = append(result, activity)
	}

	return result
}
