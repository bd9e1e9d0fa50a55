package impl

import (
	"context"
	"log/slog"
	"strconv"
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

type gamificationService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	levels    *gamification.LevelTable
	notifier  usecase.NotificationUsecase
	logger    *slog.Logger
	now       func() time.Time
}

// GamificationServiceParams holds dependencies for GamificationService, injected by Fx.
type GamificationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Levels    *gamification.LevelTable
	Notifier  usecase.NotificationUsecase
	Logger    *slog.Logger
}

// NewGamificationService creates a new gamification service instance.
func NewGamificationService(params GamificationServiceParams) usecase.GamificationUsecase {
	return &gamificationService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		levels:    params.Levels,
		notifier:  params.Notifier,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *gamificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *gamificationService) GetProgress(ctx context.Context, userID uuid.UUID) (*usecase.PlayerProgress, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress, err := srv.levels.ProgressInLevel(user.XP)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	badges := user.Badges
	if badges == nil {
		badges = []string{}
	}

	return &usecase.PlayerProgress{
		XP:            user.XP,
		TotalXPEarned: user.TotalXPEarned,
		Level:         progress.Level,
		MaxLevel:      srv.levels.MaxLevel(),
		Title:         gamification.TitleForLevel(progress.Level),
		Current:       progress.Current,
		Max:           progress.Max,
		Percentage:    progress.Percentage,
		XPToNextLevel: progress.ToNext,
		Badges:        badges,
	}, nil
}

func (srv *gamificationService) GetMissions(ctx context.Context, userID uuid.UUID) (*entity.UserMissions, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &user.Missions, nil
}

// ClaimMission locks the user row so two concurrent claims cannot both pay out.
func (srv *gamificationService) ClaimMission(ctx context.Context, userID uuid.UUID, missionID string) (*usecase.ClaimResult, error) {
	var result *usecase.ClaimResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage(userID.String())
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock user")
		}

		mission := user.Missions.Find(missionID)
		switch {
		case mission == nil:
			return domainerrors.ErrMissionNotFound.WrapMessage(missionID)
		case mission.Claimed:
			return domainerrors.ErrMissionAlreadyClaimed.WrapMessage(missionID)
		case !mission.Completed:
			return domainerrors.ErrMissionNotClaimable.WrapMessage(missionID)
		}

		mission.Claimed = true
		change, err := srv.levels.AwardXP(user, mission.Rewards.XP)
		if err != nil {
			return errors.WithStack(err)
		}
		badge := ""
		if user.AddBadge(mission.Rewards.Badge) {
			badge = mission.Rewards.Badge
		}
		user.UpdatedAt = srv.now()

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to save claimed mission")
		}

		result = &usecase.ClaimResult{
			Mission:   *mission,
			XPAwarded: mission.Rewards.XP,
			Badge:     badge,
			Level:     change.After,
			LeveledUp: change.LeveledUp(),
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Mission claimed",
		slog.Any("userID", userID),
		slog.String("missionID", missionID),
		slog.Int64("xp", result.XPAwarded),
	)

	if result.LeveledUp {
		srv.notifyLevelUp(ctx, userID, result.Level)
	}

	return result, nil
}

func (srv *gamificationService) notifyLevelUp(ctx context.Context, userID uuid.UUID, level int) {
	_, err := srv.notifier.Notify(ctx, levelUpNotification(userID, level))
	if err != nil {
		srv.log(ctx).Warn("Failed to send level up notification", slog.Any("userID", userID), slog.Any("error", err))
	}
}

func (srv *gamificationService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound.WrapMessage(userID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func levelUpNotification(userID uuid.UUID, level int) *usecase.NotifyInput {
	title := gamification.TitleForLevel(level)

	return &usecase.NotifyInput{
		UserID: userID,
		Kind:   entity.NotificationLevelUp,
		Title:  "Level up!",
		Body:   "You reached level " + strconv.Itoa(level) + ": " + title,
		Data: map[string]string{
			"level": strconv.Itoa(level),
			"title": title,
		},
	}
}
