package impl

import (
	"context"
	"testing"

	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/gamification"
	"companion/internal/domain/repository"
	mockRepo "companion/internal/mocks/repository"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service        usecase.ProfileUsecase
	userRepo       *mockRepo.MockUserRepository
	pnjProfileRepo *mockRepo.MockPNJProfileRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	pnjProfileRepo := mockRepo.NewMockPNJProfileRepository(t)

	return profileServiceFixtures{
		service: NewProfileService(ProfileServiceParams{
			UserRepo:       userRepo,
			PNJProfileRepo: pnjProfileRepo,
			Levels:         gamification.DefaultLevelTable(),
			Logger:         newDiscardLogger(),
		}),
		userRepo:       userRepo,
		pnjProfileRepo: pnjProfileRepo,
	}
}

func TestProfileService_CompleteOnboarding_CreatesUser(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == userID && u.OnboardingCompleted && u.Level == 1 && u.XP == 0
		})).
		Return(nil)

	user, err := fx.service.CompleteOnboarding(ctx, userID, "ana@example.com", &usecase.CompleteOnboardingInput{
		DisplayName: "  Ana ",
		Role:        entity.RolePlayer,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.DisplayName)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, entity.RolePlayer, user.Role)
}

func TestProfileService_CompleteOnboarding_RoleIsFixed(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RolePlayer}, nil)

	_, err := fx.service.CompleteOnboarding(ctx, userID, "", &usecase.CompleteOnboardingInput{DisplayName: "x", Role: entity.RolePNJ})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestProfileService_CompleteOnboarding_InvalidRole(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.CompleteOnboarding(context.Background(), uuid.New(), "", &usecase.CompleteOnboardingInput{Role: "admin"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UpsertPNJProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RolePNJ, OnboardingCompleted: true}, nil)
	fx.pnjProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrPNJProfileNotFound)
	fx.pnjProfileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.PNJProfile")).Return(nil)

	profile, err := fx.service.UpsertPNJProfile(ctx, userID, &usecase.UpsertPNJProfileInput{
		HourlyRate: 2500,
		Bio:        "Board games and hiking",
		Activities: []string{"Hiking", "hiking ", "", "board games"},
	})
	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.EqualValues(t, 2500, profile.HourlyRate)
	assert.Equal(t, []string{"hiking", "board games"}, profile.Activities)
}

func TestProfileService_UpsertPNJProfile_Preconditions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name string
		user *entity.User
		want error
	}{
		{"not onboarded", &entity.User{ID: userID, Role: entity.RolePNJ}, domainerrors.ErrOnboardingRequired},
		{"player", &entity.User{ID: userID, Role: entity.RolePlayer, OnboardingCompleted: true}, domainerrors.ErrRoleRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			fx.userRepo.EXPECT().FindByID(ctx, userID).Return(tt.user, nil)

			_, err := fx.service.UpsertPNJProfile(ctx, userID, &usecase.UpsertPNJProfileInput{HourlyRate: 1000})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestProfileService_GetMe(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.PNJProfile{ID: uuid.New(), UserID: userID}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RolePNJ}, nil)
	fx.pnjProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)

	me, err := fx.service.GetMe(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, profile, me.PNJProfile)
}

func TestProfileService_GetMe_UnknownUser(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetMe(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
