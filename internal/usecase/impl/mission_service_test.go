package impl

import (
	"context"
	"testing"
	"time"

	"companion/config"
	"companion/internal/domain/entity"
	"companion/internal/domain/gamification"
	"companion/internal/domain/service"
	"companion/internal/errors"
	mockService "companion/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// firstRand always picks the lowest remaining index.
type firstRand struct{}

func (firstRand) IntN(int) int { return 0 }

type missionServiceFixtures struct {
	service   *missionService
	repos     *repoMocks
	txManager *fakeTxManager
	metrics   *mockService.MockMetricsRecorder
	now       time.Time
}

func createTestMissionService(t *testing.T, batchSize int) missionServiceFixtures {
	repos := newRepoMocks(t)
	txManager := &fakeTxManager{repos: repos}
	metrics := mockService.NewMockMetricsRecorder(t)

	cfg := &config.Config{Missions: &config.MissionsConfig{}}
	cfg.Missions.Timezone = "UTC"
	cfg.Missions.DailyCount = 3
	cfg.Missions.WeeklyCount = 2
	cfg.Missions.BatchSize = batchSize

	svc, err := NewMissionService(MissionServiceParams{
		TxManager: txManager,
		UserRepo:  repos.userRepo,
		Catalog:   gamification.DefaultCatalog(),
		Metrics:   metrics,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)

	// Wednesday.
	now := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)
	ms := svc.(*missionService)
	ms.rng = firstRand{}
	ms.now = func() time.Time { return now }

	return missionServiceFixtures{
		service:   ms,
		repos:     repos,
		txManager: txManager,
		metrics:   metrics,
		now:       now,
	}
}

func TestNewMissionService_CatalogTooSmall(t *testing.T) {
	cfg := &config.Config{Missions: &config.MissionsConfig{}}
	cfg.Missions.Timezone = "UTC"
	cfg.Missions.DailyCount = 3
	cfg.Missions.WeeklyCount = 2

	_, err := NewMissionService(MissionServiceParams{
		Catalog: gamification.Catalog{Daily: gamification.DefaultCatalog().Daily[:2]},
		Metrics: service.NopMetrics{},
		Config:  cfg,
		Logger:  newDiscardLogger(),
	})
	assert.ErrorIs(t, err, gamification.ErrCatalogTooSmall)
}

func TestMissionService_AssignMissions_Daily(t *testing.T) {
	fx := createTestMissionService(t, 10)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), OnboardingCompleted: true}
	var saved entity.UserMissions

	fx.repos.userRepo.EXPECT().FindOnboardedAfter(ctx, uuid.Nil, 10).Return([]*entity.User{user}, nil)
	fx.repos.userRepo.EXPECT().FindByIDForUpdate(ctx, user.ID).Return(user, nil)
	fx.repos.userRepo.EXPECT().UpdateMissions(ctx, user.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, missions entity.UserMissions) { saved = missions }).
		Return(nil)
	fx.metrics.EXPECT().MissionRun("daily", service.MissionRunStats{Assigned: 1}, time.Duration(0)).Return()

	report, err := fx.service.AssignMissions(ctx, gamification.PeriodDaily, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Eligible)
	assert.Equal(t, 1, report.Assigned)
	assert.Equal(t, 1, fx.txManager.calls)

	require.Len(t, saved.Daily, 3)
	seen := map[string]bool{}
	for _, m := range saved.Daily {
		assert.Equal(t, entity.MissionTypeDaily, m.Type)
		assert.Equal(t, time.Date(2026, 3, 11, 23, 59, 59, 999999999, time.UTC), m.ExpiresAt)
		assert.False(t, seen[m.TemplateID], "duplicate template %s", m.TemplateID)
		seen[m.TemplateID] = true
	}
	require.NotNil(t, saved.DailyLastReset)
	assert.Equal(t, fx.now, *saved.DailyLastReset)
}

func TestMissionService_AssignMissions_Weekly(t *testing.T) {
	fx := createTestMissionService(t, 10)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), OnboardingCompleted: true}
	var saved entity.UserMissions

	fx.repos.userRepo.EXPECT().FindOnboardedAfter(ctx, uuid.Nil, 10).Return([]*entity.User{user}, nil)
	fx.repos.userRepo.EXPECT().FindByIDForUpdate(ctx, user.ID).Return(user, nil)
	fx.repos.userRepo.EXPECT().UpdateMissions(ctx, user.ID, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, missions entity.UserMissions) { saved = missions }).
		Return(nil)
	fx.metrics.EXPECT().MissionRun("weekly", mock.Anything, mock.Anything).Return()

	_, err := fx.service.AssignMissions(ctx, gamification.PeriodWeekly, false)
	require.NoError(t, err)

	require.Len(t, saved.Weekly, 2)
	// Sunday of the same ISO week.
	assert.Equal(t, time.Date(2026, 3, 15, 23, 59, 59, 999999999, time.UTC), saved.Weekly[0].ExpiresAt)
	assert.Nil(t, saved.Daily)
}

func TestMissionService_AssignMissions_SkipsAlreadyReset(t *testing.T) {
	fx := createTestMissionService(t, 10)

	ctx := context.Background()
	earlier := fx.now.Add(-2 * time.Hour)
	user := &entity.User{
		ID:       uuid.New(),
		Missions: entity.UserMissions{DailyLastReset: &earlier},
	}

	fx.repos.userRepo.EXPECT().FindOnboardedAfter(ctx, uuid.Nil, 10).Return([]*entity.User{user}, nil)
	fx.repos.userRepo.EXPECT().FindByIDForUpdate(ctx, user.ID).Return(user, nil)
	fx.metrics.EXPECT().MissionRun("daily", service.MissionRunStats{Skipped: 1}, mock.Anything).Return()

	report, err := fx.service.AssignMissions(ctx, gamification.PeriodDaily, false)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Assigned)
	assert.Equal(t, 1, report.Skipped)
	fx.repos.userRepo.AssertNotCalled(t, "UpdateMissions", mock.Anything, mock.Anything, mock.Anything)
}

func TestMissionService_AssignMissions_ForceReassigns(t *testing.T) {
	fx := createTestMissionService(t, 10)

	ctx := context.Background()
	earlier := fx.now.Add(-2 * time.Hour)
	user := &entity.User{
		ID:       uuid.New(),
		Missions: entity.UserMissions{DailyLastReset: &earlier},
	}

	fx.repos.userRepo.EXPECT().FindOnboardedAfter(ctx, uuid.Nil, 10).Return([]*entity.User{user}, nil)
	fx.repos.userRepo.EXPECT().FindByIDForUpdate(ctx, user.ID).Return(user, nil)
	fx.repos.userRepo.EXPECT().UpdateMissions(ctx, user.ID, mock.Anything).Return(nil)
	fx.metrics.EXPECT().MissionRun("daily", service.MissionRunStats{Assigned: 1}, mock.Anything).Return()

	report, err := fx.service.AssignMissions(ctx, gamification.PeriodDaily, true)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Assigned)
}

func TestMissionService_AssignMissions_PagesByID(t *testing.T) {
	fx := createTestMissionService(t, 2)

	ctx := context.Background()
	users := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}

	fx.repos.userRepo.EXPECT().FindOnboardedAfter(ctx, uuid.Nil, 2).Return(users[:2], nil)
	fx.repos.userRepo.EXPECT().FindOnboardedAfter(ctx, users[1].ID, 2).Return(users[2:], nil)
	for _, u := range users {
		fx.repos.userRepo.EXPECT().FindByIDForUpdate(ctx, u.ID).Return(u, nil)
		fx.repos.userRepo.EXPECT().UpdateMissions(ctx, u.ID, mock.Anything).Return(nil)
	}
	fx.metrics.EXPECT().MissionRun("daily", service.MissionRunStats{Assigned: 3}, mock.Anything).Return()

	report, err := fx.service.AssignMissions(ctx, gamification.PeriodDaily, false)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Eligible)
	assert.Equal(t, 3, report.Assigned)
	assert.Equal(t, 2, fx.txManager.calls)
}

func TestMissionService_AssignMissions_FailedBatchContinues(t *testing.T) {
	fx := createTestMissionService(t, 1)

	ctx := context.Background()
	first := &entity.User{ID: uuid.New()}
	second := &entity.User{ID: uuid.New()}
	dbErr := errors.New("connection reset")

	fx.repos.userRepo.EXPECT().FindOnboardedAfter(ctx, uuid.Nil, 1).Return([]*entity.User{first}, nil)
	fx.repos.userRepo.EXPECT().FindOnboardedAfter(ctx, first.ID, 1).Return([]*entity.User{second}, nil)
	fx.repos.userRepo.EXPECT().FindOnboardedAfter(ctx, second.ID, 1).Return(nil, nil)

	fx.repos.userRepo.EXPECT().FindByIDForUpdate(ctx, first.ID).Return(first, nil)
	fx.repos.userRepo.EXPECT().UpdateMissions(ctx, first.ID, mock.Anything).Return(dbErr)
	fx.repos.userRepo.EXPECT().FindByIDForUpdate(ctx, second.ID).Return(second, nil)
	fx.repos.userRepo.EXPECT().UpdateMissions(ctx, second.ID, mock.Anything).Return(nil)

	fx.metrics.EXPECT().MissionRun("daily", service.MissionRunStats{Assigned: 1, FailedBatches: 1}, mock.Anything).Return()

	report, err := fx.service.AssignMissions(ctx, gamification.PeriodDaily, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
	assert.Equal(t, 1, report.Assigned)
	assert.Equal(t, 1, report.FailedBatches)
	assert.Equal(t, 2, report.Eligible)
}

func TestMissionService_AssignMissions_PagingError(t *testing.T) {
	fx := createTestMissionService(t, 10)

	ctx := context.Background()
	dbErr := errors.New("timeout")

	fx.repos.userRepo.EXPECT().FindOnboardedAfter(ctx, uuid.Nil, 10).Return(nil, dbErr)
	fx.metrics.EXPECT().MissionRun("daily", service.MissionRunStats{}, mock.Anything).Return()

	report, err := fx.service.AssignMissions(ctx, gamification.PeriodDaily, false)
	assert.ErrorIs(t, err, dbErr)
	assert.Zero(t, report.Eligible)
	assert.Zero(t, fx.txManager.calls)
}

func TestMissionService_AssignMissions_UnknownPeriod(t *testing.T) {
	fx := createTestMissionService(t, 10)

	_, err := fx.service.AssignMissions(context.Background(), gamification.Period("monthly"), false)
	assert.ErrorIs(t, err, gamification.ErrUnknownPeriod)
}
