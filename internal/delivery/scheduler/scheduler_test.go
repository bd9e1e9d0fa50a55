package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"companion/config"
	"companion/internal/delivery"
	"companion/internal/domain/gamification"
	mockUC "companion/internal/mocks/usecase"
	"companion/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testConfig(dailyCron, weeklyCron string) *config.Config {
	return &config.Config{
		Missions: &config.MissionsConfig{
			Enabled:    true,
			Timezone:   "Europe/Paris",
			DailyCron:  dailyCron,
			WeeklyCron: weeklyCron,
		},
		Gamification: &config.GamificationConfig{
			RewardSweepInterval: 5 * time.Minute,
		},
	}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jobNames(d delivery.Delivery) []string {
	s := d.(*jobScheduler)
	names := make([]string, 0, len(s.scheduler.Jobs()))
	for _, job := range s.scheduler.Jobs() {
		names = append(names, job.Name())
	}

	return names
}

func TestNewScheduler_RegistersAllJobs(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	d, err := NewScheduler(Params{
		Lc:        lc,
		Cfg:       testConfig("0 0 * * *", "0 0 * * 1"),
		Logger:    newDiscardLogger(),
		MissionUC: mockUC.NewMockMissionUsecase(t),
		RewardUC:  mockUC.NewMockRewardUsecase(t),
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"missions-daily", "missions-weekly", "reward-sweep"}, jobNames(d))

	lc.RequireStart().RequireStop()
}

func TestNewScheduler_InvalidCron(t *testing.T) {
	_, err := NewScheduler(Params{
		Lc:        fxtest.NewLifecycle(t),
		Cfg:       testConfig("0 0 * * *", "every monday"),
		Logger:    newDiscardLogger(),
		MissionUC: mockUC.NewMockMissionUsecase(t),
		RewardUC:  mockUC.NewMockRewardUsecase(t),
	})

	assert.Error(t, err)
}

func TestRun_ReportsEvenOnPartialFailure(t *testing.T) {
	missionUC := mockUC.NewMockMissionUsecase(t)
	s := &jobScheduler{
		logger:    newDiscardLogger(),
		missionUC: missionUC,
		jobCtx:    context.Background(),
	}

	missionUC.EXPECT().AssignMissions(mock.Anything, gamification.PeriodWeekly, false).Return(&usecase.AssignmentReport{
		Period:        gamification.PeriodWeekly,
		Eligible:      3,
		Assigned:      2,
		FailedBatches: 1,
		Duration:      time.Second,
	}, assert.AnError)

	s.run(gamification.PeriodWeekly)
}

func TestServe_ReturnsOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	d, err := NewScheduler(Params{
		Lc:        lc,
		Cfg:       testConfig("0 0 * * *", "0 0 * * 1"),
		Logger:    newDiscardLogger(),
		MissionUC: mockUC.NewMockMissionUsecase(t),
		RewardUC:  mockUC.NewMockRewardUsecase(t),
	})
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- d.Serve(context.Background()) }()

	lc.RequireStart().RequireStop()

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after stop")
	}
}

func TestNewScheduler_SweepRunsWithMissionsDisabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := testConfig("0 0 * * *", "0 0 * * 1")
	cfg.Missions.Enabled = false

	d, err := NewScheduler(Params{
		Lc:        lc,
		Cfg:       cfg,
		Logger:    newDiscardLogger(),
		MissionUC: mockUC.NewMockMissionUsecase(t),
		RewardUC:  mockUC.NewMockRewardUsecase(t),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"reward-sweep"}, jobNames(d))

	lc.RequireStart().RequireStop()
}

func TestSweep_RewardsPendingBookings(t *testing.T) {
	rewardUC := mockUC.NewMockRewardUsecase(t)
	s := &jobScheduler{
		logger:   newDiscardLogger(),
		rewardUC: rewardUC,
		jobCtx:   context.Background(),
	}

	rewardUC.EXPECT().RewardPending(mock.Anything).
		Return(&usecase.RewardSweepReport{Found: 2, Rewarded: 1, Failed: 1}, assert.AnError).
		Once()

	s.sweep()
}

func TestNewScheduler_Disabled(t *testing.T) {
	cfg := testConfig("0 0 * * *", "0 0 * * 1")
	cfg.Missions.Enabled = false
	cfg.Gamification.RewardSweepInterval = 0

	d, err := NewScheduler(Params{
		Lc:        fxtest.NewLifecycle(t),
		Cfg:       cfg,
		Logger:    newDiscardLogger(),
		MissionUC: mockUC.NewMockMissionUsecase(t),
		RewardUC:  mockUC.NewMockRewardUsecase(t),
	})
	require.NoError(t, err)

	assert.IsType(t, disabled{}, d)
	assert.NoError(t, d.Serve(context.Background()))
}
