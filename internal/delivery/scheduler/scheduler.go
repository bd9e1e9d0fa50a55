// Package scheduler runs the periodic worker jobs: mission assignment and the
// reward sweep for completed bookings whose event was lost.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"companion/config"
	"companion/internal/delivery"
	"companion/internal/domain/gamification"
	"companion/internal/domain/lifecycle"
	"companion/internal/errors"
	"companion/internal/usecase"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

// Params holds dependencies for the worker scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	MissionUC usecase.MissionUsecase
	RewardUC  usecase.RewardUsecase
}

type jobScheduler struct {
	logger    *slog.Logger
	missionUC usecase.MissionUsecase
	rewardUC  usecase.RewardUsecase
	scheduler gocron.Scheduler

	// jobCtx is cancelled on stop so a running job ends between batches.
	jobCtx    context.Context
	cancelJob context.CancelFunc
	done      chan struct{}
}

// NewScheduler registers the daily and weekly assignment jobs and the reward sweep.
// Cron expressions are read in the missions timezone, the same one period boundaries
// are computed in.
func NewScheduler(params Params) (delivery.Delivery, error) {
	missionsEnabled := params.Cfg.Missions.Enabled
	sweepInterval := rewardSweepInterval(params.Cfg)

	if !missionsEnabled && sweepInterval <= 0 {
		params.Logger.Info("Worker scheduler disabled")

		return disabled{}, nil
	}

	loc, err := params.Cfg.Missions.Location()
	if err != nil {
		return nil, err
	}

	sched, err := gocron.NewScheduler(
		gocron.WithLocation(loc),
		gocron.WithLogger(params.Logger),
		gocron.WithStopTimeout(lifecycle.DefaultTimeout),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create scheduler")
	}

	jobCtx, cancel := context.WithCancel(context.Background())
	s := &jobScheduler{
		logger:    params.Logger,
		missionUC: params.MissionUC,
		rewardUC:  params.RewardUC,
		scheduler: sched,
		jobCtx:    jobCtx,
		cancelJob: cancel,
		done:      make(chan struct{}),
	}

	if missionsEnabled {
		if err := s.scheduleMissions(params.Cfg.Missions); err != nil {
			cancel()

			return nil, err
		}
	} else {
		params.Logger.Info("Mission assignment disabled")
	}

	if sweepInterval > 0 {
		if _, err := sched.NewJob(
			gocron.DurationJob(sweepInterval),
			gocron.NewTask(s.sweep),
			gocron.WithName("reward-sweep"),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		); err != nil {
			cancel()

			return nil, errors.Wrap(err, "failed to schedule reward sweep")
		}
	}

	params.Lc.Append(fx.Hook{
		OnStart: s.start,
		OnStop:  s.stop,
	})

	return s, nil
}

func rewardSweepInterval(cfg *config.Config) time.Duration {
	if cfg.Gamification == nil {
		return 0
	}

	return cfg.Gamification.RewardSweepInterval
}

func (s *jobScheduler) scheduleMissions(cfg *config.MissionsConfig) error {
	jobs := []struct {
		period gamification.Period
		cron   string
	}{
		{gamification.PeriodDaily, cfg.DailyCron},
		{gamification.PeriodWeekly, cfg.WeeklyCron},
	}
	for _, job := range jobs {
		if _, err := s.scheduler.NewJob(
			gocron.CronJob(job.cron, false),
			gocron.NewTask(s.run, job.period),
			gocron.WithName("missions-"+string(job.period)),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		); err != nil {
			return errors.Wrapf(err, "failed to schedule %s missions", job.period)
		}
	}

	return nil
}

// Serve blocks until the scheduler is stopped. The jobs themselves are started
// with the fx lifecycle.
func (s *jobScheduler) Serve(ctx context.Context) error {
	select {
	case <-ctx.Done():
	case <-s.done:
	}

	return nil
}

func (s *jobScheduler) start(_ context.Context) error {
	s.logger.Info("Starting worker scheduler")
	s.scheduler.Start()

	for _, job := range s.scheduler.Jobs() {
		if next, err := job.NextRun(); err == nil {
			s.logger.Info("Scheduled job", slog.String("job", job.Name()), slog.Time("next_run", next))
		}
	}

	return nil
}

func (s *jobScheduler) run(period gamification.Period) {
	report, err := s.missionUC.AssignMissions(s.jobCtx, period, false)
	if err != nil {
		s.logger.Error("Mission assignment failed",
			slog.String("period", string(period)),
			slog.Any("error", err),
		)
	}
	if report == nil {
		return
	}

	s.logger.Info("Mission assignment finished",
		slog.String("period", string(report.Period)),
		slog.Int("eligible", report.Eligible),
		slog.Int("assigned", report.Assigned),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed_batches", report.FailedBatches),
		slog.Duration("duration", report.Duration),
	)
}

// sweep grants rewards for completed bookings the event path never rewarded.
func (s *jobScheduler) sweep() {
	report, err := s.rewardUC.RewardPending(s.jobCtx)
	if err != nil {
		s.logger.Error("Reward sweep failed", slog.Any("error", err))
	}
	if report == nil || report.Found == 0 {
		return
	}

	s.logger.Info("Reward sweep finished",
		slog.Int("found", report.Found),
		slog.Int("rewarded", report.Rewarded),
		slog.Int("failed", report.Failed),
	)
}

// disabled stands in when every periodic job is turned off.
type disabled struct{}

func (disabled) Serve(context.Context) error { return nil }

func (s *jobScheduler) stop(_ context.Context) error {
	s.logger.Info("Shutting down worker scheduler")
	s.cancelJob()
	close(s.done)

	return errors.WithStack(s.scheduler.Shutdown())
}
