package impl

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"time"

	"companion/config"
	deliverycontext "companion/internal/delivery/context"
	"companion/internal/domain/entity"
	"companion/internal/domain/gamification"
	"companion/internal/domain/repository"
	"companion/internal/domain/service"
	"companion/internal/errors"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// maxMissionBatchSize bounds the users written in one transaction.
const maxMissionBatchSize = 500

// globalRand draws from the concurrency-safe top-level math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

type missionService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	catalog   gamification.Catalog
	metrics   service.MetricsRecorder
	logger    *slog.Logger

	location  *time.Location
	batchSize int
	counts    map[gamification.Period]int

	rng gamification.Rand
	now func() time.Time
}

// MissionServiceParams holds dependencies for MissionService, injected by Fx.
type MissionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Catalog   gamification.Catalog
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMissionService validates the catalog against the configured counts up front.
func NewMissionService(params MissionServiceParams) (usecase.MissionUsecase, error) {
	cfg := params.Config.Missions

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	counts := map[gamification.Period]int{
		gamification.PeriodDaily:  cfg.DailyCount,
		gamification.PeriodWeekly: cfg.WeeklyCount,
	}
	for period, k := range counts {
		if have := len(params.Catalog.Templates(period)); have < k {
			return nil, errors.Wrapf(gamification.ErrCatalogTooSmall, "%s: have %d, need %d", period, have, k)
		}
	}

	return &missionService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		catalog:   params.Catalog,
		metrics:   params.Metrics,
		logger:    params.Logger,
		location:  location,
		batchSize: min(max(cfg.BatchSize, 1), maxMissionBatchSize),
		counts:    counts,
		rng:       globalRand{},
		now:       time.Now,
	}, nil
}

func (srv *missionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AssignMissions pages eligible users by id and commits one transaction per
// page. A failed page is rolled back and reported; later pages still run.
func (srv *missionService) AssignMissions(ctx context.Context, period gamification.Period, force bool) (*usecase.AssignmentReport, error) {
	k, ok := srv.counts[period]
	if !ok {
		return nil, errors.Wrapf(gamification.ErrUnknownPeriod, "%q", period)
	}

	startedAt := srv.now()
	report := &usecase.AssignmentReport{Period: period, StartedAt: startedAt}
	logger := srv.log(ctx).With(slog.String("period", string(period)), slog.Bool("force", force))
	logger.Info("Mission assignment started", slog.Int("batchSize", srv.batchSize))

	var errs []error
	after := uuid.Nil
	for {
		if err := ctx.Err(); err != nil {
			errs = append(errs, errors.Wrap(err, "mission assignment interrupted"))

			break
		}

		users, err := srv.userRepo.FindOnboardedAfter(ctx, after, srv.batchSize)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to page users after %s", after))

			break
		}
		if len(users) == 0 {
			break
		}

		report.Eligible += len(users)
		assigned, skipped, err := srv.assignBatch(ctx, period, k, users, force, startedAt)
		if err != nil {
			report.FailedBatches++
			errs = append(errs, errors.Wrapf(err, "batch after %s", after))
			logger.Error("Mission batch rolled back",
				slog.Any("after", after),
				slog.Int("users", len(users)),
				slog.Any("error", err),
			)
		} else {
			report.Assigned += assigned
			report.Skipped += skipped
		}

		after = users[len(users)-1].ID
		if len(users) < srv.batchSize {
			break
		}
	}

	report.Duration = srv.now().Sub(startedAt)
	srv.metrics.MissionRun(string(period), service.MissionRunStats{
		Assigned:      report.Assigned,
		Skipped:       report.Skipped,
		FailedBatches: report.FailedBatches,
	}, report.Duration)

	logger.Info("Mission assignment finished",
		slog.Int("eligible", report.Eligible),
		slog.Int("assigned", report.Assigned),
		slog.Int("skipped", report.Skipped),
		slog.Int("failedBatches", report.FailedBatches),
		slog.Duration("duration", report.Duration),
	)

	if len(errs) > 0 {
		return report, errors.WithMessage(errors.Join(errs...), "mission assignment incomplete")
	}

	return report, nil
}

// assignBatch re-reads every user under a row lock so progress written by a
// concurrent reward is not overwritten with the paged snapshot.
func (srv *missionService) assignBatch(
	ctx context.Context,
	period gamification.Period,
	k int,
	users []*entity.User,
	force bool,
	now time.Time,
) (assigned, skipped int, err error) {
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		assigned, skipped = 0, 0
		userRepo := repoFactory.NewUserRepository()

		for _, paged := range users {
			user, err := userRepo.FindByIDForUpdate(ctx, paged.ID)
			if err != nil {
				return errors.Wrapf(err, "failed to lock user %s", paged.ID)
			}

			if last := period.LastReset(user.Missions); !force && last != nil && period.Contains(*last, now, srv.location) {
				skipped++

				continue
			}

			missions, err := srv.catalog.Draw(period, k, srv.rng, now, srv.location)
			if err != nil {
				return errors.WithStack(err)
			}
			period.Replace(&user.Missions, missions, now)

			if err := userRepo.UpdateMissions(ctx, user.ID, user.Missions); err != nil {
				return errors.Wrapf(err, "failed to save missions of user %s", user.ID)
			}
			assigned++
		}

		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return assigned, skipped, nil
}
