package main

import (
	"context"

	"companion/config"
	"companion/internal/domain/gamification"
	"companion/internal/domain/lifecycle"
	"companion/internal/domain/service"
	"companion/internal/errors"
	logs "companion/internal/infra/log"
	"companion/internal/infra/metrics"
	"companion/internal/infra/persistence/postgres"
	"companion/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

func newMetricsRecorder(reg *prometheus.Registry) service.MetricsRecorder {
	return metrics.MustNewMetrics(reg)
}

// withApp starts a short-lived fx container, fills targets and stops it once run returns.
func withApp(ctx context.Context, run func() error, targets ...any) (err error) {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			metrics.NewRegistry,
			newMetricsRecorder,
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			gamification.DefaultCatalog,
			impl.NewMissionService,
		),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer stopCancel()

		if stopErr := app.Stop(stopCtx); stopErr != nil && err == nil {
			err = errors.Wrap(stopErr, "failed to stop application")
		}
	}()

	return run()
}
