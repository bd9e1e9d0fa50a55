package main

import (
	"context"
	"log/slog"
	"os"

	"companion/config"
	"companion/internal/delivery"
	"companion/internal/delivery/api"
	"companion/internal/delivery/api/middleware"
	"companion/internal/delivery/api/router/handler"
	"companion/internal/domain/gamification"
	"companion/internal/domain/service"
	"companion/internal/infra/auth"
	logs "companion/internal/infra/log"
	"companion/internal/infra/metrics"
	"companion/internal/infra/notification"
	"companion/internal/infra/payment/stripe"
	"companion/internal/infra/persistence/postgres"
	"companion/internal/infra/pubsub"
	"companion/internal/infra/qrcode"
	"companion/internal/usecase"
	"companion/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		pubsub.Module,
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.NewRegistry,
		newMetricsRecorder,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewPNJProfileRepository,
			postgres.NewBookingRepository,
			postgres.NewTransactionRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			stripe.NewGateway,
			stripe.NewWebhookParser,
			newPushService,
			newQRCodeService,
			gamification.DefaultLevelTable,
		),
	)
}

// newMetricsRecorder registers the business collectors on the process registry
func newMetricsRecorder(reg *prometheus.Registry) service.MetricsRecorder {
	return metrics.MustNewMetrics(reg)
}

// newPushService falls back to a no-op sender when Firebase is not configured
func newPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase not configured, push notifications are disabled")

		return notification.NoopPushService{}, nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode)
}

// newBookingEventHandler lets the inline publisher reward completions in-process
func newBookingEventHandler(uc usecase.RewardUsecase) service.BookingEventHandler {
	return uc
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProfileService,
			impl.NewDeviceService,
			impl.NewNotificationService,
			impl.NewGamificationService,
			impl.NewBookingService,
			impl.NewPaymentService,
			impl.NewRewardService,
			newBookingEventHandler,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBookingHandler,
			handler.NewPaymentHandler,
			handler.NewGamificationHandler,
			handler.NewProfileHandler,
			handler.NewDeviceHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
