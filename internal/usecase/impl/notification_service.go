package impl

import (
	"context"
	"log/slog"
	"maps"
	"time"

	deliverycontext "companion/internal/delivery/context"
	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/domain/service"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	pushSvc          service.PushService
	metrics          service.MetricsRecorder
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.DeviceRepository
	PushSvc          service.PushService
	Metrics          service.MetricsRecorder
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		pushSvc:          params.PushSvc,
		metrics:          params.Metrics,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Notify stores the inbox entry first so the user sees it even when push fails.
func (srv *notificationService) Notify(ctx context.Context, input *usecase.NotifyInput) (*entity.Notification, error) {
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Kind:      input.Kind,
		Title:     input.Title,
		Body:      input.Body,
		Data:      input.Data,
		CreatedAt: time.Now(),
	}

	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, input.UserID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load devices for push", slog.Any("userID", input.UserID), slog.Any("error", err))

		return notification, nil
	}
	if len(devices) == 0 {
		return notification, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := maps.Clone(input.Data)
	if data == nil {
		data = make(map[string]string, 2)
	}
	data["notification_id"] = notification.ID.String()
	data["kind"] = string(input.Kind)

	sent, failed := srv.push(ctx, tokens, service.PushMessage{
		Title: input.Title,
		Body:  input.Body,
		Data:  data,
	})
	srv.metrics.PushDelivered(sent, failed)

	if err := srv.notificationRepo.UpdatePushStatus(ctx, notification.ID, sent, failed); err != nil {
		srv.log(ctx).Warn("Failed to record push status", slog.Any("notificationID", notification.ID), slog.Any("error", err))
	}
	notification.PushSent = sent
	notification.PushFailed = failed

	return notification, nil
}

// push sends the message and forgets tokens the provider no longer knows.
func (srv *notificationService) push(ctx context.Context, tokens []string, msg service.PushMessage) (sent, failed int) {
	result, err := srv.pushSvc.SendMulticast(ctx, tokens, msg)
	if err != nil {
		srv.log(ctx).Warn("Push delivery failed", slog.Int("tokens", len(tokens)), slog.Any("error", err))

		return 0, len(tokens)
	}

	if len(result.InvalidTokens) > 0 {
		removed, err := srv.deviceRepo.DeleteDevicesByTokens(ctx, result.InvalidTokens)
		if err != nil {
			srv.log(ctx).Warn("Failed to delete invalid devices", slog.Any("error", err))
		} else {
			srv.log(ctx).Info("Deleted devices with invalid tokens", slog.Int64("count", removed))
		}
	}

	return result.SuccessCount, result.FailureCount
}

// ListNotifications clamps limit to (0, 100] with a default of 20.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) (*usecase.NotificationPage, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	limit = min(limit, maxNotificationLimit)
	offset = max(offset, 0)

	notifications, err := srv.notificationRepo.FindNotificationsByUser(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	unread, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	return &usecase.NotificationPage{
		Notifications: notifications,
		Unread:        unread,
	}, nil
}

func (srv *notificationService) MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := srv.notificationRepo.MarkRead(ctx, notificationID, userID, time.Now())
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound.WrapMessage(notificationID.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}
