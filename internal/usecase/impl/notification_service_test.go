package impl

import (
	"context"
	"testing"

	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/domain/service"
	mockRepo "companion/internal/mocks/repository"
	mockService "companion/internal/mocks/service"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	pushSvc          *mockService.MockPushService
	metrics          *mockService.MockMetricsRecorder
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushSvc := mockService.NewMockPushService(t)
	metrics := mockService.NewMockMetricsRecorder(t)

	return notificationServiceFixtures{
		service: NewNotificationService(NotificationServiceParams{
			NotificationRepo: notificationRepo,
			DeviceRepo:       deviceRepo,
			PushSvc:          pushSvc,
			Metrics:          metrics,
			Logger:           newDiscardLogger(),
		}),
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		pushSvc:          pushSvc,
		metrics:          metrics,
	}
}

func TestNotificationService_Notify_PushesToActiveDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.NotifyInput{
		UserID: userID,
		Kind:   entity.NotificationBookingConfirmed,
		Title:  "Booking confirmed",
		Body:   "See you soon",
		Data:   map[string]string{"booking_id": "b-1"},
	}

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{FCMToken: "token-a"},
			{FCMToken: "token-b"},
		}, nil)
	fx.pushSvc.EXPECT().
		SendMulticast(ctx, []string{"token-a", "token-b"}, mock.MatchedBy(func(msg service.PushMessage) bool {
			return msg.Title == input.Title &&
				msg.Data["booking_id"] == "b-1" &&
				msg.Data["kind"] == string(entity.NotificationBookingConfirmed) &&
				msg.Data["notification_id"] != ""
		})).
		Return(&service.PushResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"token-b"}}, nil)
	fx.deviceRepo.EXPECT().
		DeleteDevicesByTokens(ctx, []string{"token-b"}).
		Return(int64(1), nil)
	fx.metrics.EXPECT().PushDelivered(1, 1).Return()
	fx.notificationRepo.EXPECT().
		UpdatePushStatus(ctx, mock.AnythingOfType("uuid.UUID"), 1, 1).
		Return(nil)

	notification, err := fx.service.Notify(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, userID, notification.UserID)
	assert.Equal(t, 1, notification.PushSent)
	assert.Equal(t, 1, notification.PushFailed)
	// The caller's map must not pick up the push metadata.
	assert.Len(t, input.Data, 1)
}

func TestNotificationService_Notify_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(nil, nil)

	notification, err := fx.service.Notify(ctx, &usecase.NotifyInput{
		UserID: userID,
		Kind:   entity.NotificationBookingRequested,
		Title:  "New request",
	})
	require.NoError(t, err)
	assert.Zero(t, notification.PushSent)
}

func TestNotificationService_Notify_PushFailureKeepsInboxEntry(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{FCMToken: "token-a"}}, nil)
	fx.pushSvc.EXPECT().
		SendMulticast(ctx, []string{"token-a"}, mock.Anything).
		Return(nil, errors.New("fcm unavailable"))
	fx.metrics.EXPECT().PushDelivered(0, 1).Return()
	fx.notificationRepo.EXPECT().
		UpdatePushStatus(ctx, mock.AnythingOfType("uuid.UUID"), 0, 1).
		Return(nil)

	notification, err := fx.service.Notify(ctx, &usecase.NotifyInput{
		UserID: userID,
		Kind:   entity.NotificationBookingPaid,
		Title:  "Paid",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, notification.PushFailed)
}

func TestNotificationService_Notify_StoreError(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Return(errors.New("db down"))

	_, err := fx.service.Notify(ctx, &usecase.NotifyInput{UserID: uuid.New(), Title: "x"})
	require.Error(t, err)
}

func TestNotificationService_ListNotifications_ClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		offset    int
		wantLimit int
		wantOff   int
	}{
		{name: "default", limit: 0, offset: 0, wantLimit: 20, wantOff: 0},
		{name: "capped", limit: 500, offset: 10, wantLimit: 100, wantOff: 10},
		{name: "negative offset", limit: 5, offset: -3, wantLimit: 5, wantOff: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)

			ctx := context.Background()
			userID := uuid.New()

			fx.notificationRepo.EXPECT().
				FindNotificationsByUser(ctx, userID, true, tt.wantLimit, tt.wantOff).
				Return([]*entity.Notification{{ID: uuid.New()}}, nil)
			fx.notificationRepo.EXPECT().
				CountUnread(ctx, userID).
				Return(int64(4), nil)

			page, err := fx.service.ListNotifications(ctx, userID, true, tt.limit, tt.offset)
			require.NoError(t, err)
			assert.Len(t, page.Notifications, 1)
			assert.Equal(t, int64(4), page.Unread)
		})
	}
}

func TestNotificationService_MarkNotificationRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().
			MarkRead(ctx, notificationID, userID, mock.AnythingOfType("time.Time")).
			Return(nil)

		require.NoError(t, fx.service.MarkNotificationRead(ctx, userID, notificationID))
	})

	t.Run("not found or not owned", func(t *testing.T) {
		fx := createTestNotificationService(t)
		fx.notificationRepo.EXPECT().
			MarkRead(ctx, notificationID, userID, mock.AnythingOfType("time.Time")).
			Return(repository.ErrNotificationNotFound)

		err := fx.service.MarkNotificationRead(ctx, userID, notificationID)
		assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})
}
