package usecase

import (
	"context"

	"companion/internal/domain/entity"

	"github.com/google/uuid"
)

// NotifyInput is one inbox entry to create and push.
type NotifyInput struct {
	UserID uuid.UUID
	Kind   entity.NotificationKind
	Title  string
	Body   string
	Data   map[string]string
}

// NotificationPage is a page of the inbox with the unread total.
type NotificationPage struct {
	Notifications []*entity.Notification `json:"notifications"`
	Unread        int64                  `json:"unread"`
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// Notify stores the notification and pushes it to the user's active devices.
	// Push failures are recorded on the notification, not returned.
	Notify(ctx context.Context, input *NotifyInput) (*entity.Notification, error)

	// ListNotifications retrieves the user's inbox with pagination
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) (*NotificationPage, error)

	MarkNotificationRead(ctx context.Context, userID, notificationID uuid.UUID) error
}
