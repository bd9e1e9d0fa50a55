package repository

import (
	"context"
	"time"

	"companion/internal/domain/entity"
	"companion/internal/errors"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for the in-app notification inbox.
type NotificationRepository interface {
	// CreateNotification persists a new inbox entry.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByUser lists a user's notifications, newest first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)

	// UpdatePushStatus records the outcome of the push fan-out.
	UpdatePushStatus(ctx context.Context, id uuid.UUID, sent, failed int) error

	// MarkRead flags a notification owned by userID as read.
	MarkRead(ctx context.Context, id, userID uuid.UUID, at time.Time) error

	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
