package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind identifies what a notification is about so clients can deep-link.
type NotificationKind string

const (
	NotificationBookingRequested NotificationKind = "booking_requested"
	NotificationBookingConfirmed NotificationKind = "booking_confirmed"
	NotificationBookingRejected  NotificationKind = "booking_rejected"
	NotificationBookingCancelled NotificationKind = "booking_cancelled"
	NotificationBookingPaid      NotificationKind = "booking_paid"
	NotificationBookingStarted   NotificationKind = "booking_started"
	NotificationBookingCompleted NotificationKind = "booking_completed"
	NotificationBookingRefunded  NotificationKind = "booking_refunded"
	NotificationPaymentFailed    NotificationKind = "payment_failed"
	NotificationLevelUp          NotificationKind = "level_up"
	NotificationMissionCompleted NotificationKind = "mission_completed"
)

// Notification is an inbox entry for one user, also fanned out as a push.
type Notification struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"user_id"`
	Kind       NotificationKind  `json:"kind"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Data       map[string]string `json:"data,omitempty"`
	Read       bool              `json:"read"`
	ReadAt     *time.Time        `json:"read_at,omitempty"`
	PushSent   int               `json:"-"`
	PushFailed int               `json:"-"`
	CreatedAt  time.Time         `json:"created_at"`
}
