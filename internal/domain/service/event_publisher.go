// Package service defines interfaces for the external capabilities the use cases rely on.
package service

import (
	"context"
	"time"

	"companion/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingStatusChanged is emitted after every committed booking status write.
type BookingStatusChanged struct {
	RequestID  string               `json:"request_id,omitempty"` // For distributed tracing
	BookingID  uuid.UUID            `json:"booking_id"`
	Previous   entity.BookingStatus `json:"previous"`
	Current    entity.BookingStatus `json:"current"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// IsCompletion reports whether the change moved the booking into completed.
func (e *BookingStatusChanged) IsCompletion() bool {
	return e.Current == entity.BookingStatusCompleted && e.Previous != entity.BookingStatusCompleted
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBookingStatusChanged publishes a status change for async processing
	PublishBookingStatusChanged(ctx context.Context, event *BookingStatusChanged) error

	// Close releases any resources held by the publisher
	Close() error
}

// BookingEventHandler consumes booking status changes, whichever transport delivered them.
type BookingEventHandler interface {
	HandleBookingStatusChanged(ctx context.Context, event *BookingStatusChanged) error
}
