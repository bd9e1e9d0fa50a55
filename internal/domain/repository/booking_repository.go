package repository

import (
	"context"
	"time"

	"companion/internal/domain/entity"
	"companion/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrBookingNotFound is returned when a booking is not found.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrBookingStatusConflict is returned by compare-and-set writes when the
	// stored status no longer matches the expected one.
	ErrBookingStatusConflict = errors.New("booking status changed concurrently")
)

// BookingFilter narrows ListByUser.
type BookingFilter struct {
	Statuses []entity.BookingStatus
	Limit    int
	Offset   int
}

// BookingRepository persists bookings. Status changes go through UpdateStatus,
// which only succeeds when the stored status equals the expected one.
type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*entity.Booking, error)

	// ListByUser returns the bookings where the user is player or companion,
	// newest scheduled first.
	ListByUser(ctx context.Context, userID uuid.UUID, filter BookingFilter) ([]*entity.Booking, error)

	// UpdateStatus writes the booking's status and lifecycle fields if the
	// stored status is still expected. Returns ErrBookingStatusConflict otherwise.
	UpdateStatus(ctx context.Context, booking *entity.Booking, expected entity.BookingStatus) error

	SetPaymentIntent(ctx context.Context, id uuid.UUID, paymentIntentID string) error
	SetPaymentError(ctx context.Context, id uuid.UUID, message string) error

	// MarkRewarded stamps rewarded_at if it is still empty and reports whether
	// this call did it.
	MarkRewarded(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	// FindUnrewardedCompleted lists completed bookings without rewarded_at that
	// were completed before the given time, oldest first.
	FindUnrewardedCompleted(ctx context.Context, completedBefore time.Time, limit int) ([]uuid.UUID, error)

	// CountRewardedBetween counts rewarded bookings between a player and a
	// companion, the given booking excluded.
	CountRewardedBetween(ctx context.Context, playerID, pnjID, exclude uuid.UUID) (int64, error)
}
