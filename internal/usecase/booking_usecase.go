package usecase

import (
	"context"
	"time"

	"companion/internal/domain/entity"
	"companion/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateBookingInput defines the data a player sends to request a companion.
type CreateBookingInput struct {
	PNJProfileID  uuid.UUID `json:"pnj_profile_id"`
	Activity      string    `json:"activity"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	DurationHours int       `json:"duration_hours"`
}

// BookingUsecase drives the booking state machine. Every successful status
// change publishes a BookingStatusChanged event.
type BookingUsecase interface {
	CreateBooking(ctx context.Context, playerID uuid.UUID, input *CreateBookingInput) (*entity.Booking, error)

	// AcceptBooking and RejectBooking are only available to the booked companion.
	AcceptBooking(ctx context.Context, pnjID, bookingID uuid.UUID) (*entity.Booking, error)
	RejectBooking(ctx context.Context, pnjID, bookingID uuid.UUID) (*entity.Booking, error)

	// CancelBooking is available to both participants until the booking is paid.
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID, reason string) (*entity.Booking, error)

	// CheckIn starts the session when the companion presents the player's code.
	CheckIn(ctx context.Context, pnjID, bookingID uuid.UUID, code string) (*entity.Booking, error)
	// CheckInByQR is CheckIn from the raw text of a scanned check-in QR code.
	CheckInByQR(ctx context.Context, pnjID uuid.UUID, qrData string) (*entity.Booking, error)
	// CheckInQR renders the player's check-in code as a PNG.
	CheckInQR(ctx context.Context, playerID, bookingID uuid.UUID) ([]byte, error)

	CompleteBooking(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error)

	GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error)
	ListBookings(ctx context.Context, userID uuid.UUID, filter repository.BookingFilter) ([]*entity.Booking, error)
}
