package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "companion/internal/delivery/context"
	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/domain/service"

	"github.com/pkg/errors"
)

// writeTransition moves the booking to next and stores it with a
// compare-and-set on the status it had before. mutate may set lifecycle
// fields after the status check. It returns the previous status.
func writeTransition(
	ctx context.Context,
	bookingRepo repository.BookingRepository,
	booking *entity.Booking,
	next entity.BookingStatus,
	mutate func(*entity.Booking),
) (entity.BookingStatus, error) {
	previous := booking.Status
	if err := booking.Transition(next); err != nil {
		return previous, domainerrors.ErrInvalidBookingTransition.WrapMessage(err.Error())
	}
	if mutate != nil {
		mutate(booking)
	}

	err := bookingRepo.UpdateStatus(ctx, booking, previous)
	if errors.Is(err, repository.ErrBookingStatusConflict) {
		return previous, domainerrors.ErrBookingStatusChanged.WrapMessage(booking.ID.String())
	}
	if err != nil {
		return previous, errors.Wrapf(err, "failed to store booking status %s", next)
	}

	return previous, nil
}

// bookingEvents announces committed status changes.
type bookingEvents struct {
	publisher service.EventPublisher
	metrics   service.MetricsRecorder
	logger    *slog.Logger
}

// emit records and publishes one committed transition. Publishing failures
// are logged only: the status write already succeeded.
func (e bookingEvents) emit(ctx context.Context, booking *entity.Booking, previous entity.BookingStatus) {
	e.metrics.BookingTransition(previous, booking.Status)

	event := &service.BookingStatusChanged{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		BookingID:  booking.ID,
		Previous:   previous,
		Current:    booking.Status,
		OccurredAt: time.Now(),
	}
	if err := e.publisher.PublishBookingStatusChanged(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).Error("Failed to publish booking status change",
			slog.Any("bookingID", booking.ID),
			slog.String("previous", string(previous)),
			slog.String("current", string(booking.Status)),
			slog.Any("error", err),
		)
	}
}
