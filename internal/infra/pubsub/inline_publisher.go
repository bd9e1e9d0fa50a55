package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"companion/internal/domain/service"
)

const inlineHandlerTimeout = 30 * time.Second

// inlinePublisher hands events straight to an in-process handler on a
// background goroutine. Close waits for in-flight handlers.
type inlinePublisher struct {
	handler service.BookingEventHandler
	logger  *slog.Logger
	wg      sync.WaitGroup
}

// NewInlinePublisher creates a publisher that dispatches without a broker.
func NewInlinePublisher(handler service.BookingEventHandler, logger *slog.Logger) service.EventPublisher {
	return &inlinePublisher{handler: handler, logger: logger}
}

func (p *inlinePublisher) PublishBookingStatusChanged(ctx context.Context, event *service.BookingStatusChanged) error {
	detached := context.WithoutCancel(ctx)
	p.wg.Go(func() {
		runCtx, cancel := context.WithTimeout(detached, inlineHandlerTimeout)
		defer cancel()

		if err := p.handler.HandleBookingStatusChanged(runCtx, event); err != nil {
			p.logger.Error("[InlinePubSub] Booking event handler failed",
				slog.String("booking_id", event.BookingID.String()),
				slog.String("status", string(event.Current)),
				slog.Any("error", err),
			)
		}
	})

	return nil
}

func (p *inlinePublisher) Close() error {
	p.wg.Wait()

	return nil
}
