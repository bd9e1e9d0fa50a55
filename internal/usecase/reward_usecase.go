package usecase

import (
	"context"

	"companion/internal/domain/service"
)

// RewardSweepReport summarises one pass over completed bookings left unrewarded.
type RewardSweepReport struct {
	Found    int `json:"found"`
	Rewarded int `json:"rewarded"`
	Failed   int `json:"failed"`
}

// RewardUsecase grants the booking completion rewards.
type RewardUsecase interface {
	// HandleBookingStatusChanged ignores every change except the move into completed,
	// and rewards a booking at most once however often the event is delivered.
	HandleBookingStatusChanged(ctx context.Context, event *service.BookingStatusChanged) error

	// RewardPending rewards completed bookings that no event delivery rewarded.
	RewardPending(ctx context.Context) (*RewardSweepReport, error)
}
