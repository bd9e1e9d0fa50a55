package entity

import (
	"math"
	"slices"
	"time"

	"companion/internal/errors"

	"github.com/google/uuid"
)

// BookingStatus is a state of the booking lifecycle.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusOngoing   BookingStatus = "ongoing"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusRefunded  BookingStatus = "refunded"
)

// PlatformFeeRate is the commission kept on every booking payment.
const PlatformFeeRate = 0.20

var (
	// ErrInvalidBookingTransition is returned when a status change is not allowed from the current state.
	ErrInvalidBookingTransition = errors.New("invalid booking status transition")
	// ErrBookingNotPayable is returned when a payment is attempted on a booking that is not confirmed.
	ErrBookingNotPayable = errors.New("booking is not payable")
)

// bookingTransitions lists the allowed next states. Completed may be reached
// from paid directly because check-in is optional. A cancelled booking can still
// be refunded: its payment intent may succeed after the cancellation.
//
//nolint:gochecknoglobals
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled, BookingStatusRejected},
	BookingStatusConfirmed: {BookingStatusPaid, BookingStatusCancelled},
	BookingStatusPaid:      {BookingStatusOngoing, BookingStatusCompleted, BookingStatusRefunded},
	BookingStatusOngoing:   {BookingStatusCompleted, BookingStatusRefunded},
	BookingStatusCompleted: {BookingStatusRefunded},
	BookingStatusCancelled: {BookingStatusRefunded},
}

// IsValid checks if the status is a known value.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusPaid, BookingStatusOngoing,
		BookingStatusCompleted, BookingStatusCancelled, BookingStatusRejected, BookingStatusRefunded:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is reachable in one step.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return slices.Contains(bookingTransitions[s], next)
}

// IsTerminal reports whether no further transition exists.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// IsPaidOrLater reports whether money has already been captured for the booking.
func (s BookingStatus) IsPaidOrLater() bool {
	switch s {
	case BookingStatusPaid, BookingStatusOngoing, BookingStatusCompleted, BookingStatusRefunded:
		return true
	default:
		return false
	}
}

// Booking is a reservation of a PNJ by a player.
type Booking struct {
	ID                 uuid.UUID     `json:"id"`
	PlayerID           uuid.UUID     `json:"player_id"`
	PNJID              uuid.UUID     `json:"pnj_id"` // User id of the companion.
	PNJProfileID       uuid.UUID     `json:"pnj_profile_id"`
	Activity           string        `json:"activity"`
	ScheduledAt        time.Time     `json:"scheduled_at"`
	DurationHours      int           `json:"duration_hours"`
	HourlyRate         int64         `json:"hourly_rate"`
	TotalPrice         int64         `json:"total_price"`
	PlatformFee        int64         `json:"platform_fee"`
	PNJEarnings        int64         `json:"pnj_earnings"`
	Currency           string        `json:"currency"`
	Status             BookingStatus `json:"status"`
	CancellationReason string        `json:"cancellation_reason,omitempty"`
	CancelledBy        *uuid.UUID    `json:"cancelled_by,omitempty"`
	PaymentIntentID    string        `json:"payment_intent_id,omitempty"`
	PaymentError       string        `json:"payment_error,omitempty"`
	CheckInCode        string        `json:"-"`
	CheckedInAt        *time.Time    `json:"checked_in_at,omitempty"`
	CompletedAt        *time.Time    `json:"completed_at,omitempty"`
	RewardedAt         *time.Time    `json:"rewarded_at,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// NewBooking prices a pending booking from the companion's hourly rate.
func NewBooking(playerID uuid.UUID, profile *PNJProfile, activity string, scheduledAt time.Time, durationHours int, currency string) *Booking {
	total := profile.HourlyRate * int64(durationHours)
	fee, earnings := SplitPlatformFee(total)
	now := time.Now()

	return &Booking{
		ID:            uuid.New(),
		PlayerID:      playerID,
		PNJID:         profile.UserID,
		PNJProfileID:  profile.ID,
		Activity:      activity,
		ScheduledAt:   scheduledAt,
		DurationHours: durationHours,
		HourlyRate:    profile.HourlyRate,
		TotalPrice:    total,
		PlatformFee:   fee,
		PNJEarnings:   earnings,
		Currency:      currency,
		Status:        BookingStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// SplitPlatformFee returns the rounded platform commission and the remainder owed to the PNJ.
func SplitPlatformFee(amount int64) (fee, payout int64) {
	fee = int64(math.Round(float64(amount) * PlatformFeeRate))

	return fee, amount - fee
}

// Transition moves the booking to next if the state machine allows it.
func (b *Booking) Transition(next BookingStatus) error {
	if !b.Status.CanTransitionTo(next) {
		return errors.Wrapf(ErrInvalidBookingTransition, "%s -> %s", b.Status, next)
	}
	b.Status = next
	b.UpdatedAt = time.Now()

	return nil
}

// Pay is only valid on a confirmed booking.
func (b *Booking) Pay() error {
	if b.Status != BookingStatusConfirmed {
		return errors.Wrapf(ErrBookingNotPayable, "status is %s", b.Status)
	}

	return b.Transition(BookingStatusPaid)
}

// IsParticipant reports whether the user is the player or the PNJ of the booking.
func (b *Booking) IsParticipant(userID uuid.UUID) bool {
	return b.PlayerID == userID || b.PNJID == userID
}

// Counterpart returns the other participant.
func (b *Booking) Counterpart(userID uuid.UUID) uuid.UUID {
	if b.PlayerID == userID {
		return b.PNJID
	}

	return b.PlayerID
}
