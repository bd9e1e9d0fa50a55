package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(status BookingStatus) *Booking {
	profile := &PNJProfile{ID: uuid.New(), UserID: uuid.New(), HourlyRate: 2500}
	booking := NewBooking(uuid.New(), profile, "bowling", time.Now().Add(24*time.Hour), 2, "eur")
	booking.Status = status

	return booking
}

func TestNewBooking_Pricing(t *testing.T) {
	profile := &PNJProfile{ID: uuid.New(), UserID: uuid.New(), HourlyRate: 3333}
	playerID := uuid.New()

	booking := NewBooking(playerID, profile, "museum", time.Now(), 3, "eur")

	assert.Equal(t, BookingStatusPending, booking.Status)
	assert.Equal(t, playerID, booking.PlayerID)
	assert.Equal(t, profile.UserID, booking.PNJID)
	assert.Equal(t, profile.ID, booking.PNJProfileID)
	assert.EqualValues(t, 9999, booking.TotalPrice)
	assert.EqualValues(t, 2000, booking.PlatformFee)
	assert.EqualValues(t, 7999, booking.PNJEarnings)
	assert.Equal(t, booking.TotalPrice, booking.PlatformFee+booking.PNJEarnings)
}

func TestSplitPlatformFee(t *testing.T) {
	tests := []struct {
		amount int64
		fee    int64
		payout int64
	}{
		{10000, 2000, 8000},
		{0, 0, 0},
		{1, 0, 1},
		{3, 1, 2},
		{12345, 2469, 9876},
	}

	for _, tt := range tests {
		fee, payout := SplitPlatformFee(tt.amount)
		assert.Equal(t, tt.fee, fee, "amount %d", tt.amount)
		assert.Equal(t, tt.payout, payout, "amount %d", tt.amount)
	}
}

func TestBookingStatus_Transitions(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		ok   bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusRejected, true},
		{BookingStatusPending, BookingStatusPaid, false},
		{BookingStatusConfirmed, BookingStatusPaid, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusRejected, false},
		{BookingStatusPaid, BookingStatusOngoing, true},
		{BookingStatusPaid, BookingStatusCompleted, true},
		{BookingStatusPaid, BookingStatusCancelled, false},
		{BookingStatusOngoing, BookingStatusCompleted, true},
		{BookingStatusOngoing, BookingStatusPaid, false},
		{BookingStatusCompleted, BookingStatusCompleted, false},
		{BookingStatusCompleted, BookingStatusRefunded, true},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusRefunded, true},
		{BookingStatusRejected, BookingStatusRefunded, false},
		{BookingStatusRejected, BookingStatusPending, false},
		{BookingStatusRefunded, BookingStatusPaid, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			booking := newTestBooking(tt.from)
			err := booking.Transition(tt.to)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, booking.Status)

				return
			}
			assert.ErrorIs(t, err, ErrInvalidBookingTransition)
			assert.Equal(t, tt.from, booking.Status)
		})
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.False(t, BookingStatusCancelled.IsTerminal())
	assert.True(t, BookingStatusRejected.IsTerminal())
	assert.True(t, BookingStatusRefunded.IsTerminal())
	assert.False(t, BookingStatusCompleted.IsTerminal())
	assert.False(t, BookingStatusPending.IsTerminal())
}

func TestBooking_Pay(t *testing.T) {
	booking := newTestBooking(BookingStatusConfirmed)
	require.NoError(t, booking.Pay())
	assert.Equal(t, BookingStatusPaid, booking.Status)

	for _, status := range []BookingStatus{BookingStatusPending, BookingStatusPaid, BookingStatusCancelled, BookingStatusCompleted} {
		booking := newTestBooking(status)
		err := booking.Pay()
		assert.ErrorIs(t, err, ErrBookingNotPayable, "status %s", status)
		assert.Equal(t, status, booking.Status)
	}
}

func TestBooking_Participants(t *testing.T) {
	booking := newTestBooking(BookingStatusPending)

	assert.True(t, booking.IsParticipant(booking.PlayerID))
	assert.True(t, booking.IsParticipant(booking.PNJID))
	assert.False(t, booking.IsParticipant(uuid.New()))
	assert.Equal(t, booking.PNJID, booking.Counterpart(booking.PlayerID))
	assert.Equal(t, booking.PlayerID, booking.Counterpart(booking.PNJID))
}

func TestNewTransaction_FeeSplit(t *testing.T) {
	booking := newTestBooking(BookingStatusPaid)

	tx := NewTransaction(booking, "pi_123", 10000, "eur")

	assert.Equal(t, booking.ID, tx.BookingID)
	assert.Equal(t, "pi_123", tx.PaymentIntentID)
	assert.EqualValues(t, 2000, tx.PlatformFee)
	assert.EqualValues(t, 8000, tx.PNJPayout)
	assert.Equal(t, TransactionStatusCompleted, tx.Status)
}
