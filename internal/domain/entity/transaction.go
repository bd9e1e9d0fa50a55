package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the ledger state of a captured payment.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// Transaction is a ledger entry for one captured payment intent.
// A payment intent maps to at most one transaction.
type Transaction struct {
	ID              uuid.UUID         `json:"id"`
	BookingID       uuid.UUID         `json:"booking_id"`
	PaymentIntentID string            `json:"payment_intent_id"`
	PlayerID        uuid.UUID         `json:"player_id"`
	PNJID           uuid.UUID         `json:"pnj_id"`
	Amount          int64             `json:"amount"`
	PlatformFee     int64             `json:"platform_fee"`
	PNJPayout       int64             `json:"pnj_payout"`
	Currency        string            `json:"currency"`
	Status          TransactionStatus `json:"status"`
	TransferID      string            `json:"transfer_id,omitempty"`
	RefundedAt      *time.Time        `json:"refunded_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// NewTransaction records a captured amount for a booking, applying the platform fee split.
func NewTransaction(booking *Booking, paymentIntentID string, amount int64, currency string) *Transaction {
	fee, payout := SplitPlatformFee(amount)
	now := time.Now()

	return &Transaction{
		ID:              uuid.New(),
		BookingID:       booking.ID,
		PaymentIntentID: paymentIntentID,
		PlayerID:        booking.PlayerID,
		PNJID:           booking.PNJID,
		Amount:          amount,
		PlatformFee:     fee,
		PNJPayout:       payout,
		Currency:        currency,
		Status:          TransactionStatusCompleted,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
