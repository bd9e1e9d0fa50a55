package repository

import (
	"context"
	"time"

	"companion/internal/domain/entity"
	"companion/internal/errors"

	"github.com/google/uuid"
)

// ErrTransactionNotFound is returned when no payment transaction matches the lookup.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository persists the payment ledger. One row per payment intent.
type TransactionRepository interface {
	// Upsert inserts the transaction unless one already exists for the same
	// payment intent. Reports whether a row was inserted.
	Upsert(ctx context.Context, tx *entity.Transaction) (bool, error)

	FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*entity.Transaction, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Transaction, error)

	MarkRefunded(ctx context.Context, paymentIntentID string, at time.Time) error
	SetTransferID(ctx context.Context, bookingID uuid.UUID, transferID string) error
}
