package postgres

import (
	"context"
	"time"

	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// transactionRepository persists the payment ledger. Not to be confused with
// the database transaction manager in transaction.go.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

// Upsert relies on the unique payment_intent_id index: a redelivered webhook
// inserts nothing and reports false.
func (repo *transactionRepository) Upsert(ctx context.Context, tx *entity.Transaction) (bool, error) {
	txM := fromTransactionDomain(tx)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "payment_intent_id"}},
			DoNothing: true,
		}).
		Create(txM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return false, repository.ErrBookingNotFound
		}

		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to record transaction")
	}

	return result.RowsAffected == 1, nil
}

func (repo *transactionRepository) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*entity.Transaction, error) {
	return repo.findOne(ctx, "payment_intent_id = ?", paymentIntentID)
}

func (repo *transactionRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Transaction, error) {
	return repo.findOne(ctx, "booking_id = ?", bookingID)
}

func (repo *transactionRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Transaction, error) {
	var txM model.TransactionModel
	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		First(&txM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return toTransactionDomain(&txM), nil
}

func (repo *transactionRepository) MarkRefunded(ctx context.Context, paymentIntentID string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("payment_intent_id = ?", paymentIntentID).
		Updates(map[string]any{
			"status":      string(entity.TransactionStatusRefunded),
			"refunded_at": at,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark transaction refunded")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

func (repo *transactionRepository) SetTransferID(ctx context.Context, bookingID uuid.UUID, transferID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("booking_id = ?", bookingID).
		Updates(map[string]any{
			"transfer_id": transferID,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set transfer id")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	return &entity.Transaction{
		ID:              data.ID,
		BookingID:       data.BookingID,
		PaymentIntentID: data.PaymentIntentID,
		PlayerID:        data.PlayerID,
		PNJID:           data.PNJID,
		Amount:          data.Amount,
		PlatformFee:     data.PlatformFee,
		PNJPayout:       data.PNJPayout,
		Currency:        data.Currency,
		Status:          entity.TransactionStatus(data.Status),
		TransferID:      data.TransferID,
		RefundedAt:      data.RefundedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	return &model.TransactionModel{
		ID:              data.ID,
		BookingID:       data.BookingID,
		PaymentIntentID: data.PaymentIntentID,
		PlayerID:        data.PlayerID,
		PNJID:           data.PNJID,
		Amount:          data.Amount,
		PlatformFee:     data.PlatformFee,
		PNJPayout:       data.PNJPayout,
		Currency:        data.Currency,
		Status:          string(data.Status),
		TransferID:      data.TransferID,
		RefundedAt:      data.RefundedAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
