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
)

const defaultBookingPageSize = 50

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPNJProfileNotFound
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid booking record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *bookingRepository) FindByPaymentIntentID(ctx context.Context, paymentIntentID string) (*entity.Booking, error) {
	return repo.findOne(ctx, "payment_intent_id = ?", paymentIntentID)
}

func (repo *bookingRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Booking, error) {
	var bookingM model.BookingModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	return toBookingDomain(&bookingM), nil
}

func (repo *bookingRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter repository.BookingFilter) ([]*entity.Booking, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultBookingPageSize
	}

	query := repo.db.WithContext(ctx).
		Where("player_id = ? OR pnj_id = ?", userID, userID)
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		query = query.Where("status IN ?", statuses)
	}

	var bookingModels []*model.BookingModel
	if err := query.
		Order("scheduled_at DESC").
		Limit(limit).
		Offset(max(filter.Offset, 0)).
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	bookings := make([]*entity.Booking, 0, len(bookingModels))
	for _, bookingM := range bookingModels {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// UpdateStatus is a compare-and-set on status.
func (repo *bookingRepository) UpdateStatus(ctx context.Context, booking *entity.Booking, expected entity.BookingStatus) error {
	db := repo.db.WithContext(ctx)

	result := db.Model(&model.BookingModel{}).
		Where("id = ? AND status = ?", booking.ID, string(expected)).
		Updates(map[string]any{
			"status":              string(booking.Status),
			"cancellation_reason": booking.CancellationReason,
			"cancelled_by":        booking.CancelledBy,
			"payment_error":       booking.PaymentError,
			"check_in_code":       booking.CheckInCode,
			"checked_in_at":       booking.CheckedInAt,
			"completed_at":        booking.CompletedAt,
			"updated_at":          booking.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking status")
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var count int64
	if err := db.Model(&model.BookingModel{}).Where("id = ?", booking.ID).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check booking existence")
	}
	if count == 0 {
		return repository.ErrBookingNotFound
	}

	return errors.Wrapf(repository.ErrBookingStatusConflict, "expected %s", expected)
}

func (repo *bookingRepository) SetPaymentIntent(ctx context.Context, id uuid.UUID, paymentIntentID string) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"payment_intent_id": paymentIntentID,
		"payment_error":     "",
	})
}

func (repo *bookingRepository) SetPaymentError(ctx context.Context, id uuid.UUID, message string) error {
	return repo.updateColumns(ctx, id, map[string]any{"payment_error": message})
}

func (repo *bookingRepository) updateColumns(ctx context.Context, id uuid.UUID, values map[string]any) error {
	values["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("payment intent already linked to another booking")
		}

		return errors.Wrap(result.Error, "failed to update booking")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// MarkRewarded only succeeds for the first caller.
func (repo *bookingRepository) MarkRewarded(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ? AND rewarded_at IS NULL", id).
		Update("rewarded_at", at)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark booking rewarded")
	}

	return result.RowsAffected == 1, nil
}

func (repo *bookingRepository) FindUnrewardedCompleted(ctx context.Context, completedBefore time.Time, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("status = ? AND rewarded_at IS NULL AND completed_at < ?", string(entity.BookingStatusCompleted), completedBefore).
		Order("completed_at ASC").
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list unrewarded bookings")
	}

	return ids, nil
}

func (repo *bookingRepository) CountRewardedBetween(ctx context.Context, playerID, pnjID, exclude uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("player_id = ? AND pnj_id = ? AND rewarded_at IS NOT NULL AND id <> ?", playerID, pnjID, exclude).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count rewarded bookings")
	}

	return count, nil
}

// --- Mapper Functions ---

func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:                 data.ID,
		PlayerID:           data.PlayerID,
		PNJID:              data.PNJID,
		PNJProfileID:       data.PNJProfileID,
		Activity:           data.Activity,
		ScheduledAt:        data.ScheduledAt,
		DurationHours:      data.DurationHours,
		HourlyRate:         data.HourlyRate,
		TotalPrice:         data.TotalPrice,
		PlatformFee:        data.PlatformFee,
		PNJEarnings:        data.PNJEarnings,
		Currency:           data.Currency,
		Status:             entity.BookingStatus(data.Status),
		CancellationReason: data.CancellationReason,
		CancelledBy:        data.CancelledBy,
		PaymentIntentID:    stringValue(data.PaymentIntentID),
		PaymentError:       data.PaymentError,
		CheckInCode:        data.CheckInCode,
		CheckedInAt:        data.CheckedInAt,
		CompletedAt:        data.CompletedAt,
		RewardedAt:         data.RewardedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:                 data.ID,
		PlayerID:           data.PlayerID,
		PNJID:              data.PNJID,
		PNJProfileID:       data.PNJProfileID,
		Activity:           data.Activity,
		ScheduledAt:        data.ScheduledAt,
		DurationHours:      data.DurationHours,
		HourlyRate:         data.HourlyRate,
		TotalPrice:         data.TotalPrice,
		PlatformFee:        data.PlatformFee,
		PNJEarnings:        data.PNJEarnings,
		Currency:           data.Currency,
		Status:             string(data.Status),
		CancellationReason: data.CancellationReason,
		CancelledBy:        data.CancelledBy,
		PaymentIntentID:    nullableString(data.PaymentIntentID),
		PaymentError:       data.PaymentError,
		CheckInCode:        data.CheckInCode,
		CheckedInAt:        data.CheckedInAt,
		CompletedAt:        data.CompletedAt,
		RewardedAt:         data.RewardedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
