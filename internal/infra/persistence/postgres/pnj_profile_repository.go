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
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pnjProfileRepository struct {
	db *gorm.DB
}

// NewPNJProfileRepository is the constructor for pnjProfileRepository.
func NewPNJProfileRepository(db *gorm.DB) repository.PNJProfileRepository {
	return &pnjProfileRepository{db: db}
}

func (repo *pnjProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PNJProfile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *pnjProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PNJProfile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *pnjProfileRepository) FindByStripeAccountID(ctx context.Context, accountID string) (*entity.PNJProfile, error) {
	return repo.findOne(ctx, "stripe_account_id = ?", accountID)
}

func (repo *pnjProfileRepository) findOne(ctx context.Context, query string, args ...any) (*entity.PNJProfile, error) {
	var profileM model.PNJProfileModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPNJProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find pnj profile")
	}

	return toPNJProfileDomain(&profileM), nil
}

// Upsert inserts or refreshes the editable fields, then reloads the stored row
// so the caller sees the persisted id and counters.
func (repo *pnjProfileRepository) Upsert(ctx context.Context, profile *entity.PNJProfile) error {
	profileM := fromPNJProfileDomain(profile)
	db := repo.db.WithContext(ctx)

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"hourly_rate", "bio", "activities", "updated_at"}),
	}).Create(profileM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("hourly rate must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert pnj profile")
	}

	var stored model.PNJProfileModel
	if err := db.Where("user_id = ?", profile.UserID).First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload pnj profile")
	}
	*profile = *toPNJProfileDomain(&stored)

	return nil
}

func (repo *pnjProfileRepository) SetStripeAccountID(ctx context.Context, id uuid.UUID, accountID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PNJProfileModel{}).
		Where("id = ?", id).
		Update("stripe_account_id", accountID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set stripe account id")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPNJProfileNotFound
	}

	return nil
}

func (repo *pnjProfileRepository) UpdatePayoutStatus(ctx context.Context, accountID string, chargesEnabled, payoutsEnabled bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PNJProfileModel{}).
		Where("stripe_account_id = ?", accountID).
		Updates(map[string]any{
			"charges_enabled": chargesEnabled,
			"payouts_enabled": payoutsEnabled,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payout status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPNJProfileNotFound
	}

	return nil
}

func (repo *pnjProfileRepository) IncrementCompletedBookings(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PNJProfileModel{}).
		Where("id = ?", id).
		UpdateColumn("completed_bookings", gorm.Expr("completed_bookings + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment completed bookings")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPNJProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPNJProfileDomain(data *model.PNJProfileModel) *entity.PNJProfile {
	if data == nil {
		return nil
	}

	activities := []string(data.Activities)
	if activities == nil {
		activities = []string{}
	}

	return &entity.PNJProfile{
		ID:                data.ID,
		UserID:            data.UserID,
		HourlyRate:        data.HourlyRate,
		Bio:               data.Bio,
		Activities:        activities,
		CompletedBookings: data.CompletedBookings,
		StripeAccountID:   stringValue(data.StripeAccountID),
		ChargesEnabled:    data.ChargesEnabled,
		PayoutsEnabled:    data.PayoutsEnabled,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromPNJProfileDomain(data *entity.PNJProfile) *model.PNJProfileModel {
	if data == nil {
		return nil
	}

	activities := data.Activities
	if activities == nil {
		activities = []string{}
	}

	return &model.PNJProfileModel{
		ID:                data.ID,
		UserID:            data.UserID,
		HourlyRate:        data.HourlyRate,
		Bio:               data.Bio,
		Activities:        datatypes.NewJSONSlice(activities),
		CompletedBookings: data.CompletedBookings,
		StripeAccountID:   nullableString(data.StripeAccountID),
		ChargesEnabled:    data.ChargesEnabled,
		PayoutsEnabled:    data.PayoutsEnabled,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// nullableString maps "" to NULL so unique indexes ignore unset values.
func nullableString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func stringValue(value *string) string {
	if value == nil {
		return ""
	}

	return *value
}
