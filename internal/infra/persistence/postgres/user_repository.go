// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findByID(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate takes a row lock (SELECT ... FOR UPDATE).
func (repo *userRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findByID(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *userRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := db.Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update writes every column of the user, zero values included.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(userM).
		Select("*").
		Omit("id", "created_at").
		Updates(userM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindOnboardedAfter uses keyset pagination on the primary key.
func (repo *userRepository) FindOnboardedAfter(ctx context.Context, after uuid.UUID, limit int) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("onboarding_completed = ? AND id > ?", true, after).
		Order("id ASC").
		Limit(limit).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to page onboarded users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdateMissions overwrites the missions document of a user.
func (repo *userRepository) UpdateMissions(ctx context.Context, id uuid.UUID, missions entity.UserMissions) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("missions", datatypes.NewJSONType(fromMissionsDomain(missions)))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update missions")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// IncrementCancelledBookings bumps the counter in place.
func (repo *userRepository) IncrementCancelledBookings(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("stat_cancelled_bookings", gorm.Expr("stat_cancelled_bookings + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment cancelled bookings")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetStripeCustomerID stores the customer reference.
func (repo *userRepository) SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("stripe_customer_id", customerID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set stripe customer id")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	badges := []string(data.Badges)
	if badges == nil {
		badges = []string{}
	}

	return &entity.User{
		ID:                  data.ID,
		Email:               data.Email,
		DisplayName:         data.DisplayName,
		Role:                entity.Role(data.Role),
		OnboardingCompleted: data.OnboardingCompleted,
		XP:                  data.XP,
		Level:               data.Level,
		TotalXPEarned:       data.TotalXPEarned,
		Badges:              badges,
		Missions:            toMissionsDomain(data.Missions.Data()),
		Stats: entity.PlayerStats{
			CompletedBookings: data.Stats.CompletedBookings,
			CancelledBookings: data.Stats.CancelledBookings,
			TotalSpent:        data.Stats.TotalSpent,
			UniquePNJMet:      data.Stats.UniquePNJMet,
		},
		StripeCustomerID: data.StripeCustomerID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	badges := data.Badges
	if badges == nil {
		badges = []string{}
	}

	return &model.UserModel{
		ID:                  data.ID,
		Email:               data.Email,
		DisplayName:         data.DisplayName,
		Role:                string(data.Role),
		OnboardingCompleted: data.OnboardingCompleted,
		XP:                  data.XP,
		Level:               data.Level,
		TotalXPEarned:       data.TotalXPEarned,
		Badges:              datatypes.NewJSONSlice(badges),
		Missions:            datatypes.NewJSONType(fromMissionsDomain(data.Missions)),
		Stats: model.PlayerStatsColumns{
			CompletedBookings: data.Stats.CompletedBookings,
			CancelledBookings: data.Stats.CancelledBookings,
			TotalSpent:        data.Stats.TotalSpent,
			UniquePNJMet:      data.Stats.UniquePNJMet,
		},
		StripeCustomerID: data.StripeCustomerID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toMissionsDomain(doc model.MissionsDocument) entity.UserMissions {
	return entity.UserMissions{
		Daily:           toMissionList(doc.Daily),
		Weekly:          toMissionList(doc.Weekly),
		DailyLastReset:  doc.DailyLastReset,
		WeeklyLastReset: doc.WeeklyLastReset,
	}
}

func fromMissionsDomain(missions entity.UserMissions) model.MissionsDocument {
	return model.MissionsDocument{
		Daily:           fromMissionList(missions.Daily),
		Weekly:          fromMissionList(missions.Weekly),
		DailyLastReset:  missions.DailyLastReset,
		WeeklyLastReset: missions.WeeklyLastReset,
	}
}

func toMissionList(docs []model.MissionDocument) []entity.Mission {
	missions := make([]entity.Mission, 0, len(docs))
	for _, doc := range docs {
		missions = append(missions, entity.Mission{
			ID:          doc.ID,
			TemplateID:  doc.TemplateID,
			Type:        entity.MissionType(doc.Type),
			Title:       doc.Title,
			Description: doc.Description,
			Requirement: entity.MissionRequirement{
				Type:    entity.RequirementType(doc.Requirement.Type),
				Target:  doc.Requirement.Target,
				Current: doc.Requirement.Current,
			},
			Rewards: entity.MissionRewards{
				XP:    doc.Rewards.XP,
				Badge: doc.Rewards.Badge,
			},
			Completed:  doc.Completed,
			Claimed:    doc.Claimed,
			AssignedAt: doc.AssignedAt,
			ExpiresAt:  doc.ExpiresAt,
		})
	}

	return missions
}

func fromMissionList(missions []entity.Mission) []model.MissionDocument {
	docs := make([]model.MissionDocument, 0, len(missions))
	for _, mission := range missions {
		var doc model.MissionDocument
		doc.ID = mission.ID
		doc.TemplateID = mission.TemplateID
		doc.Type = string(mission.Type)
		doc.Title = mission.Title
		doc.Description = mission.Description
		doc.Requirement.Type = string(mission.Requirement.Type)
		doc.Requirement.Target = mission.Requirement.Target
		doc.Requirement.Current = mission.Requirement.Current
		doc.Rewards.XP = mission.Rewards.XP
		doc.Rewards.Badge = mission.Rewards.Badge
		doc.Completed = mission.Completed
		doc.Claimed = mission.Claimed
		doc.AssignedAt = mission.AssignedAt
		doc.ExpiresAt = mission.ExpiresAt
		docs = append(docs, doc)
	}

	return docs
}
