// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"companion/internal/domain/entity"
	"companion/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the id or email is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDForUpdate retrieves a user and locks the row until the surrounding
	// transaction ends. Outside a transaction it behaves like FindByID.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// FindOnboardedAfter pages through onboarded users ordered by id, starting
	// strictly after the given id. uuid.Nil starts from the beginning.
	FindOnboardedAfter(ctx context.Context, after uuid.UUID, limit int) ([]*entity.User, error)

	// UpdateMissions overwrites the mission state of a user.
	UpdateMissions(ctx context.Context, id uuid.UUID, missions entity.UserMissions) error

	// IncrementCancelledBookings bumps the cancellation counter of a user.
	IncrementCancelledBookings(ctx context.Context, id uuid.UUID) error

	// SetStripeCustomerID stores the payment provider customer reference.
	SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) error
}
