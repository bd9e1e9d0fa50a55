package repository

import (
	"context"

	"companion/internal/domain/entity"
	"companion/internal/errors"

	"github.com/google/uuid"
)

// ErrPNJProfileNotFound is returned when no companion profile matches the lookup.
var ErrPNJProfileNotFound = errors.New("pnj profile not found")

// PNJProfileRepository persists companion profiles.
type PNJProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PNJProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PNJProfile, error)
	FindByStripeAccountID(ctx context.Context, accountID string) (*entity.PNJProfile, error)

	// Upsert creates the profile or updates rate, bio and activities of the
	// existing profile of the same user.
	Upsert(ctx context.Context, profile *entity.PNJProfile) error

	// SetStripeAccountID links a connected account to the profile.
	SetStripeAccountID(ctx context.Context, id uuid.UUID, accountID string) error

	// UpdatePayoutStatus mirrors the connected account capabilities.
	// Returns ErrPNJProfileNotFound when no profile owns the account.
	UpdatePayoutStatus(ctx context.Context, accountID string, chargesEnabled, payoutsEnabled bool) error

	IncrementCompletedBookings(ctx context.Context, id uuid.UUID) error
}
