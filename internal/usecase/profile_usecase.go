// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"companion/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// CompleteOnboarding creates the account on first call. Onboarded users receive missions.
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, email string, input *CompleteOnboardingInput) (*entity.User, error)
	UpsertPNJProfile(ctx context.Context, userID uuid.UUID, input *UpsertPNJProfileInput) (*entity.PNJProfile, error)
	GetPNJProfile(ctx context.Context, profileID uuid.UUID) (*entity.PNJProfile, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*Me, error)
}

// --- Input DTOs ---

// CompleteOnboardingInput defines the data required to finish onboarding.
type CompleteOnboardingInput struct {
	DisplayName string      `json:"display_name"`
	Role        entity.Role `json:"role"`
}

// UpsertPNJProfileInput defines the bookable details of a companion.
type UpsertPNJProfileInput struct {
	HourlyRate int64    `json:"hourly_rate"`
	Bio        string   `json:"bio"`
	Activities []string `json:"activities"`
}

// --- Output DTOs ---

// Me is the signed-in user with the companion profile when there is one.
type Me struct {
	User       *entity.User       `json:"user"`
	PNJProfile *entity.PNJProfile `json:"pnj_profile,omitempty"`
}
