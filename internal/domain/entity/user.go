// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root for a marketplace account and its gamification state.
// XP is cumulative and never decreases; Level always equals the level derived from XP.
type User struct {
	ID                  uuid.UUID    `json:"id"`
	Email               string       `json:"email"`
	DisplayName         string       `json:"display_name"`
	Role                Role         `json:"role"`
	OnboardingCompleted bool         `json:"onboarding_completed"`
	XP                  int64        `json:"xp"`
	Level               int          `json:"level"`
	TotalXPEarned       int64        `json:"total_xp_earned"`
	Badges              []string     `json:"badges"`
	Missions            UserMissions `json:"missions"`
	Stats               PlayerStats  `json:"stats"`
	StripeCustomerID    string       `json:"-"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// PlayerStats are the booking counters kept on a user.
type PlayerStats struct {
	CompletedBookings int   `json:"completed_bookings"`
	CancelledBookings int   `json:"cancelled_bookings"`
	TotalSpent        int64 `json:"total_spent"` // Minor currency units.
	UniquePNJMet      int   `json:"unique_pnj_met"`
}

// HasBadge reports whether the badge is already unlocked.
func (u *User) HasBadge(badge string) bool {
	return slices.Contains(u.Badges, badge)
}

// AddBadge unlocks a badge once. It returns false if the user already had it.
func (u *User) AddBadge(badge string) bool {
	if badge == "" || u.HasBadge(badge) {
		return false
	}
	u.Badges = append(u.Badges, badge)

	return true
}
