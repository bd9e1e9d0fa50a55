package entity

import (
	"time"

	"github.com/google/uuid"
)

// PNJProfile is the bookable side of a companion account.
type PNJProfile struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	HourlyRate        int64     `json:"hourly_rate"` // Minor currency units.
	Bio               string    `json:"bio"`
	Activities        []string  `json:"activities"`
	CompletedBookings int       `json:"completed_bookings"`
	StripeAccountID   string    `json:"-"`
	ChargesEnabled    bool      `json:"charges_enabled"`
	PayoutsEnabled    bool      `json:"payouts_enabled"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CanReceivePayments reports whether a connected account is ready for destination charges.
func (p *PNJProfile) CanReceivePayments() bool {
	return p.StripeAccountID != "" && p.ChargesEnabled
}
