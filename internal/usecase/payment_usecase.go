package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Webhook handling outcomes, also used as metric labels.
const (
	WebhookOutcomeProcessed = "processed"
	WebhookOutcomeDuplicate = "duplicate"
	WebhookOutcomeIgnored   = "ignored"
)

// PaymentSession is what the client needs to confirm a payment.
type PaymentSession struct {
	BookingID       uuid.UUID `json:"booking_id"`
	PaymentIntentID string    `json:"payment_intent_id"`
	ClientSecret    string    `json:"client_secret"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
}

// ConnectedAccount is the payout account of a companion and its onboarding link.
type ConnectedAccount struct {
	AccountID     string    `json:"account_id"`
	OnboardingURL string    `json:"onboarding_url"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// WebhookResult reports what was done with one webhook delivery.
type WebhookResult struct {
	EventID string `json:"event_id"`
	Type    string `json:"type"`
	Outcome string `json:"outcome"`
}

// PaymentUsecase takes booking payments and reconciles provider webhooks.
type PaymentUsecase interface {
	// StartPayment creates a destination charge for a confirmed booking.
	StartPayment(ctx context.Context, playerID, bookingID uuid.UUID) (*PaymentSession, error)

	// CreateConnectedAccount opens (or reuses) the companion's payout account and returns a fresh onboarding link.
	CreateConnectedAccount(ctx context.Context, pnjID uuid.UUID) (*ConnectedAccount, error)

	// HandleWebhook verifies and applies one provider event. Replays are safe.
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*WebhookResult, error)
}
