package service

import (
	"context"
	"time"

	"companion/internal/domain/entity"
	"companion/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrInvalidWebhookSignature is returned when a webhook payload fails verification.
	ErrInvalidWebhookSignature = errors.New("invalid webhook signature")
	// ErrPaymentProvider wraps failures reported by the payment provider API.
	ErrPaymentProvider = errors.New("payment provider request failed")
)

// PaymentIntentParams describes a destination charge for one booking.
type PaymentIntentParams struct {
	BookingID            uuid.UUID
	Amount               int64
	Currency             string
	ApplicationFee       int64
	CustomerID           string
	DestinationAccountID string
	Description          string
}

// PaymentIntent is the subset of the provider's payment intent the client needs.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

// OnboardingLink sends a companion to the provider's hosted account onboarding.
type OnboardingLink struct {
	URL       string
	ExpiresAt time.Time
}

// PaymentGateway abstracts the payment provider API.
type PaymentGateway interface {
	// CreateCustomer registers the player with the provider and returns its customer id.
	CreateCustomer(ctx context.Context, user *entity.User) (string, error)

	// CreateConnectedAccount opens a payout account for a companion.
	CreateConnectedAccount(ctx context.Context, user *entity.User) (string, error)

	CreateOnboardingLink(ctx context.Context, accountID string) (*OnboardingLink, error)

	CreatePaymentIntent(ctx context.Context, params PaymentIntentParams) (*PaymentIntent, error)
}

// WebhookParser verifies and decodes provider webhook deliveries.
type WebhookParser interface {
	// ParseWebhook returns ErrInvalidWebhookSignature when the signature does not match.
	// Event types the service does not act on come back as *UnhandledEvent.
	ParseWebhook(payload []byte, signatureHeader string) (PaymentEvent, error)
}

// PaymentEvent is one of the typed webhook events below.
type PaymentEvent interface {
	EventID() string
	paymentEvent()
}

// EventMeta is embedded by every payment event.
type EventMeta struct {
	ID string
}

func (m EventMeta) EventID() string { return m.ID }
func (EventMeta) paymentEvent()     {}

// PaymentSucceeded maps payment_intent.succeeded.
type PaymentSucceeded struct {
	EventMeta
	PaymentIntentID string
	BookingID       uuid.UUID
	Amount          int64
	Currency        string
}

// PaymentFailed maps payment_intent.payment_failed.
type PaymentFailed struct {
	EventMeta
	PaymentIntentID string
	BookingID       uuid.UUID
	Message         string
}

// ChargeRefunded maps charge.refunded.
type ChargeRefunded struct {
	EventMeta
	PaymentIntentID string
	AmountRefunded  int64
	FullyRefunded   bool
}

// AccountUpdated maps account.updated for connected accounts.
type AccountUpdated struct {
	EventMeta
	AccountID      string
	ChargesEnabled bool
	PayoutsEnabled bool
}

// TransferCreated maps transfer.created. BookingID comes from the transfer group.
type TransferCreated struct {
	EventMeta
	TransferID string
	BookingID  uuid.UUID
}

// UnhandledEvent carries any event type the service ignores.
type UnhandledEvent struct {
	EventMeta
	Type string
}

