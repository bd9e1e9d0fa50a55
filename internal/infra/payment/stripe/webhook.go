package stripe

import (
	"encoding/json"

	"companion/config"
	"companion/internal/domain/service"
	"companion/internal/errors"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

type webhookParser struct {
	secret string
}

// NewWebhookParser verifies deliveries with the endpoint signing secret.
func NewWebhookParser(cfg *config.Config) (service.WebhookParser, error) {
	if cfg.Stripe == nil || cfg.Stripe.WebhookSecret == "" {
		return nil, errors.New("stripe webhook secret is required")
	}

	return &webhookParser{secret: cfg.Stripe.WebhookSecret}, nil
}

// ParseWebhook checks the Stripe-Signature header (timestamp tolerance
// included) before decoding anything. Events pinned to another API version
// are accepted since only stable fields are read.
func (p *webhookParser) ParseWebhook(payload []byte, signatureHeader string) (service.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, p.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidWebhookSignature, err.Error())
	}

	meta := service.EventMeta{ID: event.ID}

	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded:
		var intent stripe.PaymentIntent
		if err := decodeObject(event, &intent); err != nil {
			return nil, err
		}
		amount := intent.AmountReceived
		if amount == 0 {
			amount = intent.Amount
		}

		return &service.PaymentSucceeded{
			EventMeta:       meta,
			PaymentIntentID: intent.ID,
			BookingID:       bookingIDFromMetadata(intent.Metadata),
			Amount:          amount,
			Currency:        string(intent.Currency),
		}, nil

	case stripe.EventTypePaymentIntentPaymentFailed:
		var intent stripe.PaymentIntent
		if err := decodeObject(event, &intent); err != nil {
			return nil, err
		}
		message := "payment failed"
		if intent.LastPaymentError != nil && intent.LastPaymentError.Msg != "" {
			message = intent.LastPaymentError.Msg
		}

		return &service.PaymentFailed{
			EventMeta:       meta,
			PaymentIntentID: intent.ID,
			BookingID:       bookingIDFromMetadata(intent.Metadata),
			Message:         message,
		}, nil

	case stripe.EventTypeChargeRefunded:
		var charge stripe.Charge
		if err := decodeObject(event, &charge); err != nil {
			return nil, err
		}
		var intentID string
		if charge.PaymentIntent != nil {
			intentID = charge.PaymentIntent.ID
		}

		return &service.ChargeRefunded{
			EventMeta:       meta,
			PaymentIntentID: intentID,
			AmountRefunded:  charge.AmountRefunded,
			FullyRefunded:   charge.Refunded,
		}, nil

	case stripe.EventTypeAccountUpdated:
		var account stripe.Account
		if err := decodeObject(event, &account); err != nil {
			return nil, err
		}

		return &service.AccountUpdated{
			EventMeta:      meta,
			AccountID:      account.ID,
			ChargesEnabled: account.ChargesEnabled,
			PayoutsEnabled: account.PayoutsEnabled,
		}, nil

	case stripe.EventTypeTransferCreated:
		var transfer stripe.Transfer
		if err := decodeObject(event, &transfer); err != nil {
			return nil, err
		}
		bookingID, _ := uuid.Parse(transfer.TransferGroup)

		return &service.TransferCreated{
			EventMeta:  meta,
			TransferID: transfer.ID,
			BookingID:  bookingID,
		}, nil

	default:
		return &service.UnhandledEvent{EventMeta: meta, Type: string(event.Type)}, nil
	}
}

func decodeObject(event stripe.Event, target any) error {
	if event.Data == nil {
		return errors.Errorf("event %s has no data", event.ID)
	}
	if err := json.Unmarshal(event.Data.Raw, target); err != nil {
		return errors.Wrapf(err, "failed to decode %s payload", event.Type)
	}

	return nil
}

// bookingIDFromMetadata returns uuid.Nil when the intent was not created by us.
func bookingIDFromMetadata(metadata map[string]string) uuid.UUID {
	id, err := uuid.Parse(metadata[metadataBookingID])
	if err != nil {
		return uuid.Nil
	}

	return id
}
