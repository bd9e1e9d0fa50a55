package stripe

import (
	"fmt"
	"testing"
	"time"

	"companion/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func signedEvent(t *testing.T, eventType, object string) ([]byte, string) {
	t.Helper()

	payload := fmt.Appendf(nil, `{"id":"evt_1","object":"event","api_version":"2020-08-27","type":%q,"data":{"object":%s}}`, eventType, object)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})

	return signed.Payload, signed.Header
}

func TestParseWebhook_PaymentSucceeded(t *testing.T) {
	parser := &webhookParser{secret: testWebhookSecret}
	bookingID := uuid.New()
	payload, header := signedEvent(t, "payment_intent.succeeded",
		fmt.Sprintf(`{"id":"pi_1","object":"payment_intent","amount":5000,"amount_received":5000,"currency":"eur","metadata":{"booking_id":%q}}`, bookingID))

	event, err := parser.ParseWebhook(payload, header)
	require.NoError(t, err)

	succeeded, ok := event.(*service.PaymentSucceeded)
	require.True(t, ok, "got %T", event)
	assert.Equal(t, "evt_1", succeeded.EventID())
	assert.Equal(t, "pi_1", succeeded.PaymentIntentID)
	assert.Equal(t, bookingID, succeeded.BookingID)
	assert.EqualValues(t, 5000, succeeded.Amount)
	assert.Equal(t, "eur", succeeded.Currency)
}

func TestParseWebhook_PaymentFailed(t *testing.T) {
	parser := &webhookParser{secret: testWebhookSecret}
	payload, header := signedEvent(t, "payment_intent.payment_failed",
		`{"id":"pi_2","object":"payment_intent","metadata":{},"last_payment_error":{"message":"Your card has insufficient funds."}}`)

	event, err := parser.ParseWebhook(payload, header)
	require.NoError(t, err)

	failed, ok := event.(*service.PaymentFailed)
	require.True(t, ok, "got %T", event)
	assert.Equal(t, "pi_2", failed.PaymentIntentID)
	assert.Equal(t, uuid.Nil, failed.BookingID)
	assert.Equal(t, "Your card has insufficient funds.", failed.Message)
}

func TestParseWebhook_ChargeRefunded(t *testing.T) {
	parser := &webhookParser{secret: testWebhookSecret}
	payload, header := signedEvent(t, "charge.refunded",
		`{"id":"ch_1","object":"charge","payment_intent":"pi_3","amount_refunded":5000,"refunded":true}`)

	event, err := parser.ParseWebhook(payload, header)
	require.NoError(t, err)

	refunded, ok := event.(*service.ChargeRefunded)
	require.True(t, ok, "got %T", event)
	assert.Equal(t, "pi_3", refunded.PaymentIntentID)
	assert.EqualValues(t, 5000, refunded.AmountRefunded)
	assert.True(t, refunded.FullyRefunded)
}

func TestParseWebhook_AccountAndTransfer(t *testing.T) {
	parser := &webhookParser{secret: testWebhookSecret}

	payload, header := signedEvent(t, "account.updated",
		`{"id":"acct_1","object":"account","charges_enabled":true,"payouts_enabled":false}`)
	event, err := parser.ParseWebhook(payload, header)
	require.NoError(t, err)
	account, ok := event.(*service.AccountUpdated)
	require.True(t, ok, "got %T", event)
	assert.Equal(t, "acct_1", account.AccountID)
	assert.True(t, account.ChargesEnabled)
	assert.False(t, account.PayoutsEnabled)

	bookingID := uuid.New()
	payload, header = signedEvent(t, "transfer.created",
		fmt.Sprintf(`{"id":"tr_1","object":"transfer","transfer_group":%q}`, bookingID))
	event, err = parser.ParseWebhook(payload, header)
	require.NoError(t, err)
	transfer, ok := event.(*service.TransferCreated)
	require.True(t, ok, "got %T", event)
	assert.Equal(t, "tr_1", transfer.TransferID)
	assert.Equal(t, bookingID, transfer.BookingID)
}

func TestParseWebhook_UnknownTypeIsUnhandled(t *testing.T) {
	parser := &webhookParser{secret: testWebhookSecret}
	payload, header := signedEvent(t, "customer.created", `{"id":"cus_1","object":"customer"}`)

	event, err := parser.ParseWebhook(payload, header)
	require.NoError(t, err)

	unhandled, ok := event.(*service.UnhandledEvent)
	require.True(t, ok, "got %T", event)
	assert.Equal(t, "customer.created", unhandled.Type)
}

func TestParseWebhook_InvalidSignature(t *testing.T) {
	parser := &webhookParser{secret: testWebhookSecret}
	payload, _ := signedEvent(t, "payment_intent.succeeded", `{"id":"pi_1","object":"payment_intent"}`)

	_, err := parser.ParseWebhook(payload, "t=1,v1=deadbeef")
	assert.ErrorIs(t, err, service.ErrInvalidWebhookSignature)

	other := &webhookParser{secret: "whsec_other"}
	payload, header := signedEvent(t, "payment_intent.succeeded", `{"id":"pi_1","object":"payment_intent"}`)
	_, err = other.ParseWebhook(payload, header)
	assert.ErrorIs(t, err, service.ErrInvalidWebhookSignature)
}
