// Package stripe implements the payment gateway and webhook parser on Stripe
// Connect destination charges.
package stripe

import (
	"context"
	"time"

	"companion/config"
	"companion/internal/domain/entity"
	"companion/internal/domain/service"
	"companion/internal/errors"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

const (
	metadataBookingID = "booking_id"
	metadataUserID    = "user_id"

	accountLinkTypeOnboarding = "account_onboarding"
)

type customerCreator interface {
	New(params *stripe.CustomerParams) (*stripe.Customer, error)
}

type accountCreator interface {
	New(params *stripe.AccountParams) (*stripe.Account, error)
}

type accountLinkCreator interface {
	New(params *stripe.AccountLinkParams) (*stripe.AccountLink, error)
}

type paymentIntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type gateway struct {
	customers      customerCreator
	accounts       accountCreator
	accountLinks   accountLinkCreator
	paymentIntents paymentIntentCreator

	refreshURL string
	returnURL  string
}

// NewGateway builds the Stripe API client from config.
func NewGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key is required")
	}

	sc := &client.API{}
	sc.Init(cfg.Stripe.SecretKey, nil)

	return &gateway{
		customers:      sc.Customers,
		accounts:       sc.Accounts,
		accountLinks:   sc.AccountLinks,
		paymentIntents: sc.PaymentIntents,
		refreshURL:     cfg.Stripe.OnboardingRefreshURL,
		returnURL:      cfg.Stripe.OnboardingReturnURL,
	}, nil
}

func (g *gateway) CreateCustomer(ctx context.Context, user *entity.User) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(user.Email),
		Name:  stripe.String(user.DisplayName),
	}
	params.Context = ctx
	params.AddMetadata(metadataUserID, user.ID.String())
	params.SetIdempotencyKey("customer-" + user.ID.String())

	customer, err := g.customers.New(params)
	if err != nil {
		return "", wrapStripeError(err, "create customer")
	}

	return customer.ID, nil
}

// CreateConnectedAccount opens an Express account able to take card payments
// and receive transfers.
func (g *gateway) CreateConnectedAccount(ctx context.Context, user *entity.User) (string, error) {
	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(user.Email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		},
	}
	params.Context = ctx
	params.AddMetadata(metadataUserID, user.ID.String())
	params.SetIdempotencyKey("account-" + user.ID.String())

	account, err := g.accounts.New(params)
	if err != nil {
		return "", wrapStripeError(err, "create connected account")
	}

	return account.ID, nil
}

func (g *gateway) CreateOnboardingLink(ctx context.Context, accountID string) (*service.OnboardingLink, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(g.refreshURL),
		ReturnURL:  stripe.String(g.returnURL),
		Type:       stripe.String(accountLinkTypeOnboarding),
	}
	params.Context = ctx

	link, err := g.accountLinks.New(params)
	if err != nil {
		return nil, wrapStripeError(err, "create onboarding link")
	}

	return &service.OnboardingLink{
		URL:       link.URL,
		ExpiresAt: time.Unix(link.ExpiresAt, 0),
	}, nil
}

// CreatePaymentIntent creates a destination charge: the platform keeps the
// application fee and the rest is transferred to the companion. The booking id
// travels in metadata and as transfer group so webhooks can be correlated.
func (g *gateway) CreatePaymentIntent(ctx context.Context, in service.PaymentIntentParams) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:               stripe.Int64(in.Amount),
		Currency:             stripe.String(in.Currency),
		ApplicationFeeAmount: stripe.Int64(in.ApplicationFee),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(in.DestinationAccountID),
		},
		TransferGroup: stripe.String(in.BookingID.String()),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if in.CustomerID != "" {
		params.Customer = stripe.String(in.CustomerID)
	}
	if in.Description != "" {
		params.Description = stripe.String(in.Description)
	}
	params.Context = ctx
	params.AddMetadata(metadataBookingID, in.BookingID.String())
	params.SetIdempotencyKey("booking-" + in.BookingID.String())

	intent, err := g.paymentIntents.New(params)
	if err != nil {
		return nil, wrapStripeError(err, "create payment intent")
	}

	return &service.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}, nil
}

// wrapStripeError keeps the provider code in the message and marks the error
// as a provider failure.
func wrapStripeError(err error, op string) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return errors.Wrapf(service.ErrPaymentProvider, "%s: %s (%s)", op, stripeErr.Msg, stripeErr.Code)
	}

	return errors.Wrapf(service.ErrPaymentProvider, "%s: %v", op, err)
}
