package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "companion/internal/delivery/context"
	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/domain/service"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type paymentService struct {
	txManager      repository.TransactionManager
	bookingRepo    repository.BookingRepository
	userRepo       repository.UserRepository
	pnjProfileRepo repository.PNJProfileRepository
	gateway        service.PaymentGateway
	parser         service.WebhookParser
	notifier       usecase.NotificationUsecase
	metrics        service.MetricsRecorder
	events         bookingEvents
	logger         *slog.Logger
	now            func() time.Time
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	BookingRepo    repository.BookingRepository
	UserRepo       repository.UserRepository
	PNJProfileRepo repository.PNJProfileRepository
	Gateway        service.PaymentGateway
	Parser         service.WebhookParser
	Publisher      service.EventPublisher
	Notifier       usecase.NotificationUsecase
	Metrics        service.MetricsRecorder
	Logger         *slog.Logger
}

// NewPaymentService creates a new payment service instance.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager:      params.TxManager,
		bookingRepo:    params.BookingRepo,
		userRepo:       params.UserRepo,
		pnjProfileRepo: params.PNJProfileRepo,
		gateway:        params.Gateway,
		parser:         params.Parser,
		notifier:       params.Notifier,
		metrics:        params.Metrics,
		events: bookingEvents{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		logger: params.Logger,
		now:    time.Now,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartPayment opens a destination charge for a confirmed booking. The
// booking only becomes paid once the provider confirms it by webhook.
func (srv *paymentService) StartPayment(ctx context.Context, playerID, bookingID uuid.UUID) (*usecase.PaymentSession, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if errors.Is(err, repository.ErrBookingNotFound) {
		return nil, domainerrors.ErrBookingNotFound.WrapMessage(bookingID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find booking")
	}
	if booking.PlayerID != playerID {
		return nil, domainerrors.ErrNotBookingParticipant.WrapMessage("only the player can pay")
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return nil, domainerrors.ErrBookingNotPayable.WrapMessage("status is " + string(booking.Status))
	}

	profile, err := srv.pnjProfileRepo.FindByID(ctx, booking.PNJProfileID)
	if errors.Is(err, repository.ErrPNJProfileNotFound) {
		return nil, domainerrors.ErrPNJProfileNotFound.WrapMessage(booking.PNJProfileID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find companion profile")
	}
	if !profile.CanReceivePayments() {
		return nil, domainerrors.ErrPayoutAccountNotReady
	}

	customerID, err := srv.ensureCustomer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	intent, err := srv.gateway.CreatePaymentIntent(ctx, service.PaymentIntentParams{
		BookingID:            booking.ID,
		Amount:               booking.TotalPrice,
		Currency:             booking.Currency,
		ApplicationFee:       booking.PlatformFee,
		CustomerID:           customerID,
		DestinationAccountID: profile.StripeAccountID,
		Description:          booking.Activity + " booking",
	})
	if err != nil {
		return nil, providerError(err)
	}

	if err := srv.bookingRepo.SetPaymentIntent(ctx, booking.ID, intent.ID); err != nil {
		return nil, errors.Wrap(err, "failed to store payment intent")
	}

	srv.log(ctx).Info("Payment started",
		slog.Any("bookingID", booking.ID),
		slog.String("paymentIntentID", intent.ID),
		slog.Int64("amount", booking.TotalPrice),
	)

	return &usecase.PaymentSession{
		BookingID:       booking.ID,
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          booking.TotalPrice,
		Currency:        booking.Currency,
	}, nil
}

func (srv *paymentService) ensureCustomer(ctx context.Context, playerID uuid.UUID) (string, error) {
	player, err := srv.userRepo.FindByID(ctx, playerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return "", domainerrors.ErrUserNotFound.WrapMessage(playerID.String())
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to find player")
	}
	if player.StripeCustomerID != "" {
		return player.StripeCustomerID, nil
	}

	customerID, err := srv.gateway.CreateCustomer(ctx, player)
	if err != nil {
		return "", providerError(err)
	}
	if err := srv.userRepo.SetStripeCustomerID(ctx, playerID, customerID); err != nil {
		return "", errors.Wrap(err, "failed to store customer id")
	}

	return customerID, nil
}

func (srv *paymentService) CreateConnectedAccount(ctx context.Context, pnjID uuid.UUID) (*usecase.ConnectedAccount, error) {
	user, err := srv.userRepo.FindByID(ctx, pnjID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrOnboardingRequired.WrapMessage(pnjID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Role != entity.RolePNJ {
		return nil, domainerrors.ErrRoleRequired.WrapMessage("only companions receive payouts")
	}

	profile, err := srv.pnjProfileRepo.FindByUserID(ctx, pnjID)
	if errors.Is(err, repository.ErrPNJProfileNotFound) {
		return nil, domainerrors.ErrPNJProfileNotFound.WrapMessage(pnjID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find companion profile")
	}

	accountID := profile.StripeAccountID
	if accountID == "" {
		accountID, err = srv.gateway.CreateConnectedAccount(ctx, user)
		if err != nil {
			return nil, providerError(err)
		}
		if err := srv.pnjProfileRepo.SetStripeAccountID(ctx, profile.ID, accountID); err != nil {
			return nil, errors.Wrap(err, "failed to store connected account")
		}
		srv.log(ctx).Info("Connected account created", slog.Any("pnjID", pnjID), slog.String("accountID", accountID))
	}

	link, err := srv.gateway.CreateOnboardingLink(ctx, accountID)
	if err != nil {
		return nil, providerError(err)
	}

	return &usecase.ConnectedAccount{
		AccountID:     accountID,
		OnboardingURL: link.URL,
		ExpiresAt:     link.ExpiresAt,
	}, nil
}

// HandleWebhook verifies and applies one provider event. Errors other than
// a bad signature or payload make the provider retry the delivery.
func (srv *paymentService) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) (*usecase.WebhookResult, error) {
	event, err := srv.parser.ParseWebhook(payload, signatureHeader)
	if errors.Is(err, service.ErrInvalidWebhookSignature) {
		srv.metrics.WebhookEvent("unknown", "invalid_signature")

		return nil, domainerrors.ErrInvalidWebhookSignature.WrapMessage(err.Error())
	}
	if err != nil {
		srv.metrics.WebhookEvent("unknown", "malformed")

		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	eventType := paymentEventType(event)
	logger := srv.log(ctx).With(slog.String("eventID", event.EventID()), slog.String("eventType", eventType))

	var outcome string
	switch e := event.(type) {
	case *service.PaymentSucceeded:
		outcome, err = srv.applyPaymentSucceeded(ctx, e)
	case *service.PaymentFailed:
		outcome, err = srv.applyPaymentFailed(ctx, e)
	case *service.ChargeRefunded:
		outcome, err = srv.applyChargeRefunded(ctx, e)
	case *service.AccountUpdated:
		outcome, err = srv.applyAccountUpdated(ctx, e)
	case *service.TransferCreated:
		outcome, err = srv.applyTransferCreated(ctx, e)
	default:
		outcome = usecase.WebhookOutcomeIgnored
	}
	if err != nil {
		srv.metrics.WebhookEvent(eventType, "error")
		logger.Error("Webhook event failed", slog.Any("error", err))

		return nil, err
	}

	srv.metrics.WebhookEvent(eventType, outcome)
	logger.Info("Webhook event handled", slog.String("outcome", outcome))

	return &usecase.WebhookResult{EventID: event.EventID(), Type: eventType, Outcome: outcome}, nil
}

// applyPaymentSucceeded records the ledger entry and moves a confirmed booking
// to paid in one transaction. Redeliveries find both already done.
func (srv *paymentService) applyPaymentSucceeded(ctx context.Context, e *service.PaymentSucceeded) (string, error) {
	var (
		booking      *entity.Booking
		previous     entity.BookingStatus
		transitioned bool
		inserted     bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.NewBookingRepository()

		var err error
		booking, err = findPaymentBooking(ctx, bookingRepo, e.BookingID, e.PaymentIntentID)
		if err != nil || booking == nil {
			return err
		}

		inserted, err = repoFactory.NewTransactionRepository().
			Upsert(ctx, entity.NewTransaction(booking, e.PaymentIntentID, e.Amount, e.Currency))
		if err != nil {
			return errors.Wrap(err, "failed to record transaction")
		}

		if booking.PaymentIntentID != e.PaymentIntentID {
			if err := bookingRepo.SetPaymentIntent(ctx, booking.ID, e.PaymentIntentID); err != nil {
				return errors.Wrap(err, "failed to store payment intent")
			}
			booking.PaymentIntentID = e.PaymentIntentID
		}

		switch {
		case booking.Status == entity.BookingStatusConfirmed:
			previous, err = writeTransition(ctx, bookingRepo, booking, entity.BookingStatusPaid, func(b *entity.Booking) {
				b.PaymentError = ""
			})
			if err != nil {
				return err
			}
			transitioned = true
		case !booking.Status.IsPaidOrLater():
			srv.log(ctx).Warn("Payment captured for a booking that cannot be paid",
				slog.Any("bookingID", booking.ID),
				slog.String("status", string(booking.Status)),
				slog.String("paymentIntentID", e.PaymentIntentID),
			)
		}

		return nil
	})
	if err != nil {
		return "", err
	}
	if booking == nil {
		return usecase.WebhookOutcomeIgnored, nil
	}
	if !transitioned {
		if inserted {
			return usecase.WebhookOutcomeProcessed, nil
		}

		return usecase.WebhookOutcomeDuplicate, nil
	}

	srv.events.emit(ctx, booking, previous)
	srv.notifyBoth(ctx, booking, entity.NotificationBookingPaid, "Booking paid",
		"The "+booking.Activity+" booking is paid and ready")

	return usecase.WebhookOutcomeProcessed, nil
}

func (srv *paymentService) applyPaymentFailed(ctx context.Context, e *service.PaymentFailed) (string, error) {
	booking, err := findPaymentBooking(ctx, srv.bookingRepo, e.BookingID, e.PaymentIntentID)
	if err != nil || booking == nil {
		return usecase.WebhookOutcomeIgnored, err
	}

	if err := srv.bookingRepo.SetPaymentError(ctx, booking.ID, e.Message); err != nil {
		return "", errors.Wrap(err, "failed to record payment error")
	}

	srv.notify(ctx, booking.PlayerID, booking, entity.NotificationPaymentFailed, "Payment failed", e.Message)

	return usecase.WebhookOutcomeProcessed, nil
}

// applyChargeRefunded only reacts to full refunds; partial refunds leave the
// booking where it is.
func (srv *paymentService) applyChargeRefunded(ctx context.Context, e *service.ChargeRefunded) (string, error) {
	if !e.FullyRefunded {
		return usecase.WebhookOutcomeIgnored, nil
	}

	var (
		booking      *entity.Booking
		previous     entity.BookingStatus
		transitioned bool
		outcome      = usecase.WebhookOutcomeProcessed
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.NewBookingRepository()

		var err error
		booking, err = findPaymentBooking(ctx, bookingRepo, uuid.Nil, e.PaymentIntentID)
		if err != nil || booking == nil {
			outcome = usecase.WebhookOutcomeIgnored

			return err
		}
		if booking.Status == entity.BookingStatusRefunded {
			outcome = usecase.WebhookOutcomeDuplicate

			return nil
		}

		// The money went back either way; the ledger must follow even when the
		// booking status cannot.
		if booking.Status.CanTransitionTo(entity.BookingStatusRefunded) {
			previous, err = writeTransition(ctx, bookingRepo, booking, entity.BookingStatusRefunded, nil)
			if err != nil {
				return err
			}
			transitioned = true
		} else {
			srv.log(ctx).Warn("Refund for booking that cannot be refunded, updating ledger only",
				slog.Any("bookingID", booking.ID),
				slog.String("status", string(booking.Status)),
			)
		}

		err = repoFactory.NewTransactionRepository().MarkRefunded(ctx, e.PaymentIntentID, srv.now())
		if errors.Is(err, repository.ErrTransactionNotFound) {
			srv.log(ctx).Warn("Refund without ledger entry", slog.String("paymentIntentID", e.PaymentIntentID))

			return nil
		}

		return errors.Wrap(err, "failed to mark transaction refunded")
	})
	if err != nil {
		return "", err
	}
	if outcome != usecase.WebhookOutcomeProcessed || !transitioned {
		return outcome, nil
	}

	srv.events.emit(ctx, booking, previous)
	srv.notifyBoth(ctx, booking, entity.NotificationBookingRefunded, "Booking refunded",
		"The "+booking.Activity+" booking was refunded")

	return outcome, nil
}

func (srv *paymentService) applyAccountUpdated(ctx context.Context, e *service.AccountUpdated) (string, error) {
	err := srv.pnjProfileRepo.UpdatePayoutStatus(ctx, e.AccountID, e.ChargesEnabled, e.PayoutsEnabled)
	if errors.Is(err, repository.ErrPNJProfileNotFound) {
		return usecase.WebhookOutcomeIgnored, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to update payout status")
	}

	return usecase.WebhookOutcomeProcessed, nil
}

func (srv *paymentService) applyTransferCreated(ctx context.Context, e *service.TransferCreated) (string, error) {
	if e.BookingID == uuid.Nil {
		return usecase.WebhookOutcomeIgnored, nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewTransactionRepository().SetTransferID(ctx, e.BookingID, e.TransferID)
	})
	if errors.Is(err, repository.ErrTransactionNotFound) {
		return usecase.WebhookOutcomeIgnored, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to record transfer")
	}

	return usecase.WebhookOutcomeProcessed, nil
}

func (srv *paymentService) notifyBoth(ctx context.Context, booking *entity.Booking, kind entity.NotificationKind, title, body string) {
	srv.notify(ctx, booking.PlayerID, booking, kind, title, body)
	srv.notify(ctx, booking.PNJID, booking, kind, title, body)
}

func (srv *paymentService) notify(ctx context.Context, userID uuid.UUID, booking *entity.Booking, kind entity.NotificationKind, title, body string) {
	_, err := srv.notifier.Notify(ctx, &usecase.NotifyInput{
		UserID: userID,
		Kind:   kind,
		Title:  title,
		Body:   body,
		Data:   map[string]string{"booking_id": booking.ID.String(), "status": string(booking.Status)},
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to send payment notification",
			slog.Any("userID", userID),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}
}

// findPaymentBooking resolves the booking from metadata, falling back to the
// payment intent. A nil booking means the event belongs to nothing we know.
func findPaymentBooking(ctx context.Context, bookingRepo repository.BookingRepository, bookingID uuid.UUID, paymentIntentID string) (*entity.Booking, error) {
	var (
		booking *entity.Booking
		err     error
	)
	if bookingID != uuid.Nil {
		booking, err = bookingRepo.FindByID(ctx, bookingID)
	} else {
		booking, err = bookingRepo.FindByPaymentIntentID(ctx, paymentIntentID)
	}
	if errors.Is(err, repository.ErrBookingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find booking for payment")
	}

	return booking, nil
}

func providerError(err error) error {
	if errors.Is(err, service.ErrPaymentProvider) {
		return domainerrors.ErrPaymentProviderFailed.WrapMessage(err.Error())
	}

	return errors.WithStack(err)
}

func paymentEventType(event service.PaymentEvent) string {
	switch e := event.(type) {
	case *service.PaymentSucceeded:
		return "payment_intent.succeeded"
	case *service.PaymentFailed:
		return "payment_intent.payment_failed"
	case *service.ChargeRefunded:
		return "charge.refunded"
	case *service.AccountUpdated:
		return "account.updated"
	case *service.TransferCreated:
		return "transfer.created"
	case *service.UnhandledEvent:
		return e.Type
	default:
		return "unknown"
	}
}
