package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"math/big"
	"slices"
	"strings"
	"time"

	"companion/config"
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

const (
	maxBookingHours    = 12
	checkInCodeDigits  = 6
	defaultBookingPage = 20
	maxBookingPage     = 100
)

type bookingService struct {
	txManager      repository.TransactionManager
	bookingRepo    repository.BookingRepository
	userRepo       repository.UserRepository
	pnjProfileRepo repository.PNJProfileRepository
	qrCodeSvc      service.QRCodeService
	notifier       usecase.NotificationUsecase
	events         bookingEvents
	currency       string
	logger         *slog.Logger
	now            func() time.Time
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	BookingRepo    repository.BookingRepository
	UserRepo       repository.UserRepository
	PNJProfileRepo repository.PNJProfileRepository
	QRCodeSvc      service.QRCodeService
	Publisher      service.EventPublisher
	Notifier       usecase.NotificationUsecase
	Metrics        service.MetricsRecorder
	Config         *config.Config
	Logger         *slog.Logger
}

// NewBookingService creates a new booking service instance.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:      params.TxManager,
		bookingRepo:    params.BookingRepo,
		userRepo:       params.UserRepo,
		pnjProfileRepo: params.PNJProfileRepo,
		qrCodeSvc:      params.QRCodeSvc,
		notifier:       params.Notifier,
		events: bookingEvents{
			publisher: params.Publisher,
			metrics:   params.Metrics,
			logger:    params.Logger,
		},
		currency: params.Config.Stripe.Currency,
		logger:   params.Logger,
		now:      time.Now,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *bookingService) CreateBooking(ctx context.Context, playerID uuid.UUID, input *usecase.CreateBookingInput) (*entity.Booking, error) {
	if input.DurationHours < 1 || input.DurationHours > maxBookingHours {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("duration must be between 1 and %d hours", maxBookingHours))
	}
	if !input.ScheduledAt.After(srv.now()) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("scheduled time must be in the future")
	}

	player, err := srv.userRepo.FindByID(ctx, playerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrOnboardingRequired.WrapMessage(playerID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find player")
	}
	if !player.OnboardingCompleted {
		return nil, domainerrors.ErrOnboardingRequired.WrapMessage(playerID.String())
	}
	if player.Role != entity.RolePlayer {
		return nil, domainerrors.ErrRoleRequired.WrapMessage("only players can book")
	}

	profile, err := srv.pnjProfileRepo.FindByID(ctx, input.PNJProfileID)
	if errors.Is(err, repository.ErrPNJProfileNotFound) {
		return nil, domainerrors.ErrPNJProfileNotFound.WrapMessage(input.PNJProfileID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find companion profile")
	}
	if profile.UserID == playerID {
		return nil, domainerrors.ErrSelfBooking
	}

	activity := strings.ToLower(strings.TrimSpace(input.Activity))
	if activity == "" || (len(profile.Activities) > 0 && !slices.Contains(profile.Activities, activity)) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("activity is not offered by this companion")
	}

	booking := entity.NewBooking(playerID, profile, activity, input.ScheduledAt, input.DurationHours, srv.currency)
	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Info("Booking requested",
		slog.Any("bookingID", booking.ID),
		slog.Any("playerID", playerID),
		slog.Any("pnjID", booking.PNJID),
		slog.Int64("totalPrice", booking.TotalPrice),
	)

	srv.notify(ctx, booking.PNJID, booking, entity.NotificationBookingRequested,
		"New booking request", player.DisplayName+" wants to book you for "+activity)

	return booking, nil
}

func (srv *bookingService) AcceptBooking(ctx context.Context, pnjID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.companionBooking(ctx, pnjID, bookingID)
	if err != nil {
		return nil, err
	}

	code, err := newCheckInCode()
	if err != nil {
		return nil, err
	}

	if err := srv.transition(ctx, booking, entity.BookingStatusConfirmed, func(b *entity.Booking) {
		b.CheckInCode = code
	}); err != nil {
		return nil, err
	}

	srv.notify(ctx, booking.PlayerID, booking, entity.NotificationBookingConfirmed,
		"Booking confirmed", "Your "+booking.Activity+" booking was accepted, you can now pay")

	return booking, nil
}

func (srv *bookingService) RejectBooking(ctx context.Context, pnjID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.companionBooking(ctx, pnjID, bookingID)
	if err != nil {
		return nil, err
	}

	if err := srv.transition(ctx, booking, entity.BookingStatusRejected, nil); err != nil {
		return nil, err
	}

	srv.notify(ctx, booking.PlayerID, booking, entity.NotificationBookingRejected,
		"Booking declined", "Your "+booking.Activity+" booking was declined")

	return booking, nil
}

// CancelBooking writes the status and the canceller's counter in one transaction.
func (srv *bookingService) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID, reason string) (*entity.Booking, error) {
	booking, err := srv.participantBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	var previous entity.BookingStatus
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		previous, err = writeTransition(ctx, repoFactory.NewBookingRepository(), booking, entity.BookingStatusCancelled, func(b *entity.Booking) {
			b.CancellationReason = strings.TrimSpace(reason)
			b.CancelledBy = &userID
		})
		if err != nil {
			return err
		}

		if err := repoFactory.NewUserRepository().IncrementCancelledBookings(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to count cancellation")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.events.emit(ctx, booking, previous)
	srv.notify(ctx, booking.Counterpart(userID), booking, entity.NotificationBookingCancelled,
		"Booking cancelled", "Your "+booking.Activity+" booking was cancelled")

	return booking, nil
}

func (srv *bookingService) CheckIn(ctx context.Context, pnjID, bookingID uuid.UUID, code string) (*entity.Booking, error) {
	booking, err := srv.companionBooking(ctx, pnjID, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.CheckInCode == "" || subtle.ConstantTimeCompare([]byte(booking.CheckInCode), []byte(code)) != 1 {
		return nil, domainerrors.ErrInvalidCheckInCode
	}

	checkedInAt := srv.now()
	if err := srv.transition(ctx, booking, entity.BookingStatusOngoing, func(b *entity.Booking) {
		b.CheckedInAt = &checkedInAt
	}); err != nil {
		return nil, err
	}

	srv.notify(ctx, booking.PlayerID, booking, entity.NotificationBookingStarted,
		"Booking started", "Have fun with your "+booking.Activity)

	return booking, nil
}

func (srv *bookingService) CheckInByQR(ctx context.Context, pnjID uuid.UUID, qrData string) (*entity.Booking, error) {
	payload, err := srv.qrCodeSvc.ParseCheckInQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrInvalidCheckInCode.WrapMessage(err.Error())
	}

	return srv.CheckIn(ctx, pnjID, payload.BookingID, payload.Code)
}

func (srv *bookingService) CheckInQR(ctx context.Context, playerID, bookingID uuid.UUID) ([]byte, error) {
	booking, err := srv.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PlayerID != playerID {
		return nil, domainerrors.ErrNotBookingParticipant.WrapMessage("only the player holds the check-in code")
	}
	if booking.Status != entity.BookingStatusPaid {
		return nil, domainerrors.ErrInvalidBookingTransition.WrapMessage("check-in is only possible on a paid booking")
	}

	png, err := srv.qrCodeSvc.GenerateCheckInQR(service.CheckInPayload{BookingID: booking.ID, Code: booking.CheckInCode})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render check-in QR code")
	}

	return png, nil
}

// CompleteBooking leaves the notifications to the reward handler, which runs
// once the completion event is delivered.
func (srv *bookingService) CompleteBooking(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.participantBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	completedAt := srv.now()
	if err := srv.transition(ctx, booking, entity.BookingStatusCompleted, func(b *entity.Booking) {
		b.CompletedAt = &completedAt
	}); err != nil {
		return nil, err
	}

	return booking, nil
}

func (srv *bookingService) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error) {
	return srv.participantBooking(ctx, userID, bookingID)
}

func (srv *bookingService) ListBookings(ctx context.Context, userID uuid.UUID, filter repository.BookingFilter) ([]*entity.Booking, error) {
	for _, status := range filter.Statuses {
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown booking status " + string(status))
		}
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultBookingPage
	}
	filter.Limit = min(filter.Limit, maxBookingPage)
	filter.Offset = max(filter.Offset, 0)

	bookings, err := srv.bookingRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

func (srv *bookingService) transition(ctx context.Context, booking *entity.Booking, next entity.BookingStatus, mutate func(*entity.Booking)) error {
	previous, err := writeTransition(ctx, srv.bookingRepo, booking, next, mutate)
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Booking status changed",
		slog.Any("bookingID", booking.ID),
		slog.String("previous", string(previous)),
		slog.String("current", string(next)),
	)
	srv.events.emit(ctx, booking, previous)

	return nil
}

func (srv *bookingService) findBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if errors.Is(err, repository.ErrBookingNotFound) {
		return nil, domainerrors.ErrBookingNotFound.WrapMessage(bookingID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find booking")
	}

	return booking, nil
}

func (srv *bookingService) participantBooking(ctx context.Context, userID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !booking.IsParticipant(userID) {
		return nil, domainerrors.ErrNotBookingParticipant.WrapMessage(bookingID.String())
	}

	return booking, nil
}

func (srv *bookingService) companionBooking(ctx context.Context, pnjID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PNJID != pnjID {
		return nil, domainerrors.ErrNotBookingParticipant.WrapMessage("only the booked companion can do this")
	}

	return booking, nil
}

func (srv *bookingService) notify(ctx context.Context, userID uuid.UUID, booking *entity.Booking, kind entity.NotificationKind, title, body string) {
	_, err := srv.notifier.Notify(ctx, &usecase.NotifyInput{
		UserID: userID,
		Kind:   kind,
		Title:  title,
		Body:   body,
		Data:   map[string]string{"booking_id": booking.ID.String(), "status": string(booking.Status)},
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to send booking notification",
			slog.Any("userID", userID),
			slog.String("kind", string(kind)),
			slog.Any("error", err),
		)
	}
}

// newCheckInCode draws a zero-padded numeric code from crypto/rand.
func newCheckInCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate check-in code")
	}

	return fmt.Sprintf("%0*d", checkInCodeDigits, n.Int64()), nil
}
