package impl

import (
	"context"
	"testing"
	"time"

	"companion/config"
	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/domain/service"
	"companion/internal/errors"
	mockService "companion/internal/mocks/service"
	mockUC "companion/internal/mocks/usecase"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingServiceFixtures struct {
	service   usecase.BookingUsecase
	repos     *repoMocks
	txManager *fakeTxManager
	qrCodeSvc *mockService.MockQRCodeService
	publisher *mockService.MockEventPublisher
	notifier  *mockUC.MockNotificationUsecase
	metrics   *mockService.MockMetricsRecorder
	now       time.Time
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	repos := newRepoMocks(t)
	txManager := &fakeTxManager{repos: repos}
	qrCodeSvc := mockService.NewMockQRCodeService(t)
	publisher := mockService.NewMockEventPublisher(t)
	notifier := mockUC.NewMockNotificationUsecase(t)
	metrics := mockService.NewMockMetricsRecorder(t)

	cfg := &config.Config{Stripe: &config.StripeConfig{}}
	cfg.Stripe.Currency = "eur"

	svc := NewBookingService(BookingServiceParams{
		TxManager:      txManager,
		BookingRepo:    repos.bookingRepo,
		UserRepo:       repos.userRepo,
		PNJProfileRepo: repos.pnjProfileRepo,
		QRCodeSvc:      qrCodeSvc,
		Publisher:      publisher,
		Notifier:       notifier,
		Metrics:        metrics,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})
	now := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	svc.(*bookingService).now = func() time.Time { return now }

	return bookingServiceFixtures{
		service:   svc,
		repos:     repos,
		txManager: txManager,
		qrCodeSvc: qrCodeSvc,
		publisher: publisher,
		notifier:  notifier,
		metrics:   metrics,
		now:       now,
	}
}

// expectTransition expects one stored and published status change.
func (fx bookingServiceFixtures) expectTransition(ctx context.Context, booking *entity.Booking, from, to entity.BookingStatus) {
	fx.repos.bookingRepo.EXPECT().UpdateStatus(ctx, booking, from).Return(nil).Once()
	fx.metrics.EXPECT().BookingTransition(from, to).Return().Once()
	fx.publisher.EXPECT().PublishBookingStatusChanged(ctx, mock.MatchedBy(func(e *service.BookingStatusChanged) bool {
		return e.BookingID == booking.ID && e.Previous == from && e.Current == to
	})).Return(nil).Once()
}

func (fx bookingServiceFixtures) expectNotify(ctx context.Context, userID uuid.UUID, kind entity.NotificationKind) {
	fx.notifier.EXPECT().Notify(ctx, mock.MatchedBy(func(in *usecase.NotifyInput) bool {
		return in.UserID == userID && in.Kind == kind
	})).Return(&entity.Notification{}, nil).Once()
}

func bookingInStatus(status entity.BookingStatus) *entity.Booking {
	return &entity.Booking{
		ID:            uuid.New(),
		PlayerID:      uuid.New(),
		PNJID:         uuid.New(),
		PNJProfileID:  uuid.New(),
		Activity:      "karaoke",
		DurationHours: 2,
		HourlyRate:    2500,
		TotalPrice:    5000,
		PlatformFee:   1000,
		PNJEarnings:   4000,
		Status:        status,
	}
}

func TestBookingService_CreateBooking(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	player := &entity.User{ID: uuid.New(), DisplayName: "Ana", Role: entity.RolePlayer, OnboardingCompleted: true}
	profile := &entity.PNJProfile{ID: uuid.New(), UserID: uuid.New(), HourlyRate: 2499, Activities: []string{"karaoke", "bowling"}}

	fx.repos.userRepo.EXPECT().FindByID(ctx, player.ID).Return(player, nil)
	fx.repos.pnjProfileRepo.EXPECT().FindByID(ctx, profile.ID).Return(profile, nil)
	fx.repos.bookingRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.expectNotify(ctx, profile.UserID, entity.NotificationBookingRequested)

	booking, err := fx.service.CreateBooking(ctx, player.ID, &usecase.CreateBookingInput{
		PNJProfileID:  profile.ID,
		Activity:      " Karaoke ",
		ScheduledAt:   fx.now.Add(24 * time.Hour),
		DurationHours: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPending, booking.Status)
	assert.Equal(t, "karaoke", booking.Activity)
	assert.Equal(t, profile.UserID, booking.PNJID)
	assert.EqualValues(t, 7497, booking.TotalPrice)
	assert.EqualValues(t, 1499, booking.PlatformFee)
	assert.EqualValues(t, 5998, booking.PNJEarnings)
	assert.Equal(t, "eur", booking.Currency)
}

func TestBookingService_CreateBooking_Rejections(t *testing.T) {
	playerID := uuid.New()
	future := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   usecase.CreateBookingInput
		setup   func(fx bookingServiceFixtures, input *usecase.CreateBookingInput)
		wantErr error
	}{
		{
			name:    "zero duration",
			input:   usecase.CreateBookingInput{ScheduledAt: future, Activity: "karaoke"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "past schedule",
			input:   usecase.CreateBookingInput{ScheduledAt: future.Add(-72 * time.Hour), DurationHours: 1, Activity: "karaoke"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "not onboarded",
			input: usecase.CreateBookingInput{ScheduledAt: future, DurationHours: 1, Activity: "karaoke"},
			setup: func(fx bookingServiceFixtures, _ *usecase.CreateBookingInput) {
				fx.repos.userRepo.EXPECT().FindByID(mock.Anything, playerID).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrOnboardingRequired,
		},
		{
			name:  "companion cannot book",
			input: usecase.CreateBookingInput{ScheduledAt: future, DurationHours: 1, Activity: "karaoke"},
			setup: func(fx bookingServiceFixtures, _ *usecase.CreateBookingInput) {
				fx.repos.userRepo.EXPECT().FindByID(mock.Anything, playerID).
					Return(&entity.User{ID: playerID, Role: entity.RolePNJ, OnboardingCompleted: true}, nil)
			},
			wantErr: domainerrors.ErrRoleRequired,
		},
		{
			name:  "self booking",
			input: usecase.CreateBookingInput{PNJProfileID: uuid.New(), ScheduledAt: future, DurationHours: 1, Activity: "karaoke"},
			setup: func(fx bookingServiceFixtures, input *usecase.CreateBookingInput) {
				fx.repos.userRepo.EXPECT().FindByID(mock.Anything, playerID).
					Return(&entity.User{ID: playerID, Role: entity.RolePlayer, OnboardingCompleted: true}, nil)
				fx.repos.pnjProfileRepo.EXPECT().FindByID(mock.Anything, input.PNJProfileID).
					Return(&entity.PNJProfile{ID: input.PNJProfileID, UserID: playerID}, nil)
			},
			wantErr: domainerrors.ErrSelfBooking,
		},
		{
			name:  "activity not offered",
			input: usecase.CreateBookingInput{PNJProfileID: uuid.New(), ScheduledAt: future, DurationHours: 1, Activity: "chess"},
			setup: func(fx bookingServiceFixtures, input *usecase.CreateBookingInput) {
				fx.repos.userRepo.EXPECT().FindByID(mock.Anything, playerID).
					Return(&entity.User{ID: playerID, Role: entity.RolePlayer, OnboardingCompleted: true}, nil)
				fx.repos.pnjProfileRepo.EXPECT().FindByID(mock.Anything, input.PNJProfileID).
					Return(&entity.PNJProfile{ID: input.PNJProfileID, UserID: uuid.New(), Activities: []string{"karaoke"}}, nil)
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBookingService(t)
			input := tt.input
			if tt.setup != nil {
				tt.setup(fx, &input)
			}

			_, err := fx.service.CreateBooking(context.Background(), playerID, &input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBookingService_AcceptBooking(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusPending)

	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	fx.expectTransition(ctx, booking, entity.BookingStatusPending, entity.BookingStatusConfirmed)
	fx.expectNotify(ctx, booking.PlayerID, entity.NotificationBookingConfirmed)

	got, err := fx.service.AcceptBooking(ctx, booking.PNJID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, got.Status)
	assert.Regexp(t, `^\d{6}$`, got.CheckInCode)
}

func TestBookingService_AcceptBooking_OnlyCompanion(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusPending)
	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

	_, err := fx.service.AcceptBooking(ctx, booking.PlayerID, booking.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotBookingParticipant)
}

func TestBookingService_StatusConflict(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusPending)

	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	fx.repos.bookingRepo.EXPECT().UpdateStatus(ctx, booking, entity.BookingStatusPending).
		Return(repository.ErrBookingStatusConflict)

	_, err := fx.service.RejectBooking(ctx, booking.PNJID, booking.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBookingStatusChanged)
	fx.publisher.AssertNotCalled(t, "PublishBookingStatusChanged", mock.Anything, mock.Anything)
}

func TestBookingService_InvalidTransition(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusPaid)
	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

	_, err := fx.service.CancelBooking(ctx, booking.PlayerID, booking.ID, "changed my mind")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBookingTransition)
	assert.Equal(t, entity.BookingStatusPaid, booking.Status)
}

func TestBookingService_CancelBooking(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusConfirmed)

	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	fx.expectTransition(ctx, booking, entity.BookingStatusConfirmed, entity.BookingStatusCancelled)
	fx.repos.userRepo.EXPECT().IncrementCancelledBookings(ctx, booking.PNJID).Return(nil)
	fx.expectNotify(ctx, booking.PlayerID, entity.NotificationBookingCancelled)

	got, err := fx.service.CancelBooking(ctx, booking.PNJID, booking.ID, " sick ")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, got.Status)
	assert.Equal(t, "sick", got.CancellationReason)
	require.NotNil(t, got.CancelledBy)
	assert.Equal(t, booking.PNJID, *got.CancelledBy)
	assert.Equal(t, 1, fx.txManager.calls)
}

func TestBookingService_CancelBooking_NotParticipant(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusPending)
	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

	_, err := fx.service.CancelBooking(ctx, uuid.New(), booking.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrNotBookingParticipant)
	assert.Zero(t, fx.txManager.calls)
}

func TestBookingService_CheckIn(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusPaid)
	booking.CheckInCode = "042917"

	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	fx.expectTransition(ctx, booking, entity.BookingStatusPaid, entity.BookingStatusOngoing)
	fx.expectNotify(ctx, booking.PlayerID, entity.NotificationBookingStarted)

	got, err := fx.service.CheckIn(ctx, booking.PNJID, booking.ID, "042917")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusOngoing, got.Status)
	require.NotNil(t, got.CheckedInAt)
	assert.Equal(t, fx.now, *got.CheckedInAt)
}

func TestBookingService_CheckIn_WrongCode(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusPaid)
	booking.CheckInCode = "042917"
	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

	_, err := fx.service.CheckIn(ctx, booking.PNJID, booking.ID, "000000")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCheckInCode)
}

func TestBookingService_CheckInByQR(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusPaid)
	booking.CheckInCode = "123456"

	fx.qrCodeSvc.EXPECT().ParseCheckInQR("scanned").
		Return(service.CheckInPayload{BookingID: booking.ID, Code: "123456"}, nil)
	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	fx.expectTransition(ctx, booking, entity.BookingStatusPaid, entity.BookingStatusOngoing)
	fx.expectNotify(ctx, booking.PlayerID, entity.NotificationBookingStarted)

	_, err := fx.service.CheckInByQR(ctx, booking.PNJID, "scanned")
	require.NoError(t, err)
}

func TestBookingService_CheckInByQR_Unreadable(t *testing.T) {
	fx := createTestBookingService(t)

	fx.qrCodeSvc.EXPECT().ParseCheckInQR("garbage").Return(service.CheckInPayload{}, errors.New("bad prefix"))

	_, err := fx.service.CheckInByQR(context.Background(), uuid.New(), "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCheckInCode)
}

func TestBookingService_CheckInQR(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusPaid)
	booking.CheckInCode = "654321"

	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	fx.qrCodeSvc.EXPECT().GenerateCheckInQR(service.CheckInPayload{BookingID: booking.ID, Code: "654321"}).
		Return([]byte("png"), nil)

	png, err := fx.service.CheckInQR(ctx, booking.PlayerID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestBookingService_CheckInQR_Guards(t *testing.T) {
	ctx := context.Background()

	t.Run("companion cannot fetch the code", func(t *testing.T) {
		fx := createTestBookingService(t)
		booking := bookingInStatus(entity.BookingStatusPaid)
		fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

		_, err := fx.service.CheckInQR(ctx, booking.PNJID, booking.ID)
		assert.ErrorIs(t, err, domainerrors.ErrNotBookingParticipant)
	})

	t.Run("not paid yet", func(t *testing.T) {
		fx := createTestBookingService(t)
		booking := bookingInStatus(entity.BookingStatusConfirmed)
		fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

		_, err := fx.service.CheckInQR(ctx, booking.PlayerID, booking.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidBookingTransition)
	})
}

func TestBookingService_CompleteBooking_FromPaid(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusPaid)

	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	fx.expectTransition(ctx, booking, entity.BookingStatusPaid, entity.BookingStatusCompleted)

	got, err := fx.service.CompleteBooking(ctx, booking.PlayerID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	fx.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestBookingService_PublishFailureDoesNotFailTransition(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusOngoing)

	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	fx.repos.bookingRepo.EXPECT().UpdateStatus(ctx, booking, entity.BookingStatusOngoing).Return(nil)
	fx.metrics.EXPECT().BookingTransition(entity.BookingStatusOngoing, entity.BookingStatusCompleted).Return()
	fx.publisher.EXPECT().PublishBookingStatusChanged(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.CompleteBooking(ctx, booking.PNJID, booking.ID)
	assert.NoError(t, err)
}

func TestBookingService_GetBooking(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	booking := bookingInStatus(entity.BookingStatusPending)
	missing := uuid.New()

	fx.repos.bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	fx.repos.bookingRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrBookingNotFound)

	got, err := fx.service.GetBooking(ctx, booking.PNJID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking, got)

	_, err = fx.service.GetBooking(ctx, booking.PNJID, missing)
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}

func TestBookingService_ListBookings(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	userID := uuid.New()
	want := []*entity.Booking{bookingInStatus(entity.BookingStatusPaid)}

	fx.repos.bookingRepo.EXPECT().ListByUser(ctx, userID, repository.BookingFilter{
		Statuses: []entity.BookingStatus{entity.BookingStatusPaid},
		Limit:    100,
	}).Return(want, nil)

	got, err := fx.service.ListBookings(ctx, userID, repository.BookingFilter{
		Statuses: []entity.BookingStatus{entity.BookingStatusPaid},
		Limit:    1000,
		Offset:   -3,
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = fx.service.ListBookings(ctx, userID, repository.BookingFilter{Statuses: []entity.BookingStatus{"lost"}})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
