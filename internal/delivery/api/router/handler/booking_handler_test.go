package handler

import (
	"net/http"
	"testing"
	"time"

	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	mockUC "companion/internal/mocks/usecase"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingHandlerFixtures struct {
	handler   *BookingHandler
	bookingUC *mockUC.MockBookingUsecase
	paymentUC *mockUC.MockPaymentUsecase
}

func createTestBookingHandler(t *testing.T) bookingHandlerFixtures {
	bookingUC := mockUC.NewMockBookingUsecase(t)
	paymentUC := mockUC.NewMockPaymentUsecase(t)

	return bookingHandlerFixtures{
		handler: NewBookingHandler(BookingHandlerParams{
			BookingUC: bookingUC,
			PaymentUC: paymentUC,
		}),
		bookingUC: bookingUC,
		paymentUC: paymentUC,
	}
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	fx := createTestBookingHandler(t)
	playerID := uuid.New()
	profileID := uuid.New()
	body := `{"pnj_profile_id":"` + profileID.String() + `","activity":"karaoke","scheduled_at":"2026-11-02T20:00:00Z","duration_hours":2}`

	fx.bookingUC.EXPECT().CreateBooking(mock.Anything, playerID, mock.MatchedBy(func(in *usecase.CreateBookingInput) bool {
		return in.PNJProfileID == profileID &&
			in.Activity == "karaoke" &&
			in.DurationHours == 2 &&
			in.ScheduledAt.Equal(time.Date(2026, 11, 2, 20, 0, 0, 0, time.UTC))
	})).Return(&entity.Booking{ID: uuid.New(), Status: entity.BookingStatusPending}, nil)

	c, rec := newTestContext(http.MethodPost, "/api/v1/bookings", body, playerID)
	require.NoError(t, fx.handler.CreateBooking(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"status":"pending"`)
}

func TestBookingHandler_CreateBooking_ValidationError(t *testing.T) {
	fx := createTestBookingHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/bookings", `{"pnj_profile_id":"not-a-uuid","duration_hours":2}`, uuid.New())
	require.NoError(t, fx.handler.CreateBooking(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Message, "activity is required")
	fx.bookingUC.AssertNotCalled(t, "CreateBooking")
}

func TestBookingHandler_CreateBooking_Unauthenticated(t *testing.T) {
	fx := createTestBookingHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/v1/bookings", `{}`, uuid.Nil)
	require.NoError(t, fx.handler.CreateBooking(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingHandler_AcceptBooking_InvalidTransition(t *testing.T) {
	fx := createTestBookingHandler(t)
	pnjID := uuid.New()
	bookingID := uuid.New()

	fx.bookingUC.EXPECT().AcceptBooking(mock.Anything, pnjID, bookingID).
		Return(nil, domainerrors.ErrInvalidBookingTransition.WrapMessage("cannot move from paid to confirmed"))

	c, rec := newTestContext(http.MethodPost, "/", "", pnjID)
	require.NoError(t, fx.handler.AcceptBooking(withParam(c, "id", bookingID.String())))

	assert.Equal(t, domainerrors.ErrInvalidBookingTransition.HTTPCode(), rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrInvalidBookingTransition.ErrorCode(), env.Error.Code)
	assert.Equal(t, "cannot move from paid to confirmed", env.Error.Details)
}

func TestBookingHandler_InvalidPathID(t *testing.T) {
	fx := createTestBookingHandler(t)

	c, _ := newTestContext(http.MethodGet, "/", "", uuid.New())
	err := fx.handler.GetBooking(withParam(c, "id", "42"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.bookingUC.AssertNotCalled(t, "GetBooking")
}

func TestBookingHandler_ListBookings_StatusFilter(t *testing.T) {
	fx := createTestBookingHandler(t)
	userID := uuid.New()

	fx.bookingUC.EXPECT().ListBookings(mock.Anything, userID, repository.BookingFilter{
		Statuses: []entity.BookingStatus{entity.BookingStatusPaid, entity.BookingStatusOngoing},
		Limit:    10,
		Offset:   20,
	}).Return([]*entity.Booking{}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/bookings?status=paid,%20ongoing&limit=10&offset=20", "", userID)
	require.NoError(t, fx.handler.ListBookings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookingHandler_ListBookings_BadPagination(t *testing.T) {
	fx := createTestBookingHandler(t)

	c, _ := newTestContext(http.MethodGet, "/api/v1/bookings?limit=-1", "", uuid.New())
	err := fx.handler.ListBookings(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBookingHandler_CancelBooking(t *testing.T) {
	fx := createTestBookingHandler(t)
	userID := uuid.New()
	bookingID := uuid.New()

	fx.bookingUC.EXPECT().CancelBooking(mock.Anything, userID, bookingID, "schedule_conflict").
		Return(&entity.Booking{ID: bookingID, Status: entity.BookingStatusCancelled}, nil)

	c, rec := newTestContext(http.MethodPost, "/", `{"reason":"schedule_conflict"}`, userID)
	require.NoError(t, fx.handler.CancelBooking(withParam(c, "id", bookingID.String())))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookingHandler_CheckIn(t *testing.T) {
	fx := createTestBookingHandler(t)
	pnjID := uuid.New()
	bookingID := uuid.New()

	fx.bookingUC.EXPECT().CheckIn(mock.Anything, pnjID, bookingID, "042917").
		Return(&entity.Booking{ID: bookingID, Status: entity.BookingStatusOngoing}, nil)

	c, rec := newTestContext(http.MethodPost, "/", `{"code":"042917"}`, pnjID)
	require.NoError(t, fx.handler.CheckIn(withParam(c, "id", bookingID.String())))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookingHandler_CheckIn_NonNumericCode(t *testing.T) {
	fx := createTestBookingHandler(t)

	c, rec := newTestContext(http.MethodPost, "/", `{"code":"abc"}`, uuid.New())
	require.NoError(t, fx.handler.CheckIn(withParam(c, "id", uuid.NewString())))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fx.bookingUC.AssertNotCalled(t, "CheckIn")
}

func TestBookingHandler_CheckInByQR(t *testing.T) {
	fx := createTestBookingHandler(t)
	pnjID := uuid.New()

	fx.bookingUC.EXPECT().CheckInByQR(mock.Anything, pnjID, "companion://check-in?b=x&c=1").
		Return(&entity.Booking{Status: entity.BookingStatusOngoing}, nil)

	c, rec := newTestContext(http.MethodPost, "/", `{"qr_data":"companion://check-in?b=x&c=1"}`, pnjID)
	require.NoError(t, fx.handler.CheckInByQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBookingHandler_CheckInQR(t *testing.T) {
	fx := createTestBookingHandler(t)
	playerID := uuid.New()
	bookingID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.bookingUC.EXPECT().CheckInQR(mock.Anything, playerID, bookingID).Return(png, nil)

	c, rec := newTestContext(http.MethodGet, "/", "", playerID)
	require.NoError(t, fx.handler.CheckInQR(withParam(c, "id", bookingID.String())))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestBookingHandler_StartPayment(t *testing.T) {
	fx := createTestBookingHandler(t)
	playerID := uuid.New()
	bookingID := uuid.New()

	fx.paymentUC.EXPECT().StartPayment(mock.Anything, playerID, bookingID).Return(&usecase.PaymentSession{
		BookingID:       bookingID,
		PaymentIntentID: "pi_123",
		ClientSecret:    "pi_123_secret",
		Amount:          5000,
		Currency:        "eur",
	}, nil)

	c, rec := newTestContext(http.MethodPost, "/", "", playerID)
	require.NoError(t, fx.handler.StartPayment(withParam(c, "id", bookingID.String())))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"client_secret":"pi_123_secret"`)
}

func TestBookingHandler_StartPayment_NotPayable(t *testing.T) {
	fx := createTestBookingHandler(t)
	playerID := uuid.New()
	bookingID := uuid.New()

	fx.paymentUC.EXPECT().StartPayment(mock.Anything, playerID, bookingID).Return(nil, domainerrors.ErrBookingNotPayable)

	c, rec := newTestContext(http.MethodPost, "/", "", playerID)
	require.NoError(t, fx.handler.StartPayment(withParam(c, "id", bookingID.String())))

	assert.Equal(t, domainerrors.ErrBookingNotPayable.HTTPCode(), rec.Code)
	assert.Equal(t, domainerrors.ErrBookingNotPayable.ErrorCode(), decodeEnvelope(t, rec).Error.Code)
}
