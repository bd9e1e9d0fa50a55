package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "companion/internal/delivery/context"
	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/service"
	"companion/internal/infra/pubsub"
	mockUC "companion/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockRewardUsecase) {
	rewardUC := mockUC.NewMockRewardUsecase(t)

	return &PushHandler{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		rewardUC: rewardUC,
	}, rewardUC
}

func pushBody(t *testing.T, event *service.BookingStatusChanged, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/p/subscriptions/booking-events-worker"

	body, err := json.Marshal(&msg)
	require.NoError(t, err)

	return string(body)
}

func push(t *testing.T, h *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func completedEvent() *service.BookingStatusChanged {
	return &service.BookingStatusChanged{
		RequestID: "req-from-event",
		BookingID: uuid.New(),
		Previous:  entity.BookingStatusOngoing,
		Current:   entity.BookingStatusCompleted,
	}
}

func TestHandlePush_GrantsReward(t *testing.T) {
	h, rewardUC := newTestPushHandler(t)
	event := completedEvent()

	rewardUC.EXPECT().HandleBookingStatusChanged(mock.Anything, mock.MatchedBy(func(got *service.BookingStatusChanged) bool {
		return got.BookingID == event.BookingID && got.Current == entity.BookingStatusCompleted
	})).RunAndReturn(func(ctx context.Context, _ *service.BookingStatusChanged) error {
		assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))

		return nil
	})

	rec := push(t, h, pushBody(t, event, map[string]string{
		"request_id": "req-from-attributes",
		"event_type": pubsub.EventTypeBookingStatusChanged,
	}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_StoreFailureIsRedelivered(t *testing.T) {
	h, rewardUC := newTestPushHandler(t)

	rewardUC.EXPECT().HandleBookingStatusChanged(mock.Anything, mock.Anything).Return(assert.AnError)

	rec := push(t, h, pushBody(t, completedEvent(), nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_ClientErrorIsAcknowledged(t *testing.T) {
	h, rewardUC := newTestPushHandler(t)

	rewardUC.EXPECT().HandleBookingStatusChanged(mock.Anything, mock.Anything).
		Return(domainerrors.ErrValidationFailed.WrapMessage("negative xp"))

	rec := push(t, h, pushBody(t, completedEvent(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_UndecodableDataIsDropped(t *testing.T) {
	h, rewardUC := newTestPushHandler(t)

	rec := push(t, h, `{"message":{"data":"!!not-base64!!","messageId":"msg-2"}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	rewardUC.AssertNotCalled(t, "HandleBookingStatusChanged")
}

func TestHandlePush_OtherEventTypeIsDropped(t *testing.T) {
	h, rewardUC := newTestPushHandler(t)

	rec := push(t, h, pushBody(t, completedEvent(), map[string]string{"event_type": "user.created"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	rewardUC.AssertNotCalled(t, "HandleBookingStatusChanged")
}

func TestHandlePush_MalformedEnvelope(t *testing.T) {
	h, rewardUC := newTestPushHandler(t)

	rec := push(t, h, `{"message":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rewardUC.AssertNotCalled(t, "HandleBookingStatusChanged")
}

func TestExtractRequestID_FallsBackToEvent(t *testing.T) {
	h, _ := newTestPushHandler(t)
	req := httptest.NewRequest(http.MethodPost, "/push", nil)

	got := h.extractRequestID(req.Context(), &pubsub.PushMessage{}, completedEvent())

	assert.Equal(t, "req-from-event", got)
}
