package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "companion/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func handle(t *testing.T, err error) (int, errorBody) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil), rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec.Code, body
}

func TestHandleHTTPError_AppErrorKeepsWrappedContext(t *testing.T) {
	code, body := handle(t, domainerrors.ErrValidationFailed.WrapMessage("duration must be between 1 and 12 hours"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "duration must be between 1 and 12 hours", body.Error.Details)
}

func TestHandleHTTPError_ServerAppErrorHidesDetails(t *testing.T) {
	code, body := handle(t, domainerrors.ErrTransactionFailed.WrapMessage("deadlock detected"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Nil(t, body.Error.Details)
}

func TestHandleHTTPError_EchoError(t *testing.T) {
	code, body := handle(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"))

	assert.Equal(t, http.StatusRequestEntityTooLarge, code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "Request Entity Too Large", body.Error.Message)
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	code, body := handle(t, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
}
