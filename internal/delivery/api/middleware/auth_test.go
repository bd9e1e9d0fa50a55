package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"companion/internal/domain/service"
	mockService "companion/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, header string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	next := func(echo.Context) error {
		called = true

		return nil
	}

	require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(next)(c))

	return rec, c, called
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: userID, Email: "a@example.com", Type: "access"}, nil)

	_, c, called := runAuthenticate(t, tokenSvc, "Bearer good-token")

	assert.True(t, called)
	got, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
	assert.Equal(t, "a@example.com", GetEmail(c))
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(*mockService.MockTokenService)
	}{
		{name: "missing header"},
		{name: "not bearer", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer "},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, assert.AnError)
			},
		},
		{
			name:   "nil subject",
			header: "Bearer anonymous",
			setup: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("anonymous").Return(&service.Claims{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			rec, c, called := runAuthenticate(t, tokenSvc, tt.header)

			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			_, ok := GetUserID(c)
			assert.False(t, ok)
		})
	}
}
