package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/domain/service"
	mockSvc "shelf/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, header string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		seen   uuid.UUID
		called bool
	)
	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		called = true
		seen, _ = GetUserID(c)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, seen, called
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil)

	rec, seen, called := runAuthenticate(t, tokenSvc, "Bearer good")

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seen)
}

func TestAuthenticate_Rejections(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		rec, _, called := runAuthenticate(t, mockSvc.NewMockTokenService(t), "")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		rec, _, called := runAuthenticate(t, mockSvc.NewMockTokenService(t), "Basic dXNlcjpwYXNz")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		tokenSvc := mockSvc.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

		rec, _, called := runAuthenticate(t, tokenSvc, "Bearer expired")

		assert.False(t, called)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
	})
}

func TestAuthenticate_StoresCallerOnRequestContext(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		got, ok := deliverycontext.UserIDFrom(c.Request().Context())
		assert.True(t, ok)
		assert.Equal(t, userID, got)

		return nil
	})

	require.NoError(t, handler(c))
}
