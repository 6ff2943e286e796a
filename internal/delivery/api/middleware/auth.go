package middleware

import (
	"log/slog"
	"strings"

	"shelf/internal/delivery/api/response"
	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const contextKeyUserID = "userID"

// AuthMiddleware validates bearer tokens and exposes the caller's user id.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.UserID == uuid.Nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		c.Set(contextKeyUserID, claims.UserID)

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		if logger := deliverycontext.GetLoggerOrDefault(ctx, nil); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", claims.UserID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetUserID returns the authenticated user id. ok is false outside Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}
