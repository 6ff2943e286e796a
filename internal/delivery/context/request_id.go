// Package context carries per-request values (request id, caller, scoped logger)
// between the echo layer and the services.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request id in both directions.
const HeaderXRequestID = "X-Request-Id"

// echoKeyRequestID stores the request id on echo.Context for the response envelope.
const echoKeyRequestID = "request_id"

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyLogger
	ctxKeyUserID
)

// GetRequestID returns the id assigned by the request id middleware. Outside of it a
// fresh id is generated so error envelopes always carry one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// RequestIDFrom returns the request id stored in ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// UserIDFrom returns the authenticated caller stored by the auth middleware.
func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxKeyUserID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKeyUserID, userID)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKeyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(ctxKeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
