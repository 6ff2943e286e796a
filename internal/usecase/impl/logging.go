// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shelf/internal/delivery/context"
)

// requestLogger returns the request-scoped logger if available, otherwise the service's logger.
func requestLogger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}
