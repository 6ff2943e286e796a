package middleware

import (
	"log/slog"
	"time"

	"shelf/config"
	deliverycontext "shelf/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	quiet  map[string]struct{}
}

// NewLoggerMiddleware builds the access logger. Probe routes (health and metrics) are
// only logged in debug mode or when they fail.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	quiet := map[string]struct{}{"/health": {}}
	if cfg.Metrics != nil && cfg.Metrics.Path != "" {
		quiet[cfg.Metrics.Path] = struct{}{}
	}

	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
		quiet:  quiet,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is final.
			c.Error(err)
		}

		m.logRequest(c, start, err)

		return nil
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	level := slog.LevelInfo
	switch {
	case res.Status >= 500:
		level = slog.LevelError
	case res.Status >= 400:
		level = slog.LevelWarn
	}

	if _, ok := m.quiet[req.URL.Path]; ok && !m.debug && level == slog.LevelInfo {
		return
	}

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Int64("bytes_out", res.Size),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}
	if m.debug {
		attrs = append(attrs, slog.String("user_agent", req.UserAgent()))
		if req.URL.RawQuery != "" {
			attrs = append(attrs, slog.String("query", req.URL.RawQuery))
		}
	}
	if userID, ok := deliverycontext.UserIDFrom(req.Context()); ok {
		attrs = append(attrs, slog.String("user_id", userID.String()))
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).LogAttrs(req.Context(), level, "HTTP request", attrs...)
}
