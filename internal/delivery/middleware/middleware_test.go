package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shelf/config"
	deliverycontext "shelf/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id is reused", header: "trace-123_a.b", wantSame: true},
		{name: "missing id is generated", header: ""},
		{name: "unsafe id is replaced", header: "bad id\n"},
		{name: "oversized id is replaced", header: strings.Repeat("a", maxClientRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/books", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				ctxID = deliverycontext.RequestIDFrom(c.Request().Context())

				return nil
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, ctxID)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	newLogger := func(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
		var buf bytes.Buffer
		cfg := &config.Config{Metrics: &config.MetricsConfig{Path: "/metrics"}}
		cfg.Env.Debug = debug

		return NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg), &buf
	}

	serve := func(m *LoggerMiddleware, path string, h echo.HandlerFunc) *httptest.ResponseRecorder {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), rec)
		_ = m.Handle(h)(c)

		return rec
	}

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("logs regular requests", func(t *testing.T) {
		m, buf := newLogger(false)
		serve(m, "/books", ok)

		assert.Contains(t, buf.String(), `"msg":"HTTP request"`)
		assert.Contains(t, buf.String(), `"status":200`)
	})

	t.Run("skips healthy probes outside debug", func(t *testing.T) {
		m, buf := newLogger(false)
		serve(m, "/health", ok)
		serve(m, "/metrics", ok)

		assert.Empty(t, buf.String())
	})

	t.Run("logs failing probes", func(t *testing.T) {
		m, buf := newLogger(false)
		serve(m, "/health", func(c echo.Context) error { return c.NoContent(http.StatusServiceUnavailable) })

		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})

	t.Run("handler errors are rendered before logging", func(t *testing.T) {
		m, buf := newLogger(false)
		rec := serve(m, "/books", func(echo.Context) error { return echo.NewHTTPError(http.StatusTeapot) })

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Contains(t, buf.String(), `"status":418`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
	})
}
