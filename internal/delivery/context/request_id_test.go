package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	SetRequestID(c, "req-7")
	assert.Equal(t, "req-7", GetRequestID(c))
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Empty(t, RequestIDFrom(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
	_, ok := UserIDFrom(ctx)
	assert.False(t, ok)

	scoped := fallback.With(slog.String("request_id", "req-1"))
	userID := uuid.New()
	ctx = WithUserID(WithLogger(WithRequestID(ctx, "req-1"), scoped), userID)

	assert.Equal(t, "req-1", RequestIDFrom(ctx))
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
	got, ok := UserIDFrom(ctx)
	assert.True(t, ok)
	assert.Equal(t, userID, got)
}
