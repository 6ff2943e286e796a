package handler

import (
	"net/http"
	"testing"
	"time"

	mockUsecase "shelf/internal/mocks/usecase"
	"shelf/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name     string
		status   *usecase.HealthStatus
		wantCode int
	}{
		{
			name:     "healthy",
			status:   &usecase.HealthStatus{Status: "ok", Database: "connected", Timestamp: time.Now()},
			wantCode: http.StatusOK,
		},
		{
			name:     "database down",
			status:   &usecase.HealthStatus{Status: "error", Database: "disconnected", Timestamp: time.Now()},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			healthUC := mockUsecase.NewMockHealthUsecase(t)
			h := NewHealthHandler(HealthHandlerParams{HealthUC: healthUC})

			healthUC.EXPECT().Check(mock.Anything).Return(tt.status)

			c, rec := newTestContext(http.MethodGet, "/health", "", nil)

			require.NoError(t, h.Check(c))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), `"database":"`+tt.status.Database+`"`)
		})
	}
}
