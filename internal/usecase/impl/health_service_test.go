package impl

import (
	"context"
	"testing"

	"shelf/config"
	mockRepo "shelf/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHealthService_Check(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "test"

	t.Run("database reachable", func(t *testing.T) {
		checker := mockRepo.NewMockHealthChecker(t)
		checker.EXPECT().Ping(mock.Anything).Return(nil)

		svc := NewHealthService(HealthServiceParams{Checker: checker, Config: cfg, Logger: newDiscardLogger()})
		status := svc.Check(context.Background())

		assert.True(t, status.Healthy())
		assert.Equal(t, "connected", status.Database)
		assert.Equal(t, "test", status.Environment)
	})

	t.Run("database unreachable", func(t *testing.T) {
		checker := mockRepo.NewMockHealthChecker(t)
		checker.EXPECT().Ping(mock.Anything).Return(errors.New("dial tcp: connection refused"))

		svc := NewHealthService(HealthServiceParams{Checker: checker, Config: cfg, Logger: newDiscardLogger()})
		status := svc.Check(context.Background())

		assert.False(t, status.Healthy())
		assert.Equal(t, "error", status.Status)
		assert.Equal(t, "disconnected", status.Database)
	})
}
