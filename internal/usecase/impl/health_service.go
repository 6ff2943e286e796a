package impl

import (
	"context"
	"log/slog"
	"time"

	"shelf/config"
	"shelf/internal/domain/repository"
	"shelf/internal/usecase"

	"go.uber.org/fx"
)

const healthPingTimeout = 2 * time.Second

type healthService struct {
	checker repository.HealthChecker
	env     string
	logger  *slog.Logger
	now     func() time.Time
}

// HealthServiceParams holds dependencies for HealthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	Checker repository.HealthChecker
	Config  *config.Config
	Logger  *slog.Logger
}

// NewHealthService is the constructor for healthService.
func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{
		checker: params.Checker,
		env:     params.Config.Env.Env,
		logger:  params.Logger,
		now:     time.Now,
	}
}

func (srv *healthService) Check(ctx context.Context) *usecase.HealthStatus {
	status := &usecase.HealthStatus{
		Status:      "ok",
		Database:    "connected",
		Timestamp:   srv.now().UTC(),
		Environment: srv.env,
	}

	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := srv.checker.Ping(pingCtx); err != nil {
		requestLogger(ctx, srv.logger).Error("Database health check failed", slog.Any("error", err))

		status.Status = "error"
		status.Database = "disconnected"
	}

	return status
}
