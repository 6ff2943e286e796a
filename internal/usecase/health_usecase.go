package usecase

import (
	"context"
	"time"
)

// HealthStatus reports liveness and datastore connectivity.
type HealthStatus struct {
	Status      string    `json:"status"`
	Database    string    `json:"database"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}

// Healthy reports whether every dependency is reachable.
func (h *HealthStatus) Healthy() bool {
	return h.Status == "ok"
}

// HealthUsecase probes the service dependencies.
type HealthUsecase interface {
	Check(ctx context.Context) *HealthStatus
}
