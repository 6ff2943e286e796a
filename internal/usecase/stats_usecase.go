package usecase

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// StatsUsecase computes the aggregation snapshot of a user's library.
type StatsUsecase interface {
	Snapshot(ctx context.Context, userID uuid.UUID) (*entity.ReadingStats, error)
}
