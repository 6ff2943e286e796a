package usecase

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// TagUsecase defines tag operations.
type TagUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Tag, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (*entity.Tag, error)
	Rename(ctx context.Context, userID, tagID uuid.UUID, name string) (*entity.Tag, error)

	// Delete removes the tag and all of its book associations.
	Delete(ctx context.Context, userID, tagID uuid.UUID) error
}
