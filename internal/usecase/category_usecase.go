package usecase

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput creates or replaces a category. An empty Color keeps the current one,
// or the default colour on create.
type CategoryInput struct {
	Name  string
	Color string
}

// CategoryUsecase defines category operations.
type CategoryUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)
	Create(ctx context.Context, userID uuid.UUID, input *CategoryInput) (*entity.Category, error)
	Update(ctx context.Context, userID, categoryID uuid.UUID, input *CategoryInput) (*entity.Category, error)

	// Delete removes the category; its books stay with no category.
	Delete(ctx context.Context, userID, categoryID uuid.UUID) error
}
