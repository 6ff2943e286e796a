package repository

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryRepository persists user-owned categories.
type CategoryRepository interface {
	// FindByUser lists categories ordered by name with their book counts.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Category, error)

	// Create returns ErrCategoryNameTaken on a duplicate name for the same user.
	Create(ctx context.Context, category *entity.Category) error

	Update(ctx context.Context, category *entity.Category) error

	Delete(ctx context.Context, userID, id uuid.UUID) error
}
