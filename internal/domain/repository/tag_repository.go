package repository

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// TagRepository persists user-owned tags.
type TagRepository interface {
	// FindByUser lists tags ordered by name with their book counts.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Tag, error)

	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Tag, error)

	// FindByName does an exact match within the user's tags.
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Tag, error)

	// Create returns ErrTagNameTaken on a duplicate name for the same user.
	Create(ctx context.Context, tag *entity.Tag) error

	Update(ctx context.Context, tag *entity.Tag) error

	Delete(ctx context.Context, userID, id uuid.UUID) error

	// DetachAll removes every book association of the tag.
	DetachAll(ctx context.Context, tagID uuid.UUID) error
}
