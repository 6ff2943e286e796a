package repository

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// QuoteRepository persists quotes recorded from the user's books.
type QuoteRepository interface {
	// FindByUser lists quotes newest first with a summary of their book.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Quote, error)

	// FindByBook lists the quotes of one book ordered by page ascending, nulls last.
	FindByBook(ctx context.Context, userID, bookID uuid.UUID) ([]*entity.Quote, error)

	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Quote, error)

	Create(ctx context.Context, quote *entity.Quote) error

	Update(ctx context.Context, quote *entity.Quote) error

	Delete(ctx context.Context, userID, id uuid.UUID) error
}
