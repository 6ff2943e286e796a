package usecase

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateQuoteInput records a passage from one of the user's books.
type CreateQuoteInput struct {
	BookID uuid.UUID
	Text   string
	Page   *int
	Note   string
}

// UpdateQuoteInput is a partial update: nil fields are left unchanged.
type UpdateQuoteInput struct {
	Text *string
	Page *int
	Note *string
}

// QuoteUsecase defines quote operations.
type QuoteUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Quote, error)
	ListByBook(ctx context.Context, userID, bookID uuid.UUID) ([]*entity.Quote, error)
	Create(ctx context.Context, userID uuid.UUID, input *CreateQuoteInput) (*entity.Quote, error)
	Update(ctx context.Context, userID, quoteID uuid.UUID, input *UpdateQuoteInput) (*entity.Quote, error)
	Delete(ctx context.Context, userID, quoteID uuid.UUID) error
}
