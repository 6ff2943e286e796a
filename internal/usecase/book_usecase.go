package usecase

import (
	"context"
	"time"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateBookInput defines a new library entry. Tags are names, created on demand.
type CreateBookInput struct {
	Title       string
	Author      string
	ISBN        string
	Description string
	CoverImage  string
	TotalPages  *int
	CurrentPage int
	Status      entity.ReadingStatus // empty means TO_READ
	Rating      *int
	CategoryID  *uuid.UUID
	Tags        []string
}

// UpdateBookInput is a partial update: nil fields are left unchanged.
type UpdateBookInput struct {
	Title         *string
	Author        *string
	ISBN          *string
	Description   *string
	CoverImage    *string
	TotalPages    *int
	CurrentPage   *int
	Status        *entity.ReadingStatus
	Rating        *int
	StartDate     *time.Time
	EndDate       *time.Time
	CategoryID    *uuid.UUID
	ClearCategory bool
}

// BookUsecase defines library operations. Every call is scoped to userID.
type BookUsecase interface {
	List(ctx context.Context, userID uuid.UUID, filter repository.BookFilter) ([]*entity.Book, error)
	Get(ctx context.Context, userID, bookID uuid.UUID) (*entity.Book, error)
	Create(ctx context.Context, userID uuid.UUID, input *CreateBookInput) (*entity.Book, error)
	Update(ctx context.Context, userID, bookID uuid.UUID, input *UpdateBookInput) (*entity.Book, error)
	Delete(ctx context.Context, userID, bookID uuid.UUID) error

	// AddTag attaches one of the user's tags to one of the user's books.
	AddTag(ctx context.Context, userID, bookID, tagID uuid.UUID) (*entity.Tag, error)
	RemoveTag(ctx context.Context, userID, bookID, tagID uuid.UUID) error
}
