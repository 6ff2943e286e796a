package repository

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// BookFilter narrows a library listing. Zero values mean "no filter".
type BookFilter struct {
	Status     entity.ReadingStatus
	CategoryID *uuid.UUID
	Query      string // case-insensitive substring of title or author
}

// BookRepository persists books and their tag associations.
// Every method is scoped to the owning user; rows of other users behave as absent.
type BookRepository interface {
	// FindByUser lists books ordered by last update, newest first, with category and tags loaded.
	FindByUser(ctx context.Context, userID uuid.UUID, filter BookFilter) ([]*entity.Book, error)

	// FindByID loads one book with category, tags and quotes (page ascending, nulls last).
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Book, error)

	Create(ctx context.Context, book *entity.Book) error

	// Update writes the scalar columns of the book. Associations are left untouched.
	Update(ctx context.Context, book *entity.Book) error

	Delete(ctx context.Context, userID, id uuid.UUID) error

	// FindCompleted returns all COMPLETED books of the user with their category.
	FindCompleted(ctx context.Context, userID uuid.UUID) ([]*entity.Book, error)

	// ListTitles returns the title of every book in the user's library.
	ListTitles(ctx context.Context, userID uuid.UUID) ([]string, error)

	// AddTag links a tag to a book. Returns ErrBookTagExists when already linked.
	AddTag(ctx context.Context, bookID, tagID uuid.UUID) error

	// RemoveTag unlinks a tag from a book. Returns ErrBookTagNotFound when not linked.
	RemoveTag(ctx context.Context, bookID, tagID uuid.UUID) error

	// ClearCategory nulls the category reference of every book in that category.
	ClearCategory(ctx context.Context, userID, categoryID uuid.UUID) error
}
