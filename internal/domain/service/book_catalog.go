package service

import (
	"context"

	"shelf/internal/domain/entity"
)

// BookCatalog looks up books in an external metadata catalog and returns canonical summaries.
// Implementations return errors on transport or decode failures; callers decide how to degrade.
type BookCatalog interface {
	// Search runs a free-text query.
	Search(ctx context.Context, query string, maxResults int) ([]*entity.CatalogBook, error)

	// SearchByAuthor restricts the lookup to books written by author.
	SearchByAuthor(ctx context.Context, author string, maxResults int) ([]*entity.CatalogBook, error)

	// SearchBySubject restricts the lookup to books in the given subject or category.
	SearchBySubject(ctx context.Context, subject string, maxResults int) ([]*entity.CatalogBook, error)

	// LookupISBN returns the first match for an ISBN, or nil when the catalog has none.
	LookupISBN(ctx context.Context, isbn string) (*entity.CatalogBook, error)
}
