package usecase

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchUsecase fronts the external catalog.
type SearchUsecase interface {
	// Search returns an empty list when the catalog is unavailable.
	Search(ctx context.Context, query string, maxResults int) ([]*entity.CatalogBook, error)

	// LookupISBN returns ErrCatalogBookNotFound when there is no match or the catalog fails.
	LookupISBN(ctx context.Context, isbn string) (*entity.CatalogBook, error)

	// Recommend derives candidates from the user's completed books.
	Recommend(ctx context.Context, userID uuid.UUID) ([]*entity.Recommendation, error)
}
