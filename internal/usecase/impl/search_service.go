package impl

import (
	"context"
	"log/slog"
	"strings"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/domain/service"
	"shelf/internal/usecase"

	"go.uber.org/fx"
)

// searchService implements the SearchUsecase interface on top of the external catalog.
type searchService struct {
	catalog  service.BookCatalog
	bookRepo repository.BookRepository
	logger   *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Catalog  service.BookCatalog
	BookRepo repository.BookRepository
	Logger   *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		catalog:  params.Catalog,
		bookRepo: params.BookRepo,
		logger:   params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Search never fails because of the catalog: upstream errors degrade to an empty list.
func (srv *searchService) Search(ctx context.Context, query string, maxResults int) ([]*entity.CatalogBook, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search query is required")
	}

	books, err := srv.catalog.Search(ctx, query, maxResults)
	if err != nil {
		srv.log(ctx).Warn("Catalog search failed",
			slog.String("query", query),
			slog.Any("error", err),
		)

		return []*entity.CatalogBook{}, nil
	}

	if books == nil {
		books = []*entity.CatalogBook{}
	}

	return books, nil
}

// LookupISBN reports ErrCatalogBookNotFound for both misses and upstream failures.
func (srv *searchService) LookupISBN(ctx context.Context, isbn string) (*entity.CatalogBook, error) {
	book, err := srv.catalog.LookupISBN(ctx, isbn)
	if err != nil {
		srv.log(ctx).Warn("Catalog ISBN lookup failed",
			slog.String("isbn", isbn),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrCatalogBookNotFound
	}

	if book == nil {
		return nil, domainerrors.ErrCatalogBookNotFound
	}

	return book, nil
}
