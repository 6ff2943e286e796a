package impl

import (
	"context"
	"testing"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchService_Search(t *testing.T) {
	t.Run("returns catalog results", func(t *testing.T) {
		fx := createTestSearchService(t)
		fx.catalog.EXPECT().Search(mock.Anything, "dune", 10).Return(catalogBooks("dune", 2), nil)

		books, err := fx.service.Search(context.Background(), " dune ", 10)

		require.NoError(t, err)
		assert.Len(t, books, 2)
	})

	t.Run("catalog failure degrades to empty list", func(t *testing.T) {
		fx := createTestSearchService(t)
		fx.catalog.EXPECT().Search(mock.Anything, "dune", 10).Return(nil, errors.New("timeout"))

		books, err := fx.service.Search(context.Background(), "dune", 10)

		require.NoError(t, err)
		assert.NotNil(t, books)
		assert.Empty(t, books)
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		fx := createTestSearchService(t)

		_, err := fx.service.Search(context.Background(), "   ", 10)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestSearchService_LookupISBN(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestSearchService(t)
		want := &entity.CatalogBook{ExternalID: "abc", ISBN: "9780441013593"}
		fx.catalog.EXPECT().LookupISBN(mock.Anything, "9780441013593").Return(want, nil)

		got, err := fx.service.LookupISBN(context.Background(), "9780441013593")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("no match is not found", func(t *testing.T) {
		fx := createTestSearchService(t)
		fx.catalog.EXPECT().LookupISBN(mock.Anything, "0000000000").Return(nil, nil)

		_, err := fx.service.LookupISBN(context.Background(), "0000000000")

		assert.ErrorIs(t, err, domainerrors.ErrCatalogBookNotFound)
	})

	t.Run("upstream failure is not found", func(t *testing.T) {
		fx := createTestSearchService(t)
		fx.catalog.EXPECT().LookupISBN(mock.Anything, "0000000000").Return(nil, errors.New("breaker open"))

		_, err := fx.service.LookupISBN(context.Background(), "0000000000")

		assert.ErrorIs(t, err, domainerrors.ErrCatalogBookNotFound)
	})
}
