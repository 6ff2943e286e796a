package handler

import (
	"net/http"
	"testing"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	mockUsecase "shelf/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSearchHandler_Books(t *testing.T) {
	t.Run("query is required", func(t *testing.T) {
		h := NewSearchHandler(SearchHandlerParams{SearchUC: mockUsecase.NewMockSearchUsecase(t)})

		c, rec := newTestContext(http.MethodGet, "/search/books", "", nil)

		require.NoError(t, h.Books(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("default page size", func(t *testing.T) {
		searchUC := mockUsecase.NewMockSearchUsecase(t)
		h := NewSearchHandler(SearchHandlerParams{SearchUC: searchUC})

		searchUC.EXPECT().Search(mock.Anything, "dune", defaultSearchResults).
			Return([]*entity.CatalogBook{{ExternalID: "vol-1", Title: "Dune"}}, nil)

		c, rec := newTestContext(http.MethodGet, "/search/books?q=dune", "", nil)

		require.NoError(t, h.Books(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"vol-1"`)
	})

	t.Run("blank query is rejected", func(t *testing.T) {
		h := NewSearchHandler(SearchHandlerParams{SearchUC: mockUsecase.NewMockSearchUsecase(t)})

		c, rec := newTestContext(http.MethodGet, "/search/books?q=%20%20", "", nil)

		require.NoError(t, h.Books(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	for _, tt := range []struct {
		maxResults string
		want       int
	}{
		{maxResults: "100", want: 40},
		{maxResults: "40", want: 40},
		{maxResults: "25", want: 25},
		{maxResults: "-3", want: 1},
	} {
		t.Run("page size "+tt.maxResults, func(t *testing.T) {
			searchUC := mockUsecase.NewMockSearchUsecase(t)
			h := NewSearchHandler(SearchHandlerParams{SearchUC: searchUC})

			searchUC.EXPECT().Search(mock.Anything, "dune", tt.want).Return([]*entity.CatalogBook{}, nil)

			c, rec := newTestContext(http.MethodGet, "/search/books?q=dune&maxResults="+tt.maxResults, "", nil)

			require.NoError(t, h.Books(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestSearchHandler_ISBN(t *testing.T) {
	t.Run("short isbn is a catalog miss", func(t *testing.T) {
		searchUC := mockUsecase.NewMockSearchUsecase(t)
		h := NewSearchHandler(SearchHandlerParams{SearchUC: searchUC})

		searchUC.EXPECT().LookupISBN(mock.Anything, "12345").Return(nil, domainerrors.ErrCatalogBookNotFound)

		c, rec := newTestContext(http.MethodGet, "/search/isbn/12345", "", nil)
		c.SetParamNames("isbn")
		c.SetParamValues("12345")

		require.NoError(t, h.ISBN(c))
		assertErrorCode(t, rec, http.StatusNotFound, "CATALOG_BOOK_NOT_FOUND")
	})

	searchUC := mockUsecase.NewMockSearchUsecase(t)
	h := NewSearchHandler(SearchHandlerParams{SearchUC: searchUC})

	searchUC.EXPECT().LookupISBN(mock.Anything, "9780441013593").Return(nil, domainerrors.ErrCatalogBookNotFound)

	c, rec := newTestContext(http.MethodGet, "/search/isbn/9780441013593", "", nil)
	c.SetParamNames("isbn")
	c.SetParamValues("9780441013593")

	require.NoError(t, h.ISBN(c))
	assertErrorCode(t, rec, http.StatusNotFound, "CATALOG_BOOK_NOT_FOUND")
}

func TestSearchHandler_Recommendations(t *testing.T) {
	uid := uuid.New()

	searchUC := mockUsecase.NewMockSearchUsecase(t)
	h := NewSearchHandler(SearchHandlerParams{SearchUC: searchUC})

	searchUC.EXPECT().Recommend(mock.Anything, uid).Return([]*entity.Recommendation{}, nil)

	c, rec := newTestContext(http.MethodGet, "/search/recommendations", "", &uid)

	require.NoError(t, h.Recommendations(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
}
