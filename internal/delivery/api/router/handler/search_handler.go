package handler

import (
	"net/http"

	"shelf/internal/delivery/api/response"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultSearchResults = 10
	maxSearchResults     = 40
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
}

// SearchHandler serves catalog search, ISBN lookup and recommendations.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
}

// NewSearchHandler is the constructor for SearchHandler.
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{searchUC: params.SearchUC}
}

type SearchRequest struct {
	Query      string `query:"q" validate:"required,notblank,max=200"`
	MaxResults int    `query:"maxResults"`
}

type ISBNRequest struct {
	ISBN string `param:"isbn" validate:"required,max=32"`
}

func (h *SearchHandler) Books(c echo.Context) error {
	var req SearchRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	books, err := h.searchUC.Search(c.Request().Context(), req.Query, pageSize(req.MaxResults))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, books)
}

func (h *SearchHandler) ISBN(c echo.Context) error {
	var req ISBNRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	book, err := h.searchUC.LookupISBN(c.Request().Context(), req.ISBN)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, book)
}

func (h *SearchHandler) Recommendations(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	recommendations, err := h.searchUC.Recommend(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recommendations)
}

// pageSize applies the default to an absent maxResults and clamps the rest to 1..40.
func pageSize(n int) int {
	if n == 0 {
		return defaultSearchResults
	}

	return max(1, min(n, maxSearchResults))
}
