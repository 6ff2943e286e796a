package handler

import (
	"net/http"

	"shelf/internal/delivery/api/response"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuoteHandlerParams holds dependencies for QuoteHandler, injected by Fx.
type QuoteHandlerParams struct {
	fx.In

	QuoteUC usecase.QuoteUsecase
}

type QuoteHandler struct {
	quoteUC usecase.QuoteUsecase
}

// NewQuoteHandler is the constructor for QuoteHandler.
func NewQuoteHandler(params QuoteHandlerParams) *QuoteHandler {
	return &QuoteHandler{quoteUC: params.QuoteUC}
}

type CreateQuoteRequest struct {
	BookID string `json:"bookId" validate:"required,uuid"`
	Text   string `json:"text" validate:"required,notblank,max=5000"`
	Page   *int   `json:"page" validate:"omitempty,min=1"`
	Note   string `json:"note" validate:"omitempty,max=5000"`
}

type UpdateQuoteRequest struct {
	Text *string `json:"text" validate:"omitempty,notblank,max=5000"`
	Page *int    `json:"page" validate:"omitempty,min=1"`
	Note *string `json:"note" validate:"omitempty,max=5000"`
}

func (h *QuoteHandler) List(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	quotes, err := h.quoteUC.List(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quotes)
}

func (h *QuoteHandler) ListByBook(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bookID, ok, err := pathID(c, "bookId")
	if !ok {
		return err
	}

	quotes, err := h.quoteUC.ListByBook(c.Request().Context(), uid, bookID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quotes)
}

func (h *QuoteHandler) Create(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateQuoteRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	quote, err := h.quoteUC.Create(c.Request().Context(), uid, &usecase.CreateQuoteInput{
		BookID: uuid.MustParse(req.BookID),
		Text:   req.Text,
		Page:   req.Page,
		Note:   req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, quote)
}

func (h *QuoteHandler) Update(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	quoteID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req UpdateQuoteRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	quote, err := h.quoteUC.Update(c.Request().Context(), uid, quoteID, &usecase.UpdateQuoteInput{
		Text: req.Text,
		Page: req.Page,
		Note: req.Note,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}

func (h *QuoteHandler) Delete(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	quoteID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.quoteUC.Delete(c.Request().Context(), uid, quoteID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
