package handler

import (
	"net/http"

	"shelf/internal/delivery/api/response"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CategoryHandlerParams holds dependencies for CategoryHandler, injected by Fx.
type CategoryHandlerParams struct {
	fx.In

	CategoryUC usecase.CategoryUsecase
}

type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler.
func NewCategoryHandler(params CategoryHandlerParams) *CategoryHandler {
	return &CategoryHandler{categoryUC: params.CategoryUC}
}

type CategoryRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=100"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

func (h *CategoryHandler) List(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	categories, err := h.categoryUC.List(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.categoryUC.Create(c.Request().Context(), uid, &usecase.CategoryInput{Name: req.Name, Color: req.Color})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	categoryID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req CategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.categoryUC.Update(c.Request().Context(), uid, categoryID, &usecase.CategoryInput{Name: req.Name, Color: req.Color})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	categoryID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.categoryUC.Delete(c.Request().Context(), uid, categoryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
