package handler

import (
	"net/http"

	"shelf/internal/delivery/api/response"
	"shelf/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TagHandlerParams holds dependencies for TagHandler, injected by Fx.
type TagHandlerParams struct {
	fx.In

	TagUC usecase.TagUsecase
}

type TagHandler struct {
	tagUC usecase.TagUsecase
}

// NewTagHandler is the constructor for TagHandler.
func NewTagHandler(params TagHandlerParams) *TagHandler {
	return &TagHandler{tagUC: params.TagUC}
}

type TagRequest struct {
	Name string `json:"name" validate:"required,notblank,max=50"`
}

func (h *TagHandler) List(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tags, err := h.tagUC.List(c.Request().Context(), uid)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tags)
}

func (h *TagHandler) Create(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req TagRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	tag, err := h.tagUC.Create(c.Request().Context(), uid, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, tag)
}

func (h *TagHandler) Rename(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tagID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req TagRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	tag, err := h.tagUC.Rename(c.Request().Context(), uid, tagID, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tag)
}

func (h *TagHandler) Delete(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	tagID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.tagUC.Delete(c.Request().Context(), uid, tagID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
