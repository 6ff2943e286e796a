package handler

import (
	"net/http"
	"strings"

	"shelf/internal/delivery/api/response"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	BookUC usecase.BookUsecase
}

// BookHandler serves the library endpoints under /books.
type BookHandler struct {
	bookUC usecase.BookUsecase
}

// NewBookHandler is the constructor for BookHandler.
func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{bookUC: params.BookUC}
}

type CreateBookRequest struct {
	Title       string   `json:"title" validate:"required,notblank,max=500"`
	Author      string   `json:"author" validate:"required,notblank,max=300"`
	ISBN        string   `json:"isbn" validate:"omitempty,max=20"`
	Description string   `json:"description" validate:"omitempty,max=10000"`
	CoverImage  string   `json:"coverImage" validate:"omitempty,max=2048"`
	TotalPages  *int     `json:"totalPages" validate:"omitempty,min=1"`
	CurrentPage int      `json:"currentPage" validate:"gte=0"`
	Status      string   `json:"status" validate:"omitempty,oneof=TO_READ READING COMPLETED ABANDONED"`
	Rating      *int     `json:"rating" validate:"omitempty,min=1,max=5"`
	CategoryID  string   `json:"categoryId" validate:"omitempty,uuid"`
	Tags        []string `json:"tags" validate:"omitempty,max=50,dive,max=50"`
}

// UpdateBookRequest is a partial update. For categoryId, an empty string removes
// the category while null or an absent key leaves it unchanged.
type UpdateBookRequest struct {
	Title       *string `json:"title" validate:"omitempty,notblank,max=500"`
	Author      *string `json:"author" validate:"omitempty,notblank,max=300"`
	ISBN        *string `json:"isbn" validate:"omitempty,max=20"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
	CoverImage  *string `json:"coverImage" validate:"omitempty,max=2048"`
	TotalPages  *int    `json:"totalPages" validate:"omitempty,min=1"`
	CurrentPage *int    `json:"currentPage" validate:"omitempty,gte=0"`
	Status      *string `json:"status" validate:"omitempty,oneof=TO_READ READING COMPLETED ABANDONED"`
	Rating      *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	CategoryID  *string `json:"categoryId"`
}

type AddBookTagRequest struct {
	TagID string `json:"tagId" validate:"required,uuid"`
}

// bookResponse is a book with its derived progress percentage.
type bookResponse struct {
	*entity.Book

	Progress int `json:"progress"`
}

func toBookResponse(book *entity.Book) bookResponse {
	if book.Tags == nil {
		book.Tags = []*entity.Tag{}
	}

	return bookResponse{Book: book, Progress: book.Progress()}
}

func (h *BookHandler) List(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	filter := repository.BookFilter{Query: strings.TrimSpace(c.QueryParam("q"))}

	if status := c.QueryParam("status"); status != "" {
		filter.Status = entity.ReadingStatus(status)
		if !filter.Status.IsValid() {
			return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Unknown reading status")
		}
	}

	if raw := c.QueryParam("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid categoryId")
		}
		filter.CategoryID = &categoryID
	}

	books, err := h.bookUC.List(c.Request().Context(), uid, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]bookResponse, 0, len(books))
	for _, book := range books {
		out = append(out, toBookResponse(book))
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *BookHandler) Get(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bookID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	book, err := h.bookUC.Get(c.Request().Context(), uid, bookID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book))
}

func (h *BookHandler) Create(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateBookRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := &usecase.CreateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		TotalPages:  req.TotalPages,
		CurrentPage: req.CurrentPage,
		Status:      entity.ReadingStatus(req.Status),
		Rating:      req.Rating,
		Tags:        req.Tags,
	}
	if req.CategoryID != "" {
		categoryID := uuid.MustParse(req.CategoryID)
		input.CategoryID = &categoryID
	}

	book, err := h.bookUC.Create(c.Request().Context(), uid, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toBookResponse(book))
}

func (h *BookHandler) Update(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bookID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	var req UpdateBookRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	book, err := h.bookUC.Update(c.Request().Context(), uid, bookID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toBookResponse(book))
}

func (h *BookHandler) Delete(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bookID, ok, err := pathID(c, "id")
	if !ok {
		return err
	}

	if err := h.bookUC.Delete(c.Request().Context(), uid, bookID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func (h *BookHandler) AddTag(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bookID, ok, err := pathID(c, "bookId")
	if !ok {
		return err
	}

	var req AddBookTagRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	tag, err := h.bookUC.AddTag(c.Request().Context(), uid, bookID, uuid.MustParse(req.TagID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, tag)
}

func (h *BookHandler) RemoveTag(c echo.Context) error {
	uid, err := userID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bookID, ok, err := pathID(c, "bookId")
	if !ok {
		return err
	}

	tagID, ok, err := pathID(c, "tagId")
	if !ok {
		return err
	}

	if err := h.bookUC.RemoveTag(c.Request().Context(), uid, bookID, tagID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func (req *UpdateBookRequest) toInput() (*usecase.UpdateBookInput, error) {
	input := &usecase.UpdateBookInput{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		TotalPages:  req.TotalPages,
		CurrentPage: req.CurrentPage,
		Rating:      req.Rating,
	}

	if req.Status != nil {
		status := entity.ReadingStatus(*req.Status)
		input.Status = &status
	}

	if req.StartDate != nil && *req.StartDate != "" {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		input.StartDate = &start
	}

	if req.EndDate != nil && *req.EndDate != "" {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, err
		}
		input.EndDate = &end
	}

	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			input.ClearCategory = true
		} else {
			categoryID, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				return nil, domainerrors.ErrValidationFailed.WithDetails("categoryId must be a valid UUID")
			}
			input.CategoryID = &categoryID
		}
	}

	return input, nil
}
