package handler

import (
	"net/http"
	"testing"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	mockUsecase "shelf/internal/mocks/usecase"
	"shelf/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookHandler_Get(t *testing.T) {
	uid := uuid.New()
	bookID := uuid.New()

	t.Run("includes progress", func(t *testing.T) {
		bookUC := mockUsecase.NewMockBookUsecase(t)
		h := NewBookHandler(BookHandlerParams{BookUC: bookUC})

		total := 200
		bookUC.EXPECT().Get(mock.Anything, uid, bookID).Return(&entity.Book{
			ID:          bookID,
			Title:       "Dune",
			TotalPages:  &total,
			CurrentPage: 100,
			Status:      entity.StatusReading,
		}, nil)

		c, rec := newTestContext(http.MethodGet, "/books/"+bookID.String(), "", &uid)
		c.SetParamNames("id")
		c.SetParamValues(bookID.String())

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Title    string        `json:"title"`
			Progress int           `json:"progress"`
			Tags     []*entity.Tag `json:"tags"`
		}
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
		assert.Equal(t, "Dune", body.Title)
		assert.Equal(t, 50, body.Progress)
		assert.NotNil(t, body.Tags)
	})

	t.Run("not found", func(t *testing.T) {
		bookUC := mockUsecase.NewMockBookUsecase(t)
		h := NewBookHandler(BookHandlerParams{BookUC: bookUC})

		bookUC.EXPECT().Get(mock.Anything, uid, bookID).Return(nil, domainerrors.ErrBookNotFound)

		c, rec := newTestContext(http.MethodGet, "/books/"+bookID.String(), "", &uid)
		c.SetParamNames("id")
		c.SetParamValues(bookID.String())

		require.NoError(t, h.Get(c))
		assertErrorCode(t, rec, http.StatusNotFound, "BOOK_NOT_FOUND")
	})

	t.Run("malformed id", func(t *testing.T) {
		h := NewBookHandler(BookHandlerParams{BookUC: mockUsecase.NewMockBookUsecase(t)})

		c, rec := newTestContext(http.MethodGet, "/books/abc", "", &uid)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.Get(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "INVALID_ID")
	})

	t.Run("anonymous caller", func(t *testing.T) {
		h := NewBookHandler(BookHandlerParams{BookUC: mockUsecase.NewMockBookUsecase(t)})

		c, rec := newTestContext(http.MethodGet, "/books/"+bookID.String(), "", nil)
		c.SetParamNames("id")
		c.SetParamValues(bookID.String())

		require.NoError(t, h.Get(c))
		assertErrorCode(t, rec, http.StatusUnauthorized, "UNAUTHORIZED")
	})
}

func TestBookHandler_Create(t *testing.T) {
	uid := uuid.New()

	t.Run("missing title is rejected", func(t *testing.T) {
		h := NewBookHandler(BookHandlerParams{BookUC: mockUsecase.NewMockBookUsecase(t)})

		c, rec := newTestContext(http.MethodPost, "/books", `{"author":"Frank Herbert"}`, &uid)

		require.NoError(t, h.Create(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("blank title and author are rejected", func(t *testing.T) {
		h := NewBookHandler(BookHandlerParams{BookUC: mockUsecase.NewMockBookUsecase(t)})

		c, rec := newTestContext(http.MethodPost, "/books", `{"title":"   ","author":"  "}`, &uid)

		require.NoError(t, h.Create(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
		assert.Contains(t, rec.Body.String(), "must not be blank")
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		h := NewBookHandler(BookHandlerParams{BookUC: mockUsecase.NewMockBookUsecase(t)})

		c, rec := newTestContext(http.MethodPost, "/books", `{"title":"Dune","author":"Frank Herbert","status":"DONE"}`, &uid)

		require.NoError(t, h.Create(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewBookHandler(BookHandlerParams{BookUC: mockUsecase.NewMockBookUsecase(t)})

		c, rec := newTestContext(http.MethodPost, "/books", `{"title":`, &uid)

		require.NoError(t, h.Create(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("passes category and tags", func(t *testing.T) {
		bookUC := mockUsecase.NewMockBookUsecase(t)
		h := NewBookHandler(BookHandlerParams{BookUC: bookUC})

		categoryID := uuid.New()
		bookUC.EXPECT().
			Create(mock.Anything, uid, mock.MatchedBy(func(in *usecase.CreateBookInput) bool {
				return in.Title == "Dune" &&
					in.CategoryID != nil && *in.CategoryID == categoryID &&
					assert.ObjectsAreEqual([]string{"classic", "scifi"}, in.Tags)
			})).
			Return(&entity.Book{ID: uuid.New(), Title: "Dune", Status: entity.StatusToRead}, nil)

		body := `{"title":"Dune","author":"Frank Herbert","categoryId":"` + categoryID.String() + `","tags":["classic","scifi"]}`
		c, rec := newTestContext(http.MethodPost, "/books", body, &uid)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestBookHandler_Update(t *testing.T) {
	uid := uuid.New()
	bookID := uuid.New()

	tests := []struct {
		name  string
		body  string
		match func(*usecase.UpdateBookInput) bool
	}{
		{
			name: "empty categoryId clears the category",
			body: `{"categoryId":""}`,
			match: func(in *usecase.UpdateBookInput) bool {
				return in.ClearCategory && in.CategoryID == nil
			},
		},
		{
			name: "absent categoryId leaves it unchanged",
			body: `{"title":"Dune Messiah"}`,
			match: func(in *usecase.UpdateBookInput) bool {
				return !in.ClearCategory && in.CategoryID == nil && in.Title != nil && *in.Title == "Dune Messiah"
			},
		},
		{
			name: "date only end date",
			body: `{"status":"COMPLETED","endDate":"2024-03-01"}`,
			match: func(in *usecase.UpdateBookInput) bool {
				return in.Status != nil && *in.Status == entity.StatusCompleted &&
					in.EndDate != nil && in.EndDate.Format("2006-01-02") == "2024-03-01"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookUC := mockUsecase.NewMockBookUsecase(t)
			h := NewBookHandler(BookHandlerParams{BookUC: bookUC})

			bookUC.EXPECT().
				Update(mock.Anything, uid, bookID, mock.MatchedBy(tt.match)).
				Return(&entity.Book{ID: bookID}, nil)

			c, rec := newTestContext(http.MethodPut, "/books/"+bookID.String(), tt.body, &uid)
			c.SetParamNames("id")
			c.SetParamValues(bookID.String())

			require.NoError(t, h.Update(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("blank title", func(t *testing.T) {
		h := NewBookHandler(BookHandlerParams{BookUC: mockUsecase.NewMockBookUsecase(t)})

		c, rec := newTestContext(http.MethodPut, "/books/"+bookID.String(), `{"title":" "}`, &uid)
		c.SetParamNames("id")
		c.SetParamValues(bookID.String())

		require.NoError(t, h.Update(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("invalid date", func(t *testing.T) {
		h := NewBookHandler(BookHandlerParams{BookUC: mockUsecase.NewMockBookUsecase(t)})

		c, rec := newTestContext(http.MethodPut, "/books/"+bookID.String(), `{"startDate":"yesterday"}`, &uid)
		c.SetParamNames("id")
		c.SetParamValues(bookID.String())

		require.NoError(t, h.Update(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestBookHandler_List(t *testing.T) {
	uid := uuid.New()

	t.Run("filters are forwarded", func(t *testing.T) {
		bookUC := mockUsecase.NewMockBookUsecase(t)
		h := NewBookHandler(BookHandlerParams{BookUC: bookUC})

		bookUC.EXPECT().
			List(mock.Anything, uid, repository.BookFilter{Query: "dune", Status: entity.StatusReading}).
			Return([]*entity.Book{}, nil)

		c, rec := newTestContext(http.MethodGet, "/books?q=+dune+&status=READING", "", &uid)

		require.NoError(t, h.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("unknown status", func(t *testing.T) {
		h := NewBookHandler(BookHandlerParams{BookUC: mockUsecase.NewMockBookUsecase(t)})

		c, rec := newTestContext(http.MethodGet, "/books?status=LATER", "", &uid)

		require.NoError(t, h.List(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}

func TestBookHandler_Delete(t *testing.T) {
	uid := uuid.New()
	bookID := uuid.New()

	bookUC := mockUsecase.NewMockBookUsecase(t)
	h := NewBookHandler(BookHandlerParams{BookUC: bookUC})

	bookUC.EXPECT().Delete(mock.Anything, uid, bookID).Return(nil)

	c, rec := newTestContext(http.MethodDelete, "/books/"+bookID.String(), "", &uid)
	c.SetParamNames("id")
	c.SetParamValues(bookID.String())

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
