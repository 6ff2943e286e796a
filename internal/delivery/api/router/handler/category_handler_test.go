package handler

import (
	"net/http"
	"testing"

	mockUsecase "shelf/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_BlankName(t *testing.T) {
	uid := uuid.New()
	categoryID := uuid.New()

	t.Run("create", func(t *testing.T) {
		h := NewCategoryHandler(CategoryHandlerParams{CategoryUC: mockUsecase.NewMockCategoryUsecase(t)})

		c, rec := newTestContext(http.MethodPost, "/categories", `{"name":"   ","color":"#3B82F6"}`, &uid)

		require.NoError(t, h.Create(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("update", func(t *testing.T) {
		h := NewCategoryHandler(CategoryHandlerParams{CategoryUC: mockUsecase.NewMockCategoryUsecase(t)})

		c, rec := newTestContext(http.MethodPut, "/categories/"+categoryID.String(), `{"name":"\t"}`, &uid)
		c.SetParamNames("id")
		c.SetParamValues(categoryID.String())

		require.NoError(t, h.Update(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})
}
