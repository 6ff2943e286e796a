package handler

import (
	"net/http"
	"testing"

	"shelf/internal/domain/entity"
	mockUsecase "shelf/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTagHandler_Create(t *testing.T) {
	uid := uuid.New()

	t.Run("blank name is rejected", func(t *testing.T) {
		h := NewTagHandler(TagHandlerParams{TagUC: mockUsecase.NewMockTagUsecase(t)})

		c, rec := newTestContext(http.MethodPost, "/tags", `{"name":"  "}`, &uid)

		require.NoError(t, h.Create(c))
		assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	})

	t.Run("created", func(t *testing.T) {
		tagUC := mockUsecase.NewMockTagUsecase(t)
		h := NewTagHandler(TagHandlerParams{TagUC: tagUC})

		tagUC.EXPECT().Create(mock.Anything, uid, "classic").Return(&entity.Tag{ID: uuid.New(), Name: "classic"}, nil)

		c, rec := newTestContext(http.MethodPost, "/tags", `{"name":"classic"}`, &uid)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestTagHandler_Rename_BlankName(t *testing.T) {
	uid := uuid.New()
	tagID := uuid.New()

	h := NewTagHandler(TagHandlerParams{TagUC: mockUsecase.NewMockTagUsecase(t)})

	c, rec := newTestContext(http.MethodPut, "/tags/"+tagID.String(), `{"name":" "}`, &uid)
	c.SetParamNames("id")
	c.SetParamValues(tagID.String())

	require.NoError(t, h.Rename(c))
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}
