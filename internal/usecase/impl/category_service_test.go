package impl

import (
	"context"
	"testing"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	mockRepo "shelf/internal/mocks/repository"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	txManager    *mockRepo.MockTransactionManager
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	service := NewCategoryService(CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: categoryRepo,
		Logger:       newDiscardLogger(),
	})

	return categoryServiceFixtures{service: service, txManager: txManager, categoryRepo: categoryRepo}
}

func TestCategoryService_Create_DefaultColor(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := fx.service.Create(ctx, userID, &usecase.CategoryInput{Name: " Fiction "})

	require.NoError(t, err)
	assert.Equal(t, "Fiction", category.Name)
	assert.Equal(t, entity.DefaultCategoryColor, category.Color)
	assert.Equal(t, userID, category.UserID)
}

func TestCategoryService_Create_NameTaken(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()

	fx.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).Return(domainerrors.ErrCategoryNameTaken)

	_, err := fx.service.Create(ctx, uuid.New(), &usecase.CategoryInput{Name: "Fiction", Color: "#EF4444"})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)
}

func TestCategoryService_Update_KeepsColorWhenOmitted(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.Category{ID: uuid.New(), UserID: userID, Name: "Fiction", Color: "#EF4444"}

	fx.categoryRepo.EXPECT().FindByID(ctx, userID, stored.ID).Return(stored, nil)
	fx.categoryRepo.EXPECT().Update(ctx, stored).Return(nil)

	category, err := fx.service.Update(ctx, userID, stored.ID, &usecase.CategoryInput{Name: "Novels"})

	require.NoError(t, err)
	assert.Equal(t, "Novels", category.Name)
	assert.Equal(t, "#EF4444", category.Color)
}

func TestCategoryService_Delete_UncategorisesBooks(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	txCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	txBookRepo := mockRepo.NewMockBookRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewCategoryRepository().Return(txCategoryRepo)
		factory.EXPECT().NewBookRepository().Return(txBookRepo)

		txCategoryRepo.EXPECT().FindByID(ctx, userID, categoryID).Return(&entity.Category{ID: categoryID}, nil)
		txBookRepo.EXPECT().ClearCategory(ctx, userID, categoryID).Return(nil)
		txCategoryRepo.EXPECT().Delete(ctx, userID, categoryID).Return(nil)
	})

	require.NoError(t, fx.service.Delete(ctx, userID, categoryID))
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	fx := createTestCategoryService(t)
	ctx := context.Background()
	userID := uuid.New()
	categoryID := uuid.New()

	txCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewCategoryRepository().Return(txCategoryRepo)
		txCategoryRepo.EXPECT().FindByID(ctx, userID, categoryID).Return(nil, domainerrors.ErrCategoryNotFound)
	})

	err := fx.service.Delete(ctx, userID, categoryID)

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
