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
	"github.com/stretchr/testify/require"
)

type tagServiceFixtures struct {
	service   usecase.TagUsecase
	txManager *mockRepo.MockTransactionManager
	tagRepo   *mockRepo.MockTagRepository
}

func createTestTagService(t *testing.T) tagServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	tagRepo := mockRepo.NewMockTagRepository(t)

	service := NewTagService(TagServiceParams{
		TxManager: txManager,
		TagRepo:   tagRepo,
		Logger:    newDiscardLogger(),
	})

	return tagServiceFixtures{service: service, txManager: txManager, tagRepo: tagRepo}
}

func TestTagService_List_EmptyIsNotNil(t *testing.T) {
	fx := createTestTagService(t)
	userID := uuid.New()

	fx.tagRepo.EXPECT().FindByUser(context.Background(), userID).Return(nil, nil)

	tags, err := fx.service.List(context.Background(), userID)

	require.NoError(t, err)
	assert.NotNil(t, tags)
}

func TestTagService_Rename_Duplicate(t *testing.T) {
	fx := createTestTagService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.Tag{ID: uuid.New(), UserID: userID, Name: "sf"}

	fx.tagRepo.EXPECT().FindByID(ctx, userID, stored.ID).Return(stored, nil)
	fx.tagRepo.EXPECT().Update(ctx, stored).Return(domainerrors.ErrTagNameTaken)

	_, err := fx.service.Rename(ctx, userID, stored.ID, "fantasy")

	assert.ErrorIs(t, err, domainerrors.ErrTagNameTaken)
}

func TestTagService_Delete_DetachesBooks(t *testing.T) {
	fx := createTestTagService(t)
	ctx := context.Background()
	userID := uuid.New()
	tagID := uuid.New()

	txTagRepo := mockRepo.NewMockTagRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewTagRepository().Return(txTagRepo)
		txTagRepo.EXPECT().FindByID(ctx, userID, tagID).Return(&entity.Tag{ID: tagID}, nil)
		txTagRepo.EXPECT().DetachAll(ctx, tagID).Return(nil)
		txTagRepo.EXPECT().Delete(ctx, userID, tagID).Return(nil)
	})

	require.NoError(t, fx.service.Delete(ctx, userID, tagID))
}

func TestTagService_Delete_ForeignTag(t *testing.T) {
	fx := createTestTagService(t)
	ctx := context.Background()
	userID := uuid.New()
	tagID := uuid.New()

	txTagRepo := mockRepo.NewMockTagRepository(t)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		factory.EXPECT().NewTagRepository().Return(txTagRepo)
		txTagRepo.EXPECT().FindByID(ctx, userID, tagID).Return(nil, domainerrors.ErrTagNotFound)
	})

	assert.ErrorIs(t, fx.service.Delete(ctx, userID, tagID), domainerrors.ErrTagNotFound)
}
