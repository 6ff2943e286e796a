package impl

import (
	"context"
	"log/slog"
	"strings"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

func (srv *categoryService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if categories == nil {
		categories = []*entity.Category{}
	}

	return categories, nil
}

func (srv *categoryService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		UserID: userID,
		Name:   strings.TrimSpace(input.Name),
		Color:  categoryColor(input.Color),
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Category created",
		slog.String("userID", userID.String()),
		slog.String("categoryID", category.ID.String()),
	)

	return category, nil
}

func (srv *categoryService) Update(ctx context.Context, userID, categoryID uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	category.Name = strings.TrimSpace(input.Name)
	if input.Color != "" {
		category.Color = input.Color
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes the category; its books stay in the library uncategorised.
func (srv *categoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()
		if _, err := categoryRepo.FindByID(ctx, userID, categoryID); err != nil {
			return err
		}

		if err := repoFactory.NewBookRepository().ClearCategory(ctx, userID, categoryID); err != nil {
			return err
		}

		return categoryRepo.Delete(ctx, userID, categoryID)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Category deleted",
		slog.String("userID", userID.String()),
		slog.String("categoryID", categoryID.String()),
	)

	return nil
}

func categoryColor(color string) string {
	if color == "" {
		return entity.DefaultCategoryColor
	}

	return color
}
