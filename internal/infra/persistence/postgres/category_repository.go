package postgres

import (
	"context"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var rows []model.CategoryModel
	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Select("categories.*, COUNT(books.id) AS book_count").
		Joins("LEFT JOIN books ON books.category_id = categories.id").
		Where("categories.user_id = ?", userID).
		Group("categories.id").
		Order("categories.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(rows))
	for i := range rows {
		categories = append(categories, toCategoryDomain(&rows[i]))
	}

	return categories, nil
}

func (repo *categoryRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&categoryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate category id")
		}
		category.ID = id
	}

	categoryM := fromCategoryDomain(category)
	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCategoryNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ? AND user_id = ?", category.ID, category.UserID).
		Updates(map[string]any{
			"name":  category.Name,
			"color": category.Color,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}

	return nil
}

func (repo *categoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CategoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCategoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Color:     data.Color,
		BookCount: data.BookCount,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Color:     data.Color,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
