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
	"gorm.io/gorm/clause"
)

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

func (repo *tagRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Tag, error) {
	var rows []model.TagModel
	err := repo.db.WithContext(ctx).
		Model(&model.TagModel{}).
		Select("tags.*, COUNT(book_tags.book_id) AS book_count").
		Joins("LEFT JOIN book_tags ON book_tags.tag_id = tags.id").
		Where("tags.user_id = ?", userID).
		Group("tags.id").
		Order("tags.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	tags := make([]*entity.Tag, 0, len(rows))
	for i := range rows {
		tags = append(tags, toTagDomain(&rows[i]))
	}

	return tags, nil
}

func (repo *tagRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Tag, error) {
	return repo.findOne(ctx, "id = ? AND user_id = ?", id, userID)
}

func (repo *tagRepository) FindByName(ctx context.Context, userID uuid.UUID, name string) (*entity.Tag, error) {
	return repo.findOne(ctx, "user_id = ? AND name = ?", userID, name)
}

func (repo *tagRepository) findOne(ctx context.Context, cond string, args ...any) (*entity.Tag, error) {
	var tagM model.TagModel
	if err := repo.db.WithContext(ctx).Where(cond, args...).First(&tagM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag")
	}

	return toTagDomain(&tagM), nil
}

func (repo *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	if tag.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate tag id")
		}
		tag.ID = id
	}

	tagM := fromTagDomain(tag)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(tagM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTagNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tag")
	}

	tag.CreatedAt = tagM.CreatedAt

	return nil
}

func (repo *tagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TagModel{}).
		Where("id = ? AND user_id = ?", tag.ID, tag.UserID).
		Update("name", tag.Name)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrTagNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tag")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTagNotFound
	}

	return nil
}

func (repo *tagRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TagModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tag")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTagNotFound
	}

	return nil
}

func (repo *tagRepository) DetachAll(ctx context.Context, tagID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("tag_id = ?", tagID).
		Delete(&model.BookTagModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to detach tag")
	}

	return nil
}

// --- Mapper Functions ---

func toTagDomain(data *model.TagModel) *entity.Tag {
	if data == nil {
		return nil
	}

	return &entity.Tag{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		BookCount: data.BookCount,
		CreatedAt: data.CreatedAt,
	}
}

func fromTagDomain(data *entity.Tag) *model.TagModel {
	if data == nil {
		return nil
	}

	return &model.TagModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
