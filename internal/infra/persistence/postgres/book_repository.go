package postgres

import (
	"context"
	"sort"
	"strings"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (repo *bookRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter repository.BookFilter) ([]*entity.Book, error) {
	query := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("BookTags.Tag").
		Where("user_id = ?", userID)

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		query = query.Where("(title ILIKE ? OR author ILIKE ?)", pattern, pattern)
	}

	var rows []model.BookModel
	if err := query.Order("updated_at DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(rows))
	for i := range rows {
		books = append(books, toBookDomain(&rows[i]))
	}

	return books, nil
}

func (repo *bookRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("BookTags.Tag").
		Preload("Quotes", func(db *gorm.DB) *gorm.DB {
			return db.Order("page ASC NULLS LAST, created_at ASC")
		}).
		Where("id = ? AND user_id = ?", id, userID).
		First(&bookM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book")
	}

	return toBookDomain(&bookM), nil
}

func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	if book.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate book id")
		}
		book.ID = id
	}

	bookM := fromBookDomain(book)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(bookM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("book category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	result := repo.db.WithContext(ctx).
		Model(bookM).
		Select("*").
		Omit(clause.Associations, "id", "user_id", "created_at").
		Where("user_id = ?", book.UserID).
		Updates(bookM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("book category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBookNotFound
	}

	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

func (repo *bookRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.BookModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBookNotFound
	}

	return nil
}

func (repo *bookRepository) FindCompleted(ctx context.Context, userID uuid.UUID) ([]*entity.Book, error) {
	var rows []model.BookModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("user_id = ? AND status = ?", userID, string(entity.StatusCompleted)).
		Order("end_date DESC NULLS LAST, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completed books")
	}

	books := make([]*entity.Book, 0, len(rows))
	for i := range rows {
		books = append(books, toBookDomain(&rows[i]))
	}

	return books, nil
}

func (repo *bookRepository) ListTitles(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var titles []string
	err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("user_id = ?", userID).
		Pluck("title", &titles).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list book titles")
	}

	return titles, nil
}

func (repo *bookRepository) AddTag(ctx context.Context, bookID, tagID uuid.UUID) error {
	link := &model.BookTagModel{BookID: bookID, TagID: tagID}
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(link).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBookTagExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTagNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to tag book")
	}

	return nil
}

func (repo *bookRepository) RemoveTag(ctx context.Context, bookID, tagID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("book_id = ? AND tag_id = ?", bookID, tagID).
		Delete(&model.BookTagModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to untag book")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBookTagNotFound
	}

	return nil
}

func (repo *bookRepository) ClearCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Update("category_id", gorm.Expr("NULL")).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear book category")
	}

	return nil
}

// escapeLike escapes the LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// --- Mapper Functions ---

func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	book := &entity.Book{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Author:      data.Author,
		ISBN:        data.ISBN,
		Description: data.Description,
		CoverImage:  data.CoverImage,
		TotalPages:  data.TotalPages,
		CurrentPage: data.CurrentPage,
		Status:      entity.ReadingStatus(data.Status),
		Rating:      data.Rating,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		CategoryID:  data.CategoryID,
		Category:    toCategoryDomain(data.Category),
		Tags:        make([]*entity.Tag, 0, len(data.BookTags)),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	for _, bt := range data.BookTags {
		if bt.Tag != nil {
			book.Tags = append(book.Tags, toTagDomain(bt.Tag))
		}
	}
	sort.Slice(book.Tags, func(i, j int) bool { return book.Tags[i].Name < book.Tags[j].Name })

	if data.Quotes != nil {
		book.Quotes = make([]*entity.Quote, 0, len(data.Quotes))
		for i := range data.Quotes {
			book.Quotes = append(book.Quotes, toQuoteDomain(&data.Quotes[i]))
		}
	}

	return book
}

func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Author:      data.Author,
		ISBN:        data.ISBN,
		Description: data.Description,
		CoverImage:  data.CoverImage,
		TotalPages:  data.TotalPages,
		CurrentPage: data.CurrentPage,
		Status:      string(data.Status),
		Rating:      data.Rating,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		CategoryID:  data.CategoryID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
