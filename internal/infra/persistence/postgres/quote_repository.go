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

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository is the constructor for quoteRepository.
func NewQuoteRepository(db *gorm.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

func (repo *quoteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Quote, error) {
	var rows []model.QuoteModel
	err := repo.db.WithContext(ctx).
		Preload("Book", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "author", "cover_image")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quotes")
	}

	return toQuoteDomainList(rows), nil
}

func (repo *quoteRepository) FindByBook(ctx context.Context, userID, bookID uuid.UUID) ([]*entity.Quote, error) {
	var rows []model.QuoteModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Order("page ASC NULLS LAST, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list book quotes")
	}

	return toQuoteDomainList(rows), nil
}

func (repo *quoteRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Quote, error) {
	var quoteM model.QuoteModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&quoteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find quote")
	}

	return toQuoteDomain(&quoteM), nil
}

func (repo *quoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	if quote.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate quote id")
		}
		quote.ID = id
	}

	quoteM := fromQuoteDomain(quote)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(quoteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create quote")
	}

	quote.CreatedAt = quoteM.CreatedAt
	quote.UpdatedAt = quoteM.UpdatedAt

	return nil
}

func (repo *quoteRepository) Update(ctx context.Context, quote *entity.Quote) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuoteModel{}).
		Where("id = ? AND user_id = ?", quote.ID, quote.UserID).
		Updates(map[string]any{
			"text": quote.Text,
			"page": quote.Page,
			"note": quote.Note,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update quote")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrQuoteNotFound
	}

	return nil
}

func (repo *quoteRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.QuoteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete quote")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrQuoteNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toQuoteDomainList(rows []model.QuoteModel) []*entity.Quote {
	quotes := make([]*entity.Quote, 0, len(rows))
	for i := range rows {
		quotes = append(quotes, toQuoteDomain(&rows[i]))
	}

	return quotes
}

func toQuoteDomain(data *model.QuoteModel) *entity.Quote {
	if data == nil {
		return nil
	}

	quote := &entity.Quote{
		ID:        data.ID,
		UserID:    data.UserID,
		BookID:    data.BookID,
		Text:      data.Text,
		Page:      data.Page,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Book != nil {
		quote.Book = &entity.BookSummary{
			ID:         data.Book.ID,
			Title:      data.Book.Title,
			Author:     data.Book.Author,
			CoverImage: data.Book.CoverImage,
		}
	}

	return quote
}

func fromQuoteDomain(data *entity.Quote) *model.QuoteModel {
	if data == nil {
		return nil
	}

	return &model.QuoteModel{
		ID:        data.ID,
		UserID:    data.UserID,
		BookID:    data.BookID,
		Text:      data.Text,
		Page:      data.Page,
		Note:      data.Note,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
