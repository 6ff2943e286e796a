package postgres

import (
	"context"
	"time"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"
	"shelf/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository is the constructor for statsRepository.
func NewStatsRepository(db *gorm.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (repo *statsRepository) books(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.BookModel{}).Where("user_id = ?", userID)
}

func (repo *statsRepository) CountBooksByStatus(ctx context.Context, userID uuid.UUID) (map[entity.ReadingStatus]int, error) {
	var rows []struct {
		Status    string
		BookCount int
	}
	err := repo.books(ctx, userID).
		Select("status, COUNT(*) AS book_count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count books by status")
	}

	counts := make(map[entity.ReadingStatus]int, len(rows))
	for _, row := range rows {
		counts[entity.ReadingStatus(row.Status)] = row.BookCount
	}

	return counts, nil
}

func (repo *statsRepository) CountQuotes(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.QuoteModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count quotes")
	}

	return int(count), nil
}

func (repo *statsRepository) CategoryBookCounts(ctx context.Context, userID uuid.UUID) ([]entity.CategoryCount, error) {
	var rows []struct {
		ID        uuid.UUID
		Name      string
		Color     string
		BookCount int
	}
	err := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Select("categories.id, categories.name, categories.color, COUNT(books.id) AS book_count").
		Joins("LEFT JOIN books ON books.category_id = categories.id").
		Where("categories.user_id = ?", userID).
		Group("categories.id").
		Order("categories.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count books by category")
	}

	counts := make([]entity.CategoryCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, entity.CategoryCount{
			ID:    row.ID,
			Name:  row.Name,
			Count: row.BookCount,
			Color: row.Color,
		})
	}

	return counts, nil
}

func (repo *statsRepository) CompletionDatesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := repo.books(ctx, userID).
		Where("status = ? AND end_date >= ?", string(entity.StatusCompleted), since).
		Order("end_date ASC").
		Pluck("end_date", &dates).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completion dates")
	}

	return dates, nil
}

func (repo *statsRepository) AveragePages(ctx context.Context, userID uuid.UUID) (float64, error) {
	var avg float64
	err := repo.books(ctx, userID).
		Where("total_pages IS NOT NULL").
		Select("COALESCE(AVG(total_pages), 0)::float8").
		Scan(&avg).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to average page counts")
	}

	return avg, nil
}

func (repo *statsRepository) TopAuthors(ctx context.Context, userID uuid.UUID, limit int) ([]entity.AuthorCount, error) {
	var rows []struct {
		Author    string
		BookCount int
	}
	err := repo.books(ctx, userID).
		Select("author, COUNT(*) AS book_count").
		Where("status = ?", string(entity.StatusCompleted)).
		Group("author").
		Order("book_count DESC, author ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank authors")
	}

	authors := make([]entity.AuthorCount, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, entity.AuthorCount{Name: row.Author, Count: row.BookCount})
	}

	return authors, nil
}

func (repo *statsRepository) RecentReadingSamples(ctx context.Context, userID uuid.UUID, limit int) ([]entity.ReadingSample, error) {
	var rows []struct {
		TotalPages int
		StartDate  time.Time
		EndDate    time.Time
	}
	err := repo.books(ctx, userID).
		Select("total_pages, start_date, end_date").
		Where("status = ?", string(entity.StatusCompleted)).
		Where("start_date IS NOT NULL AND end_date IS NOT NULL AND total_pages IS NOT NULL").
		Order("end_date DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reading samples")
	}

	samples := make([]entity.ReadingSample, 0, len(rows))
	for _, row := range rows {
		samples = append(samples, entity.ReadingSample{
			TotalPages: row.TotalPages,
			StartDate:  row.StartDate,
			EndDate:    row.EndDate,
		})
	}

	return samples, nil
}
