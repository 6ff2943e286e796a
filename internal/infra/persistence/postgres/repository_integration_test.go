//go:build integration

package postgres

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("shelf"),
		tcpostgres.WithUsername("shelf"),
		tcpostgres.WithPassword("shelf"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(dsn, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Name: "Reader", PasswordHash: "hash"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestRepositories_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	books := NewBookRepository(db)
	categories := NewCategoryRepository(db)
	tags := NewTagRepository(db)
	stats := NewStatsRepository(db)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		seedUser(t, db, "dup@example.com")

		err := NewUserRepository(db).Create(ctx, &entity.User{Email: "dup@example.com", Name: "Other", PasswordHash: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("deleting a category keeps its books", func(t *testing.T) {
		user := seedUser(t, db, "category@example.com")

		category := &entity.Category{UserID: user.ID, Name: "Fiction", Color: entity.DefaultCategoryColor}
		require.NoError(t, categories.Create(ctx, category))

		book := &entity.Book{UserID: user.ID, Title: "Dune", Author: "Frank Herbert", Status: entity.StatusToRead, CategoryID: &category.ID}
		require.NoError(t, books.Create(ctx, book))

		require.NoError(t, books.ClearCategory(ctx, user.ID, category.ID))
		require.NoError(t, categories.Delete(ctx, user.ID, category.ID))

		got, err := books.FindByID(ctx, user.ID, book.ID)
		require.NoError(t, err)
		assert.Nil(t, got.CategoryID)
		assert.Nil(t, got.Category)
	})

	t.Run("category names are unique per user", func(t *testing.T) {
		alice := seedUser(t, db, "alice@example.com")
		bob := seedUser(t, db, "bob@example.com")

		require.NoError(t, categories.Create(ctx, &entity.Category{UserID: alice.ID, Name: "Poetry", Color: "#000000"}))
		require.NoError(t, categories.Create(ctx, &entity.Category{UserID: bob.ID, Name: "Poetry", Color: "#000000"}))

		err := categories.Create(ctx, &entity.Category{UserID: alice.ID, Name: "Poetry", Color: "#FFFFFF"})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)
	})

	t.Run("tagging twice is rejected and deleting the tag detaches it", func(t *testing.T) {
		user := seedUser(t, db, "tags@example.com")

		book := &entity.Book{UserID: user.ID, Title: "Hyperion", Author: "Dan Simmons", Status: entity.StatusReading}
		require.NoError(t, books.Create(ctx, book))

		tag := &entity.Tag{UserID: user.ID, Name: "space"}
		require.NoError(t, tags.Create(ctx, tag))

		require.NoError(t, books.AddTag(ctx, book.ID, tag.ID))
		assert.ErrorIs(t, books.AddTag(ctx, book.ID, tag.ID), domainerrors.ErrBookTagExists)

		got, err := books.FindByID(ctx, user.ID, book.ID)
		require.NoError(t, err)
		require.Len(t, got.Tags, 1)
		assert.Equal(t, "space", got.Tags[0].Name)

		require.NoError(t, tags.DetachAll(ctx, tag.ID))
		require.NoError(t, tags.Delete(ctx, user.ID, tag.ID))

		var links int64
		require.NoError(t, db.Model(&model.BookTagModel{}).Where("book_id = ?", book.ID).Count(&links).Error)
		assert.Zero(t, links)
	})

	t.Run("books are scoped to their owner", func(t *testing.T) {
		owner := seedUser(t, db, "owner@example.com")
		stranger := seedUser(t, db, "stranger@example.com")

		book := &entity.Book{UserID: owner.ID, Title: "Solaris", Author: "Stanislaw Lem", Status: entity.StatusToRead}
		require.NoError(t, books.Create(ctx, book))

		_, err := books.FindByID(ctx, stranger.ID, book.ID)
		assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)
	})

	t.Run("stats count by status", func(t *testing.T) {
		user := seedUser(t, db, "stats@example.com")

		pages := 300
		end := time.Now().UTC()
		for _, b := range []*entity.Book{
			{UserID: user.ID, Title: "A", Author: "X", Status: entity.StatusCompleted, TotalPages: &pages, EndDate: &end},
			{UserID: user.ID, Title: "B", Author: "X", Status: entity.StatusCompleted, TotalPages: &pages, EndDate: &end},
			{UserID: user.ID, Title: "C", Author: "Y", Status: entity.StatusReading},
		} {
			require.NoError(t, books.Create(ctx, b))
		}

		counts, err := stats.CountBooksByStatus(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, counts[entity.StatusCompleted])
		assert.Equal(t, 1, counts[entity.StatusReading])

		authors, err := stats.TopAuthors(ctx, user.ID, 5)
		require.NoError(t, err)
		require.NotEmpty(t, authors)
		assert.Equal(t, "X", authors[0].Name)
		assert.Equal(t, 2, authors[0].Count)
	})

	t.Run("category counts include empty categories", func(t *testing.T) {
		user := seedUser(t, db, "shelves@example.com")

		fiction := &entity.Category{UserID: user.ID, Name: "Fiction", Color: "#10B981"}
		empty := &entity.Category{UserID: user.ID, Name: "Empty", Color: "#3B82F6"}
		require.NoError(t, categories.Create(ctx, fiction))
		require.NoError(t, categories.Create(ctx, empty))

		for _, title := range []string{"Emma", "Persuasion"} {
			require.NoError(t, books.Create(ctx, &entity.Book{UserID: user.ID, Title: title, Author: "Jane Austen", Status: entity.StatusToRead, CategoryID: &fiction.ID}))
		}
		require.NoError(t, books.Create(ctx, &entity.Book{UserID: user.ID, Title: "Loose", Author: "Nobody", Status: entity.StatusToRead}))

		counts, err := stats.CategoryBookCounts(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, counts, 2)
		assert.Equal(t, "Empty", counts[0].Name)
		assert.Zero(t, counts[0].Count)
		assert.Equal(t, "#3B82F6", counts[0].Color)
		assert.Equal(t, "Fiction", counts[1].Name)
		assert.Equal(t, 2, counts[1].Count)
	})

	t.Run("average pages ignores books without a page count", func(t *testing.T) {
		user := seedUser(t, db, "pages@example.com")

		short, long := 200, 400
		for _, b := range []*entity.Book{
			{UserID: user.ID, Title: "Short", Author: "A", Status: entity.StatusToRead, TotalPages: &short},
			{UserID: user.ID, Title: "Long", Author: "A", Status: entity.StatusToRead, TotalPages: &long},
			{UserID: user.ID, Title: "Unknown", Author: "A", Status: entity.StatusToRead},
		} {
			require.NoError(t, books.Create(ctx, b))
		}

		avg, err := stats.AveragePages(ctx, user.ID)
		require.NoError(t, err)
		assert.InDelta(t, 300.0, avg, 0.001)

		none := seedUser(t, db, "nopages@example.com")
		require.NoError(t, books.Create(ctx, &entity.Book{UserID: none.ID, Title: "Blank", Author: "B", Status: entity.StatusToRead}))

		avg, err = stats.AveragePages(ctx, none.ID)
		require.NoError(t, err)
		assert.Zero(t, avg)
	})

	t.Run("reading samples are recent qualifying completions", func(t *testing.T) {
		user := seedUser(t, db, "speed@example.com")

		pages := 250
		base := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
		for i := range 12 {
			start := base.AddDate(0, 0, i*10)
			end := start.AddDate(0, 0, 5)
			require.NoError(t, books.Create(ctx, &entity.Book{
				UserID: user.ID, Title: fmt.Sprintf("Book %d", i), Author: "Prolific", Status: entity.StatusCompleted,
				TotalPages: &pages, StartDate: &start, EndDate: &end,
			}))
		}

		// Newer than every qualifying book, but each one misses a requirement.
		lateStart := base.AddDate(1, 0, 0)
		lateEnd := lateStart.AddDate(0, 0, 3)
		for _, b := range []*entity.Book{
			{UserID: user.ID, Title: "No pages", Author: "Z", Status: entity.StatusCompleted, StartDate: &lateStart, EndDate: &lateEnd},
			{UserID: user.ID, Title: "No start", Author: "Z", Status: entity.StatusCompleted, TotalPages: &pages, EndDate: &lateEnd},
			{UserID: user.ID, Title: "Abandoned", Author: "Z", Status: entity.StatusAbandoned, TotalPages: &pages, StartDate: &lateStart, EndDate: &lateEnd},
		} {
			require.NoError(t, books.Create(ctx, b))
		}

		samples, err := stats.RecentReadingSamples(ctx, user.ID, 10)
		require.NoError(t, err)
		require.Len(t, samples, 10)

		assert.True(t, samples[0].EndDate.Equal(base.AddDate(0, 0, 11*10+5)))
		assert.True(t, samples[9].EndDate.Equal(base.AddDate(0, 0, 2*10+5)))
		for i := 1; i < len(samples); i++ {
			assert.True(t, samples[i-1].EndDate.After(samples[i].EndDate))
		}
		for _, sample := range samples {
			assert.Equal(t, 250, sample.TotalPages)
		}
	})

	t.Run("completion dates stay inside the window", func(t *testing.T) {
		user := seedUser(t, db, "window@example.com")

		now := time.Now().UTC().Truncate(time.Second)
		since := now.AddDate(0, -12, 0)
		old := now.AddDate(0, -13, 0)
		recent := now.AddDate(0, -1, 0)
		lastYear := now.AddDate(0, -11, 0)
		for _, b := range []*entity.Book{
			{UserID: user.ID, Title: "Old", Author: "W", Status: entity.StatusCompleted, EndDate: &old},
			{UserID: user.ID, Title: "Recent", Author: "W", Status: entity.StatusCompleted, EndDate: &recent},
			{UserID: user.ID, Title: "Earlier", Author: "W", Status: entity.StatusCompleted, EndDate: &lastYear},
			{UserID: user.ID, Title: "Dropped", Author: "W", Status: entity.StatusAbandoned, EndDate: &recent},
		} {
			require.NoError(t, books.Create(ctx, b))
		}

		dates, err := stats.CompletionDatesSince(ctx, user.ID, since)
		require.NoError(t, err)
		require.Len(t, dates, 2)
		assert.True(t, dates[0].Equal(lastYear))
		assert.True(t, dates[1].Equal(recent))
	})

	t.Run("deleting a user cascades to owned rows", func(t *testing.T) {
		user := seedUser(t, db, "leaving@example.com")

		book := &entity.Book{UserID: user.ID, Title: "Ubik", Author: "Philip K. Dick", Status: entity.StatusToRead}
		require.NoError(t, books.Create(ctx, book))
		require.NoError(t, tags.Create(ctx, &entity.Tag{UserID: user.ID, Name: "weird"}))

		require.NoError(t, NewUserRepository(db).Delete(ctx, user.ID))

		_, err := books.FindByID(ctx, user.ID, book.ID)
		assert.ErrorIs(t, err, domainerrors.ErrBookNotFound)

		remaining, err := tags.FindByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("transaction rolls back on error", func(t *testing.T) {
		user := seedUser(t, db, "tx@example.com")
		txManager := NewTransactionManager(db)

		err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.NewTagRepository().Create(ctx, &entity.Tag{UserID: user.ID, Name: "ghost"}); err != nil {
				return err
			}

			return domainerrors.ErrValidationFailed
		})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		_, err = tags.FindByName(ctx, user.ID, "ghost")
		assert.ErrorIs(t, err, domainerrors.ErrTagNotFound)
	})
}
