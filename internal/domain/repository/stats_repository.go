package repository

import (
	"context"
	"time"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// StatsRepository runs the read-only aggregate queries behind the reading statistics.
// The methods are independent and safe to call concurrently.
type StatsRepository interface {
	// CountBooksByStatus returns the number of books per status. Missing statuses have no entry.
	CountBooksByStatus(ctx context.Context, userID uuid.UUID) (map[entity.ReadingStatus]int, error)

	CountQuotes(ctx context.Context, userID uuid.UUID) (int, error)

	// CategoryBookCounts returns every category of the user, including empty ones, ordered by name.
	CategoryBookCounts(ctx context.Context, userID uuid.UUID) ([]entity.CategoryCount, error)

	// CompletionDatesSince returns the end dates of COMPLETED books finished at or after since.
	CompletionDatesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)

	// AveragePages averages total pages over books that have a page count, 0 when none do.
	AveragePages(ctx context.Context, userID uuid.UUID) (float64, error)

	// TopAuthors ranks authors by completed-book count, ties broken by name ascending.
	TopAuthors(ctx context.Context, userID uuid.UUID, limit int) ([]entity.AuthorCount, error)

	// RecentReadingSamples returns the most recently completed books that have
	// both dates and a page count, newest end date first.
	RecentReadingSamples(ctx context.Context, userID uuid.UUID, limit int) ([]entity.ReadingSample, error)
}

// HealthChecker probes datastore connectivity.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
