package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"
	"shelf/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const (
	topAuthorsLimit    = 5
	readingSampleLimit = 10
	completionWindow   = 12 // months
)

// statsService is the aggregation engine behind GET /stats.
type statsService struct {
	statsRepo repository.StatsRepository
	logger    *slog.Logger
	now       func() time.Time
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	StatsRepo repository.StatsRepository
	Logger    *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		statsRepo: params.StatsRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// Snapshot recomputes every statistic for the user. The underlying queries are
// read-only and independent, so they run concurrently.
func (srv *statsService) Snapshot(ctx context.Context, userID uuid.UUID) (*entity.ReadingStats, error) {
	var (
		byStatus    map[entity.ReadingStatus]int
		quotes      int
		categories  []entity.CategoryCount
		completions []time.Time
		avgPages    float64
		authors     []entity.AuthorCount
		samples     []entity.ReadingSample
	)

	since := srv.now().UTC().AddDate(0, -completionWindow, 0)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		byStatus, err = srv.statsRepo.CountBooksByStatus(gctx, userID)
		return errors.Wrap(err, "count books by status")
	})
	group.Go(func() (err error) {
		quotes, err = srv.statsRepo.CountQuotes(gctx, userID)
		return errors.Wrap(err, "count quotes")
	})
	group.Go(func() (err error) {
		categories, err = srv.statsRepo.CategoryBookCounts(gctx, userID)
		return errors.Wrap(err, "count books per category")
	})
	group.Go(func() (err error) {
		completions, err = srv.statsRepo.CompletionDatesSince(gctx, userID, since)
		return errors.Wrap(err, "load completion dates")
	})
	group.Go(func() (err error) {
		avgPages, err = srv.statsRepo.AveragePages(gctx, userID)
		return errors.Wrap(err, "average pages")
	})
	group.Go(func() (err error) {
		authors, err = srv.statsRepo.TopAuthors(gctx, userID, topAuthorsLimit)
		return errors.Wrap(err, "top authors")
	})
	group.Go(func() (err error) {
		samples, err = srv.statsRepo.RecentReadingSamples(gctx, userID, readingSampleLimit)
		return errors.Wrap(err, "reading samples")
	})

	if err := group.Wait(); err != nil {
		srv.log(ctx).Error("Failed to compute reading stats",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	overview := entity.StatsOverview{
		CompletedBooks:   byStatus[entity.StatusCompleted],
		CurrentlyReading: byStatus[entity.StatusReading],
		ToReadBooks:      byStatus[entity.StatusToRead],
		AbandonedBooks:   byStatus[entity.StatusAbandoned],
		TotalQuotes:      quotes,
		AvgPages:         int(math.Round(avgPages)),
		AvgReadingSpeed:  averageReadingSpeed(samples),
	}
	for _, count := range byStatus {
		overview.TotalBooks += count
	}

	if categories == nil {
		categories = []entity.CategoryCount{}
	}
	if authors == nil {
		authors = []entity.AuthorCount{}
	}

	return &entity.ReadingStats{
		Overview:        overview,
		BooksByCategory: categories,
		MonthlyStats:    bucketByMonth(completions),
		TopAuthors:      authors,
	}, nil
}

// bucketByMonth groups completion dates by (year, month) in UTC, oldest first.
// Months without completions are omitted.
func bucketByMonth(dates []time.Time) []entity.MonthlyCount {
	type key struct{ year, month int }

	counts := make(map[key]int, len(dates))
	for _, d := range dates {
		u := d.UTC()
		counts[key{u.Year(), int(u.Month())}]++
	}

	out := make([]entity.MonthlyCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, entity.MonthlyCount{Year: k.year, Month: k.month, Count: c})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}

		return out[i].Month < out[j].Month
	})

	return out
}

// averageReadingSpeed returns pages per day over the samples, rounded. Each sample
// lasts ceil(end-start) whole days; a zero total duration yields 0.
func averageReadingSpeed(samples []entity.ReadingSample) int {
	var pages, days int

	for _, s := range samples {
		d := int(math.Ceil(s.EndDate.Sub(s.StartDate).Hours() / 24))
		if d < 0 {
			d = 0
		}

		pages += s.TotalPages
		days += d
	}

	if days == 0 {
		return 0
	}

	return int(math.Round(float64(pages) / float64(days)))
}
