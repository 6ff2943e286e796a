package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"shelf/internal/domain/entity"
	"shelf/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	rankedTermsLimit     = 3
	queriedTermsLimit    = 2
	resultsPerTerm       = 5
	maxRecommendations   = 20
	authorReasonFormat   = "Because you enjoyed books by %s"
	categoryReasonFormat = "Because you enjoy %s"
)

type seedQuery struct {
	kind   entity.RecommendationType
	term   string
	reason string
}

// Recommend suggests catalog books by the user's most-read authors and categories.
// Titles already in the library are dropped by case-insensitive title match, which
// is a heuristic: different editions slip through and unrelated books sharing a
// title are hidden.
func (srv *searchService) Recommend(ctx context.Context, userID uuid.UUID) ([]*entity.Recommendation, error) {
	completed, err := srv.bookRepo.FindCompleted(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load completed books")
	}

	if len(completed) == 0 {
		return []*entity.Recommendation{}, nil
	}

	seeds := seedQueries(completed)
	results := make([][]*entity.Recommendation, len(seeds))

	group, gctx := errgroup.WithContext(ctx)
	for i, seed := range seeds {
		group.Go(func() error {
			results[i] = srv.lookupSeed(gctx, seed)

			return nil
		})
	}
	_ = group.Wait()

	titles, err := srv.bookRepo.ListTitles(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load library titles")
	}

	recommendations := composeRecommendations(results, titles)
	metrics.RecordRecommendations(len(recommendations))

	srv.log(ctx).Debug("Recommendations composed",
		slog.String("userID", userID.String()),
		slog.Int("seeds", len(seeds)),
		slog.Int("count", len(recommendations)),
	)

	return recommendations, nil
}

// lookupSeed queries the catalog for one seed. A failed lookup contributes nothing.
func (srv *searchService) lookupSeed(ctx context.Context, seed seedQuery) []*entity.Recommendation {
	var (
		books []*entity.CatalogBook
		err   error
	)

	switch seed.kind {
	case entity.RecommendationByAuthor:
		books, err = srv.catalog.SearchByAuthor(ctx, seed.term, resultsPerTerm)
	case entity.RecommendationByCategory:
		books, err = srv.catalog.SearchBySubject(ctx, seed.term, resultsPerTerm)
	}

	if err != nil {
		srv.log(ctx).Warn("Recommendation lookup failed",
			slog.String("type", string(seed.kind)),
			slog.String("term", seed.term),
			slog.Any("error", err),
		)

		return nil
	}

	out := make([]*entity.Recommendation, 0, len(books))
	for _, book := range books {
		if book == nil {
			continue
		}

		out = append(out, &entity.Recommendation{
			CatalogBook:          *book,
			RecommendationType:   seed.kind,
			RecommendationReason: seed.reason,
		})
	}

	return out
}

// seedQueries derives the catalog lookups from completed books: the top authors
// first, then the top categories.
func seedQueries(completed []*entity.Book) []seedQuery {
	authorCounts := make(map[string]int)
	categoryCounts := make(map[string]int)

	for _, book := range completed {
		if book.Author != "" {
			authorCounts[book.Author]++
		}

		if book.Category != nil && book.Category.Name != "" {
			categoryCounts[book.Category.Name]++
		}
	}

	var seeds []seedQuery
	for _, author := range queried(topTerms(authorCounts, rankedTermsLimit)) {
		seeds = append(seeds, seedQuery{
			kind:   entity.RecommendationByAuthor,
			term:   author,
			reason: fmt.Sprintf(authorReasonFormat, author),
		})
	}

	for _, category := range queried(topTerms(categoryCounts, rankedTermsLimit)) {
		seeds = append(seeds, seedQuery{
			kind:   entity.RecommendationByCategory,
			term:   category,
			reason: fmt.Sprintf(categoryReasonFormat, category),
		})
	}

	return seeds
}

// topTerms ranks terms by count descending, then name ascending.
func topTerms(counts map[string]int, limit int) []string {
	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}

	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}

		return terms[i] < terms[j]
	})

	if len(terms) > limit {
		terms = terms[:limit]
	}

	return terms
}

func queried(ranked []string) []string {
	return ranked[:min(queriedTermsLimit, len(ranked))]
}

// composeRecommendations concatenates per-seed results in order, drops owned titles
// and volumes without an external id, dedupes by external id and caps the list.
func composeRecommendations(results [][]*entity.Recommendation, ownedTitles []string) []*entity.Recommendation {
	owned := make(map[string]struct{}, len(ownedTitles))
	for _, title := range ownedTitles {
		owned[strings.ToLower(title)] = struct{}{}
	}

	seen := make(map[string]struct{})
	out := make([]*entity.Recommendation, 0, maxRecommendations)

	for _, batch := range results {
		for _, rec := range batch {
			if len(out) == maxRecommendations {
				return out
			}

			if _, ok := owned[strings.ToLower(rec.Title)]; ok {
				continue
			}

			if rec.ExternalID == "" {
				continue
			}
			if _, ok := seen[rec.ExternalID]; ok {
				continue
			}
			seen[rec.ExternalID] = struct{}{}

			out = append(out, rec)
		}
	}

	return out
}
