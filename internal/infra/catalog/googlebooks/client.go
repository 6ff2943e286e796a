// Package googlebooks implements the external book catalog on top of the Google Books API.
package googlebooks

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"shelf/config"
	"shelf/internal/domain/entity"
	"shelf/internal/domain/service"
	"shelf/internal/errors"
	"shelf/internal/infra/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
	books "google.golang.org/api/books/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
)

const (
	breakerName = "google-books"

	kindSearch  = "search"
	kindAuthor  = "author"
	kindSubject = "subject"
	kindISBN    = "isbn"

	// Google Books caps maxResults at 40
	maxResultsLimit = 40
)

// Params defines the dependencies of the catalog client
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client is a rate-limited, circuit-broken Google Books client.
type Client struct {
	service      *books.Service
	limiter      *rate.Limiter
	breaker      *gobreaker.CircuitBreaker[*books.Volumes]
	timeout      time.Duration
	langRestrict string
	logger       *slog.Logger
}

var _ service.BookCatalog = (*Client)(nil)

// New builds the catalog client from configuration for fx.
func New(params Params) (service.BookCatalog, error) {
	return NewClient(params.Config.GoogleBooks, nil, params.Logger)
}

// NewClient builds a client. A nil httpClient uses http.DefaultTransport.
func NewClient(cfg *config.GoogleBooksConfig, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{Transport: http.DefaultTransport}
	}
	if cfg.APIKey != "" {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		httpClient = &http.Client{
			Transport: &transport.APIKey{Key: cfg.APIKey, Transport: base},
			Timeout:   httpClient.Timeout,
		}
	}

	svc, err := books.NewService(context.Background(),
		option.WithHTTPClient(httpClient),
		option.WithEndpoint(cfg.BaseURL),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Google Books service")
	}

	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	c := &Client{
		service:      svc,
		limiter:      rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst),
		timeout:      cfg.Timeout,
		langRestrict: cfg.LangRestrict,
		logger:       logger,
	}
	c.breaker = newBreaker(cfg.Breaker, logger)

	return c, nil
}

func newBreaker(cfg config.BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[*books.Volumes] {
	metrics.SetCatalogBreakerState(int(gobreaker.StateClosed))

	return gobreaker.NewCircuitBreaker[*books.Volumes](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		// Client errors say nothing about upstream health.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var apiErr *googleapi.Error
			if errors.As(err, &apiErr) {
				return apiErr.Code >= 400 && apiErr.Code < 500 && apiErr.Code != http.StatusTooManyRequests
			}

			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetCatalogBreakerState(int(to))
			if logger != nil {
				logger.Warn("Catalog circuit breaker state changed",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			}
		},
	})
}

// Search runs a free-text query.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]*entity.CatalogBook, error) {
	return c.list(ctx, kindSearch, strings.TrimSpace(query), maxResults)
}

// SearchByAuthor queries with the inauthor: qualifier.
func (c *Client) SearchByAuthor(ctx context.Context, author string, maxResults int) ([]*entity.CatalogBook, error) {
	return c.list(ctx, kindAuthor, qualified("inauthor", author), maxResults)
}

// SearchBySubject queries with the subject: qualifier.
func (c *Client) SearchBySubject(ctx context.Context, subject string, maxResults int) ([]*entity.CatalogBook, error) {
	return c.list(ctx, kindSubject, qualified("subject", subject), maxResults)
}

// LookupISBN returns the first volume matching the ISBN, or nil when there is none.
// A volume without identifiers keeps the requested ISBN.
func (c *Client) LookupISBN(ctx context.Context, isbn string) (*entity.CatalogBook, error) {
	normalized := NormalizeISBN(isbn)
	if normalized == "" {
		return nil, nil
	}

	results, err := c.list(ctx, kindISBN, "isbn:"+normalized, 1)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	book := results[0]
	if book.ISBN == "" {
		book.ISBN = normalized
	}

	return book, nil
}

func (c *Client) list(ctx context.Context, kind, query string, maxResults int) ([]*entity.CatalogBook, error) {
	if query == "" {
		return []*entity.CatalogBook{}, nil
	}

	start := time.Now()
	volumes, err := c.fetch(ctx, query, clampResults(maxResults))
	if err != nil {
		outcome := "error"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = "rejected"
		}
		metrics.RecordCatalogRequest(kind, outcome, time.Since(start))

		return nil, errors.Wrapf(err, "google books %s lookup %q", kind, query)
	}
	metrics.RecordCatalogRequest(kind, "ok", time.Since(start))

	return toCatalogBooks(volumes), nil
}

func (c *Client) fetch(ctx context.Context, query string, maxResults int) (*books.Volumes, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter")
	}

	return c.breaker.Execute(func() (*books.Volumes, error) {
		call := c.service.Volumes.List(query).
			MaxResults(int64(maxResults)).
			PrintType("books").
			Context(ctx)
		if c.langRestrict != "" {
			call = call.LangRestrict(c.langRestrict)
		}

		return call.Do()
	})
}

func qualified(qualifier, value string) string {
	value = strings.TrimSpace(strings.ReplaceAll(value, `"`, ""))
	if value == "" {
		return ""
	}

	return qualifier + `:"` + value + `"`
}

func clampResults(n int) int {
	switch {
	case n < 1:
		return 1
	case n > maxResultsLimit:
		return maxResultsLimit
	default:
		return n
	}
}
