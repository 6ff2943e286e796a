package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"shelf/config"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const volumesFixture = `{
  "kind": "books#volumes",
  "totalItems": 2,
  "items": [
    {
      "id": "vol-1",
      "volumeInfo": {
        "title": "The Left Hand of Darkness",
        "authors": ["Ursula K. Le Guin"],
        "description": "Winter.",
        "industryIdentifiers": [
          {"type": "ISBN_10", "identifier": "0441478123"},
          {"type": "ISBN_13", "identifier": "9780441478125"}
        ],
        "imageLinks": {"thumbnail": "http://books.google.com/cover.jpg"},
        "pageCount": 304,
        "categories": ["Fiction"],
        "averageRating": 4.5,
        "ratingsCount": 120,
        "publisher": "Ace",
        "publishedDate": "1969",
        "language": "en"
      }
    },
    {
      "id": "vol-2",
      "volumeInfo": {}
    }
  ]
}`

type fakeCatalog struct {
	server   *httptest.Server
	hits     atomic.Int32
	lastQ    atomic.Value
	status   atomic.Int32
	response string
}

func newFakeCatalog(t *testing.T, response string) *fakeCatalog {
	t.Helper()

	f := &fakeCatalog{response: response}
	f.status.Store(http.StatusOK)
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		f.lastQ.Store(r.URL.Query().Get("q"))

		status := int(f.status.Load())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(f.response))
		} else {
			_, _ = w.Write([]byte(`{"error":{"code":500,"message":"backend error"}}`))
		}
	}))
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeCatalog) query(t *testing.T) string {
	t.Helper()

	q, _ := f.lastQ.Load().(string)

	return q
}

func newTestClient(t *testing.T, baseURL string, failures uint32) *Client {
	t.Helper()

	client, err := NewClient(&config.GoogleBooksConfig{
		BaseURL:           baseURL + "/",
		Timeout:           2 * time.Second,
		RequestsPerSecond: 1000,
		Burst:             100,
		Breaker: config.BreakerConfig{
			ConsecutiveFailures: failures,
			OpenTimeout:         time.Minute,
			Interval:            time.Minute,
		},
	}, &http.Client{Transport: http.DefaultTransport}, nil)
	require.NoError(t, err)

	return client
}

func TestClient_SearchNormalizesVolumes(t *testing.T) {
	fake := newFakeCatalog(t, volumesFixture)
	client := newTestClient(t, fake.server.URL, 5)

	results, err := client.Search(context.Background(), "le guin", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, "vol-1", first.ExternalID)
	assert.Equal(t, "The Left Hand of Darkness", first.Title)
	assert.Equal(t, "Ursula K. Le Guin", first.Author)
	assert.Equal(t, "9780441478125", first.ISBN)
	assert.Equal(t, "https://books.google.com/cover.jpg", first.CoverImage)
	require.NotNil(t, first.PageCount)
	assert.Equal(t, 304, *first.PageCount)
	require.NotNil(t, first.AverageRating)
	assert.InDelta(t, 4.5, *first.AverageRating, 0.001)
	assert.Equal(t, 120, first.RatingsCount)
	assert.Equal(t, []string{"Fiction"}, first.Categories)

	sparse := results[1]
	assert.Equal(t, "Untitled", sparse.Title)
	assert.Equal(t, "Unknown", sparse.Author)
	assert.Equal(t, "", sparse.Description)
	assert.Equal(t, "", sparse.ISBN)
	assert.Nil(t, sparse.PageCount)
	assert.Nil(t, sparse.AverageRating)
	assert.Equal(t, 0, sparse.RatingsCount)
	assert.NotNil(t, sparse.Categories)
	assert.Empty(t, sparse.Categories)

	assert.Equal(t, "le guin", fake.query(t))
}

func TestClient_QualifiedQueries(t *testing.T) {
	fake := newFakeCatalog(t, `{"items":[]}`)
	client := newTestClient(t, fake.server.URL, 5)

	_, err := client.SearchByAuthor(context.Background(), "Octavia Butler", 5)
	require.NoError(t, err)
	assert.Equal(t, `inauthor:"Octavia Butler"`, fake.query(t))

	_, err = client.SearchBySubject(context.Background(), "Science Fiction", 5)
	require.NoError(t, err)
	assert.Equal(t, `subject:"Science Fiction"`, fake.query(t))
}

func TestClient_EmptyQueryDoesNotCallUpstream(t *testing.T) {
	fake := newFakeCatalog(t, volumesFixture)
	client := newTestClient(t, fake.server.URL, 5)

	results, err := client.Search(context.Background(), "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, int32(0), fake.hits.Load())
}

func TestClient_LookupISBN(t *testing.T) {
	t.Run("returns first match", func(t *testing.T) {
		fake := newFakeCatalog(t, volumesFixture)
		client := newTestClient(t, fake.server.URL, 5)

		book, err := client.LookupISBN(context.Background(), "978-0-441-47812-5")
		require.NoError(t, err)
		require.NotNil(t, book)
		assert.Equal(t, "vol-1", book.ExternalID)
		assert.Equal(t, "isbn:9780441478125", fake.query(t))
	})

	t.Run("falls back to requested isbn", func(t *testing.T) {
		fake := newFakeCatalog(t, `{"items":[{"id":"bare","volumeInfo":{"title":"Bare"}}]}`)
		client := newTestClient(t, fake.server.URL, 5)

		book, err := client.LookupISBN(context.Background(), "0441478123")
		require.NoError(t, err)
		require.NotNil(t, book)
		assert.Equal(t, "0441478123", book.ISBN)
	})

	t.Run("no items yields nil", func(t *testing.T) {
		fake := newFakeCatalog(t, `{"totalItems":0}`)
		client := newTestClient(t, fake.server.URL, 5)

		book, err := client.LookupISBN(context.Background(), "0000000000")
		require.NoError(t, err)
		assert.Nil(t, book)
	})
}

func TestClient_UpstreamFailureOpensBreaker(t *testing.T) {
	fake := newFakeCatalog(t, volumesFixture)
	fake.status.Store(http.StatusInternalServerError)
	client := newTestClient(t, fake.server.URL, 2)

	for range 2 {
		_, err := client.Search(context.Background(), "dune", 5)
		require.Error(t, err)
	}
	hits := fake.hits.Load()
	assert.Equal(t, gobreaker.StateOpen, client.breaker.State())

	_, err := client.Search(context.Background(), "dune", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, hits, fake.hits.Load(), "open breaker must not reach upstream")
}

func TestClient_TimeoutBoundsSlowUpstream(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(slow.Close)

	client, err := NewClient(&config.GoogleBooksConfig{
		BaseURL:           slow.URL + "/",
		Timeout:           50 * time.Millisecond,
		RequestsPerSecond: 100,
		Burst:             1,
		Breaker:           config.BreakerConfig{ConsecutiveFailures: 5, OpenTimeout: time.Minute},
	}, nil, nil)
	require.NoError(t, err)

	start := time.Now()
	_, err = client.Search(context.Background(), "slow", 5)
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}
