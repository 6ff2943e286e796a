package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/books", "200"))

	RecordHTTPRequest("GET", "/books", 200, 15*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/books", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordCatalogRequest(t *testing.T) {
	before := testutil.ToFloat64(CatalogRequestsTotal.WithLabelValues("author", "error"))

	RecordCatalogRequest("author", "error", time.Second)

	assert.Equal(t, before+1, testutil.ToFloat64(CatalogRequestsTotal.WithLabelValues("author", "error")))
}

func TestSetCatalogBreakerState(t *testing.T) {
	SetCatalogBreakerState(2)
	assert.Equal(t, float64(2), testutil.ToFloat64(CatalogBreakerState))

	SetCatalogBreakerState(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(CatalogBreakerState))
}

func TestRecordDBPool(t *testing.T) {
	before := testutil.ToFloat64(DBWaitCount)

	RecordDBPool(7, 3)
	RecordDBPool(5, 0)

	assert.Equal(t, float64(5), testutil.ToFloat64(DBOpenConnections))
	assert.Equal(t, before+3, testutil.ToFloat64(DBWaitCount))
}

func TestRecordDBQuery(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("insert"))

	RecordDBQuery("insert", 3*time.Millisecond, false)
	assert.Equal(t, before, testutil.ToFloat64(DBQueryErrors.WithLabelValues("insert")))

	RecordDBQuery("insert", 3*time.Millisecond, true)
	assert.Equal(t, before+1, testutil.ToFloat64(DBQueryErrors.WithLabelValues("insert")))
}
