package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveStorefront(t *testing.T) {
	r := NewRecorder("storefront_offers")

	r.ObserveStorefront("live", true, 4, 3*time.Millisecond)
	r.ObserveStorefront("live", true, 2, time.Millisecond)
	r.ObserveStorefront("live", false, 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.evaluations.WithLabelValues("live", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.evaluations.WithLabelValues("live", "false")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.generatedOffers))
}

func TestRecorder_CatalogCounters(t *testing.T) {
	r := NewRecorder("storefront_offers")

	r.AddDanglingReferences(3)
	r.ObserveCatalogRefresh(nil)
	r.ObserveCatalogRefresh(errors.New("boom"))
	r.ObserveCatalogRefresh(nil)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.danglingReferences))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.catalogRefreshes.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.catalogRefreshes.WithLabelValues("failure")))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder("storefront_offers")
	r.ObserveCatalogRefresh(nil)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `storefront_offers_catalog_refreshes_total{result="success"} 1`)
}
