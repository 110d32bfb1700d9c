package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatherFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric %s not found", name)
	return nil
}

func TestCollector_CacheCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordCacheHit()
	c.RecordCacheHit()
	c.RecordCacheMiss()

	assert.Equal(t, 2.0, testutil.ToFloat64(c.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.cacheMisses))
}

func TestCollector_RecordUpstreamCall(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordUpstreamCall(OperationReviews, OutcomeSuccess, 300*time.Millisecond)
	c.RecordUpstreamCall(OperationReviews, OutcomeFailure, time.Second)
	c.RecordUpstreamCall(OperationSearch, OutcomeSuccess, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.upstreamCalls.WithLabelValues(OperationReviews, OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.upstreamCalls.WithLabelValues(OperationSearch, OutcomeSuccess)))

	latency := gatherFamily(t, reg, "review_fetcher_upstream_latency_seconds")
	require.Len(t, latency.GetMetric(), 2)
	for _, m := range latency.GetMetric() {
		if m.GetLabel()[0].GetValue() == OperationReviews {
			assert.Equal(t, uint64(2), m.GetHistogram().GetSampleCount())
		}
	}
}

func TestCollector_ReviewsAndExports(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordReviewsFetched(120)
	c.RecordExport(120)

	assert.Equal(t, 120.0, testutil.ToFloat64(c.reviewsFetched))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.exports))
	assert.Equal(t, uint64(1), gatherFamily(t, reg, "review_fetcher_export_rows").GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordCacheMiss()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "review_fetcher_search_cache_misses_total 1")
}

func TestNop_DoesNotPanic(t *testing.T) {
	n := Nop()
	assert.NotPanics(t, func() {
		n.RecordCacheHit()
		n.RecordCacheMiss()
		n.RecordUpstreamCall(OperationSearch, OutcomeFailure, time.Second)
		n.RecordReviewsFetched(3)
		n.RecordExport(3)
	})
}
