package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenmeta-proxy/internal/domain/entity"
)

func TestMetrics_Record(t *testing.T) {
	m := NewMetrics("test")

	m.RecordLookup("dexscreener", entity.LookupMiss)
	m.RecordLookup("dexscreener", entity.LookupMiss)
	m.RecordLookup("geckoterminal", entity.LookupHit)
	m.RecordResolution("geckoterminal")
	m.RecordResolution("none")
	m.RecordResponseCacheHit()
	m.RecordHTTPRequest("/api/token-metadata", 200, 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProviderLookups.WithLabelValues("dexscreener", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderLookups.WithLabelValues("geckoterminal", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResponseCacheHits))
	assert.Equal(t, 1, testutil.CollectAndCount(m.HTTPRequestDuration))
}

func TestMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("dup")
		NewMetrics("dup")
	})
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordLookup("dexscreener", entity.LookupFailed)
		m.RecordResolution("none")
		m.RecordHTTPRequest("/health", 200, time.Millisecond)
		m.RecordResponseCacheHit()
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics("")
	m.RecordResolution("dexscreener")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `tokenmeta_resolver_resolutions_total{source="dexscreener"} 1`))
}
