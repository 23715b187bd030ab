package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m := New()

	m.DegradedRead("ingredient", "remote")
	m.DegradedRead("ingredient", "remote")
	m.RemoteCall(http.MethodGet, "/api/ingredients", http.StatusOK, 20*time.Millisecond)
	m.RemoteCall(http.MethodGet, "/api/ingredients", 0, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.degradedReads.WithLabelValues("ingredient", "remote")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.remoteRequests.WithLabelValues("GET", "/api/ingredients", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.remoteRequests.WithLabelValues("GET", "/api/ingredients", "error")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "catering_federation_degraded_reads_total"))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.DegradedRead("user", "local")
		m.RemoteCall(http.MethodPost, "/api/users", http.StatusCreated, time.Millisecond)
	})
	assert.Nil(t, m.Registry())
}
