package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveSelection(t *testing.T) {
	m := New("trivia")

	m.ObserveSelection(OutcomeQuestion)
	m.ObserveSelection(OutcomeQuestion)
	m.ObserveSelection(OutcomeExhausted)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.selections.WithLabelValues(OutcomeQuestion)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.selections.WithLabelValues(OutcomeExhausted)))
}

func TestMetrics_ObserveRequestAndCache(t *testing.T) {
	m := New("trivia")

	m.ObserveRequest("/questions", http.MethodGet, http.StatusOK, 15*time.Millisecond)
	m.ObserveCache("categories", true)
	m.ObserveCache("categories", false)
	m.ObserveCache("categories", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/questions", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("categories", "hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheHits.WithLabelValues("categories", "miss")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("trivia")
	m.ObserveSelection(OutcomeExhausted)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `trivia_quiz_selections_total{outcome="exhausted"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
