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

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.URLShortened()
	m.URLShortened()
	m.Redirect(RedirectOutcomeFound)
	m.Redirect(RedirectOutcomeNotFound)
	m.Redirect(RedirectOutcomeFound)
	m.ClickRecordFailed()

	assert.InDelta(t, 2, testutil.ToFloat64(m.urlsShortened), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.redirects.WithLabelValues(RedirectOutcomeFound)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.redirects.WithLabelValues(RedirectOutcomeNotFound)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.clickRecordFailures), 0)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.URLShortened()
		m.Redirect(RedirectOutcomeError)
		m.ClickRecordFailed()
		m.ObserveHTTP(http.MethodGet, "/ping", http.StatusOK, time.Millisecond)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/s/:shortCode", http.StatusTemporaryRedirect, time.Millisecond)
	m.ClickRecordFailed()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "shortlinks_click_record_failures_total 1")
	assert.Contains(t, body, `shortlinks_http_requests_total{method="GET",route="/s/:shortCode",status="307"} 1`)
}
