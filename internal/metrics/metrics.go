// Package metrics содержит prometheus метрики сервиса. Все метрики регистрируются
// в собственном реестре, поэтому в тестах можно создавать сколько угодно экземпляров.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shortlinks"

// Исходы переадресации.
const (
	RedirectOutcomeFound    = "found"
	RedirectOutcomeNotFound = "not_found"
	RedirectOutcomeError    = "error"
)

type Metrics struct {
	registry *prometheus.Registry

	urlsShortened       prometheus.Counter
	redirects           *prometheus.CounterVec
	clickRecordFailures prometheus.Counter
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		urlsShortened: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "urls_shortened_total",
			Help:      "Количество созданных коротких ссылок",
		}),
		redirects: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redirects_total",
			Help:      "Количество обращений к коротким ссылкам по исходу",
		}, []string{"outcome"}),
		clickRecordFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "click_record_failures_total",
			Help:      "Количество переходов, которые не удалось записать",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Количество HTTP запросов",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Время обработки HTTP запроса",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// Handler отдает метрики в формате prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) URLShortened() {
	if m == nil {
		return
	}
	m.urlsShortened.Inc()
}

func (m *Metrics) Redirect(outcome string) {
	if m == nil {
		return
	}
	m.redirects.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ClickRecordFailed() {
	if m == nil {
		return
	}
	m.clickRecordFailures.Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
