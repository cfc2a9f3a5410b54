package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы выбора вопроса для викторины
const (
	OutcomeQuestion  = "question"
	OutcomeExhausted = "exhausted"
)

// Metrics хранит коллекторы сервиса на собственном реестре
type Metrics struct {
	registry *prometheus.Registry

	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	selections *prometheus.CounterVec
	cacheHits  *prometheus.CounterVec
}

// New регистрирует коллекторы сервиса и стандартные коллекторы процесса и Go runtime
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quiz_selections_total",
			Help:      "Quiz question selections by outcome.",
		}, []string{"outcome"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by key group and result.",
		}, []string{"group", "result"}),
	}

	reg.MustRegister(
		m.requests,
		m.latency,
		m.selections,
		m.cacheHits,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest учитывает обработанный HTTP-запрос
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveSelection учитывает исход выбора вопроса
func (m *Metrics) ObserveSelection(outcome string) {
	m.selections.WithLabelValues(outcome).Inc()
}

// ObserveCache учитывает попадание или промах кеша
func (m *Metrics) ObserveCache(group string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheHits.WithLabelValues(group, result).Inc()
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry нужен тестам и встраиванию дополнительных коллекторов
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
