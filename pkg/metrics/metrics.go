package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-коллекторов сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	cmsRequestsTotal   *prometheus.CounterVec
	cmsRequestDuration *prometheus.HistogramVec

	cacheHitsTotal   *prometheus.CounterVec
	cacheMissesTotal *prometheus.CounterVec
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests processed",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request processing duration",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		cmsRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "cms_requests_total",
			Help:        "Total number of outbound CMS API calls",
			ConstLabels: constLabels,
		}, []string{"operation", "outcome"}),

		cmsRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "cms_request_duration_seconds",
			Help:        "Outbound CMS API call duration",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		cacheHitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_hits_total",
			Help:        "Reference-data cache hits",
			ConstLabels: constLabels,
		}, []string{"key"}),

		cacheMissesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_misses_total",
			Help:        "Reference-data cache misses",
			ConstLabels: constLabels,
		}, []string{"key"}),
	}
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveCMSRequest учитывает исходящий вызов CMS API
func (m *Metrics) ObserveCMSRequest(operation string, err error, duration time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.cmsRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.cmsRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveCacheHit учитывает попадание в кеш
func (m *Metrics) ObserveCacheHit(key string) {
	m.cacheHitsTotal.WithLabelValues(key).Inc()
}

// ObserveCacheMiss учитывает промах кеша
func (m *Metrics) ObserveCacheMiss(key string) {
	m.cacheMissesTotal.WithLabelValues(key).Inc()
}
