package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface and the upstream platform client.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	upstreamTotal    *prometheus.CounterVec
	activeSessions   prometheus.Gauge
	catalogSize      prometheus.Gauge
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	upstreamDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Duration of marathon platform API calls in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "status"})

	upstreamTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Total number of marathon platform API calls",
	}, []string{"endpoint", "status"})

	activeSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "viewer_sessions_active",
		Help: "Number of live viewer sessions",
	})

	catalogSize := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_events",
		Help: "Number of events in the last served catalog",
	})

	registry.MustRegister(requestDuration, requestTotal, upstreamDuration, upstreamTotal, activeSessions, catalogSize)

	return &MetricsService{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		upstreamDuration: upstreamDuration,
		upstreamTotal:    upstreamTotal,
		activeSessions:   activeSessions,
		catalogSize:      catalogSize,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (m *MetricsService) Handler() http.Handler {
	return m.handler
}

// ObserveHTTPRequest records one served HTTP request.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := prometheus.Labels{"method": method, "path": path, "status": strconv.Itoa(status)}
	m.requestDuration.With(labels).Observe(duration.Seconds())
	m.requestTotal.With(labels).Inc()
}

// ObserveUpstream records one platform API call; matches the upstream
// client's Observer signature.
func (m *MetricsService) ObserveUpstream(endpoint string, status int, duration time.Duration) {
	labels := prometheus.Labels{"endpoint": endpoint, "status": strconv.Itoa(status)}
	m.upstreamDuration.With(labels).Observe(duration.Seconds())
	m.upstreamTotal.With(labels).Inc()
}

// SetActiveSessions publishes the live session count.
func (m *MetricsService) SetActiveSessions(n int) {
	m.activeSessions.Set(float64(n))
}

// SetCatalogSize publishes the size of the last catalog load.
func (m *MetricsService) SetCatalogSize(n int) {
	m.catalogSize.Set(float64(n))
}
