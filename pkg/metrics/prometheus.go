// Package metrics provides Prometheus metrics for the pool standings service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// latencyBuckets suits upstream calls measured in milliseconds.
var latencyBuckets = []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000} //nolint:gochecknoglobals // bucket layout

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Standings pipeline
	standingsComputed prometheus.Counter
	teamsOnBoard      prometheus.Gauge
	pickMatches       *prometheus.CounterVec
	picksBackfilled   prometheus.Counter

	// Roster source
	rosterLoadLatency prometheus.Histogram
	rosterErrors      *prometheus.CounterVec

	// Live source
	liveFetchLatency prometheus.Histogram
	liveFailures     *prometheus.CounterVec
	liveEntries      prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorRateByEndpoint *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fairway",
		subsystem:        "pool",
		histogramBuckets: latencyBuckets,
		constLabels:      map[string]string{},
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
		Buckets:     buckets,
	}
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.standingsComputed = auto.NewCounter(m.counterOpts(
		"standings_computed_total", "Total number of standings boards reconciled"))
	m.teamsOnBoard = auto.NewGauge(m.gaugeOpts(
		"teams", "Number of teams on the most recent board"))
	m.pickMatches = auto.NewCounterVec(m.counterOpts(
		"pick_matches_total", "Roster picks resolved against the live feed, by method"),
		[]string{"method"})
	m.picksBackfilled = auto.NewCounter(m.counterOpts(
		"picks_backfilled_total", "No-pick placeholders synthesized for the current week"))

	m.rosterLoadLatency = auto.NewHistogram(m.histogramOpts(
		"roster_load_milliseconds", "Roster sheet load latency in milliseconds", m.histogramBuckets))
	m.rosterErrors = auto.NewCounterVec(m.counterOpts(
		"roster_errors_total", "Roster load failures by kind"),
		[]string{"kind"})

	m.liveFetchLatency = auto.NewHistogram(m.histogramOpts(
		"live_fetch_milliseconds", "Live leaderboard fetch latency in milliseconds", m.histogramBuckets))
	m.liveFailures = auto.NewCounterVec(m.counterOpts(
		"live_failures_total", "Live leaderboard fetches that degraded to an empty snapshot, by reason"),
		[]string{"reason"})
	m.liveEntries = auto.NewGauge(m.gaugeOpts(
		"live_entries", "Contestants in the most recent live snapshot"))

	m.httpRequests = auto.NewCounterVec(m.counterOpts(
		"http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(m.histogramOpts(
		"http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"})
	m.errorRateByEndpoint = auto.NewCounterVec(m.counterOpts(
		"errors_by_endpoint_total", "HTTP errors by endpoint, method and error type"),
		[]string{"endpoint", "method", "error_type"})

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts(
		"system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts(
		"system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts(
		"system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}))
}

// Standings pipeline.

// RecordStandingsComputed counts one reconciled board of teams teams.
func RecordStandingsComputed(teams int) {
	globalManager.standingsComputed.Inc()
	globalManager.teamsOnBoard.Set(float64(teams))
}

// RecordPickMatches adds n resolutions made by method (exact, surname, unmatched).
func RecordPickMatches(method string, n int) {
	if n <= 0 {
		return
	}
	globalManager.pickMatches.WithLabelValues(method).Add(float64(n))
}

// RecordPicksBackfilled adds n synthesized placeholders.
func RecordPicksBackfilled(n int) {
	if n <= 0 {
		return
	}
	globalManager.picksBackfilled.Add(float64(n))
}

// Upstream sources.

// RecordRosterLoad records roster load latency in milliseconds.
func RecordRosterLoad(latencyMs float64) {
	globalManager.rosterLoadLatency.Observe(latencyMs)
}

// RecordRosterError counts a roster failure of the given kind.
func RecordRosterError(kind string) {
	globalManager.rosterErrors.WithLabelValues(kind).Inc()
}

// RecordLiveFetch records live feed latency and the snapshot size.
func RecordLiveFetch(latencyMs float64, entries int) {
	globalManager.liveFetchLatency.Observe(latencyMs)
	globalManager.liveEntries.Set(float64(entries))
}

// RecordLiveFailure counts a degraded live fetch.
func RecordLiveFailure(reason string) {
	globalManager.liveFailures.WithLabelValues(reason).Inc()
}

// HTTP.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// System.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
