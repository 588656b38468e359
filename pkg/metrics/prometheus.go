// Package metrics provides Prometheus metrics for the lead scoring service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Latency buckets in milliseconds. The AI call is bounded at 20s.
var defaultLatencyBuckets = []float64{1, 5, 10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 20000} //nolint:gochecknoglobals // immutable defaults

// Manager owns every Prometheus collector of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Scoring pipeline
	scoringRuns        *prometheus.CounterVec
	leadsScored        *prometheus.CounterVec
	leadScoringLatency prometheus.Histogram
	runDuration        prometheus.Histogram

	// AI layer
	aiRequests  *prometheus.CounterVec
	aiLatency   prometheus.Histogram
	workerCount prometheus.Gauge

	// Ingestion and storage
	leadsUploaded prometheus.Counter
	offersCreated prometheus.Counter
	resultsTotal  prometheus.Gauge

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Errors
	errorsByComponent *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "leadscore",
		subsystem:        "service",
		histogramBuckets: defaultLatencyBuckets,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.scoringRuns = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_runs_total",
		Help:      "Scoring runs by final status",
	}, []string{"status"})

	m.leadsScored = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leads_scored_total",
		Help:      "Leads scored and persisted, by intent label",
	}, []string{"intent"})

	m.leadScoringLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lead_scoring_latency_milliseconds",
		Help:      "Time to score and persist a single lead",
		Buckets:   m.histogramBuckets,
	})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scoring_run_duration_milliseconds",
		Help:      "Wall-clock duration of a full scoring run",
		Buckets:   m.histogramBuckets,
	})

	m.aiRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ai_requests_total",
		Help:      "AI classification attempts by outcome (remote, no_credential, call_error, empty_response)",
	}, []string{"outcome"})

	m.aiLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ai_latency_milliseconds",
		Help:      "Latency of the external text-generation call",
		Buckets:   m.histogramBuckets,
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Workers used by the most recent scoring run",
	})

	m.leadsUploaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leads_uploaded_total",
		Help:      "Leads inserted through CSV uploads",
	})

	m.offersCreated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "offers_created_total",
		Help:      "Offers created",
	})

	m.resultsTotal = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "results_total",
		Help:      "Scoring results currently stored",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.errorsByComponent = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_total",
		Help:      "Errors by component and type",
	}, []string{"component", "type"})
}

// Manager methods. Package-level helpers below forward to the global manager.

// RecordScoringRun counts a finished run with status "success" or "failed".
func (m *Manager) RecordScoringRun(status string, durationMs float64) {
	m.scoringRuns.WithLabelValues(status).Inc()
	m.runDuration.Observe(durationMs)
}

// RecordLeadScored counts one persisted result.
func (m *Manager) RecordLeadScored(intent string, latencyMs float64) {
	m.leadsScored.WithLabelValues(intent).Inc()
	m.leadScoringLatency.Observe(latencyMs)
}

// RecordAIRequest counts a classification attempt by outcome.
func (m *Manager) RecordAIRequest(outcome string) {
	m.aiRequests.WithLabelValues(outcome).Inc()
}

// RecordAILatency observes the external call latency.
func (m *Manager) RecordAILatency(latencyMs float64) {
	m.aiLatency.Observe(latencyMs)
}

// RecordError counts an error for a component.
func (m *Manager) RecordError(component, errorType string) {
	m.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordScoringRun counts a finished run on the global manager.
func RecordScoringRun(status string, durationMs float64) {
	globalManager.RecordScoringRun(status, durationMs)
}

// RecordLeadScored counts one persisted result on the global manager.
func RecordLeadScored(intent string, latencyMs float64) {
	globalManager.RecordLeadScored(intent, latencyMs)
}

// RecordAIRequest counts a classification attempt on the global manager.
func RecordAIRequest(outcome string) {
	globalManager.RecordAIRequest(outcome)
}

// RecordAILatency observes the external call latency on the global manager.
func RecordAILatency(latencyMs float64) {
	globalManager.RecordAILatency(latencyMs)
}

// UpdateWorkerCount sets the worker gauge.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// RecordLeadsUploaded adds n uploaded leads.
func RecordLeadsUploaded(n int) {
	globalManager.leadsUploaded.Add(float64(n))
}

// RecordOfferCreated increments the offers counter.
func RecordOfferCreated() {
	globalManager.offersCreated.Inc()
}

// UpdateResultsTotal sets the stored results gauge.
func UpdateResultsTotal(count int) {
	globalManager.resultsTotal.Set(float64(count))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordError counts an error on the global manager.
func RecordError(component, errorType string) {
	globalManager.RecordError(component, errorType)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
