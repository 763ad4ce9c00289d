package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the frogger service.
type Metrics struct {
	registry              *prometheus.Registry
	requestsTotal         prometheus.Counter
	errorsTotal           prometheus.Counter
	recordsAddedTotal     prometheus.Counter
	recordsDuplicateTotal prometheus.Counter
	positionQueriesTotal  *prometheus.CounterVec
	records               prometheus.Gauge
	lanes                 prometheus.Gauge
}

// New creates and registers Prometheus metrics on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frogger_requests_total",
			Help: "Total number of HTTP requests received",
		}),
		errorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frogger_errors_total",
			Help: "Total number of HTTP responses with error status (4xx or 5xx)",
		}),
		recordsAddedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frogger_records_added_total",
			Help: "Total number of frogger records added to the record book",
		}),
		recordsDuplicateTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "frogger_records_duplicate_total",
			Help: "Total number of frogger records rejected as duplicates",
		}),
		positionQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "frogger_position_queries_total",
			Help: "Total number of lane position queries by result state",
		}, []string{"state"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "frogger_records",
			Help: "Number of records in the record book",
		}),
		lanes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "frogger_lanes",
			Help: "Number of lanes currently stored",
		}),
	}

	registry.MustRegister(
		m.requestsTotal,
		m.errorsTotal,
		m.recordsAddedTotal,
		m.recordsDuplicateTotal,
		m.positionQueriesTotal,
		m.records,
		m.lanes,
	)
	return m
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// ObserveRecordAdd counts a record submission as added or duplicate.
func (m *Metrics) ObserveRecordAdd(added bool) {
	if added {
		m.recordsAddedTotal.Inc()
		return
	}
	m.recordsDuplicateTotal.Inc()
}

// ObservePositionQuery counts a position query answered with state.
func (m *Metrics) ObservePositionQuery(state string) {
	m.positionQueriesTotal.WithLabelValues(state).Inc()
}

// SetRecords sets the records gauge.
func (m *Metrics) SetRecords(n int) {
	m.records.Set(float64(n))
}

// SetLanes sets the lanes gauge.
func (m *Metrics) SetLanes(n int) {
	m.lanes.Set(float64(n))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		h.ServeHTTP(w, r)
	})
}
