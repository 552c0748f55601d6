// Package metrics provides Prometheus metrics for the Kirat server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Report kinds used as the "kind" label.
const (
	ReportBuilding = "building"
	ReportPerson   = "person"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	gatherer prometheus.Gatherer

	rpcRequestsTotal   *prometheus.CounterVec
	rpcRequestDuration *prometheus.HistogramVec
	reportsGenerated   *prometheus.CounterVec
	reportBuildings    prometheus.Histogram
}

// NewMetrics creates the metrics and registers them with reg.
// Pass prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		gatherer: reg,
		rpcRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kirat_rpc_requests_total",
				Help: "Total number of RPC requests",
			},
			[]string{"procedure", "code"},
		),
		rpcRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "kirat_rpc_request_duration_seconds",
				Help:    "RPC request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"procedure"},
		),
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "kirat_reports_generated_total",
				Help: "Total number of reports computed",
			},
			[]string{"kind"},
		),
		reportBuildings: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "kirat_person_report_buildings",
				Help:    "Number of buildings loaded for a person report",
				Buckets: []float64{1, 2, 3, 5, 10, 20, 50},
			},
		),
	}
}

// RecordRPC records metrics for one RPC call. code is "ok" or a Connect code.
func (m *Metrics) RecordRPC(procedure, code string, duration time.Duration) {
	m.rpcRequestsTotal.WithLabelValues(procedure, code).Inc()
	m.rpcRequestDuration.WithLabelValues(procedure).Observe(duration.Seconds())
}

// RecordReport counts a computed report of the given kind.
func (m *Metrics) RecordReport(kind string) {
	m.reportsGenerated.WithLabelValues(kind).Inc()
}

// ObservePersonBuildings records how many buildings fed a person report.
func (m *Metrics) ObservePersonBuildings(n int) {
	m.reportBuildings.Observe(float64(n))
}

// Handler serves the registered metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
