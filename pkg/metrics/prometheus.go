// Package metrics provides Prometheus metrics for analyzer runs.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes metric names unless WithNamespace overrides it.
const DefaultNamespace = "analyzer"

// Run status label values.
const (
	StatusOK    = "ok"
	StatusEmpty = "empty"
	StatusError = "error"
)

// Manager owns the metrics of a single analyzer process. A nil *Manager is
// valid and records nothing, so components can take one optionally.
type Manager struct {
	namespace   string
	constLabels prometheus.Labels
	registry    *prometheus.Registry

	// Loader metrics
	filesLoaded prometheus.Counter
	rowsLoaded  prometheus.Counter
	rowsSkipped prometheus.Counter

	// Report metrics
	reportRows     *prometheus.GaugeVec
	reportDuration *prometheus.HistogramVec
	runs           *prometheus.CounterVec
}

// reportBuckets covers report generation from 100µs to about 1.6s.
var reportBuckets = prometheus.ExponentialBuckets(0.0001, 4, 8)

// NewManager creates a metrics manager on its own registry unless one is
// supplied with WithRegistry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{namespace: DefaultNamespace}

	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := m.constLabels

	m.filesLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Name:        "files_loaded_total",
		Help:        "Total number of CSV files read by the loader",
		ConstLabels: labels,
	})

	m.rowsLoaded = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Name:        "rows_loaded_total",
		Help:        "Total number of valid employee rows loaded",
		ConstLabels: labels,
	})

	m.rowsSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Name:        "rows_skipped_total",
		Help:        "Total number of data rows skipped because of invalid values",
		ConstLabels: labels,
	})

	m.reportRows = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Name:        "report_rows",
		Help:        "Number of rows produced by the last run of a report",
		ConstLabels: labels,
	}, []string{"report"})

	m.reportDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Name:        "report_duration_seconds",
		Help:        "Time spent generating a report",
		Buckets:     reportBuckets,
		ConstLabels: labels,
	}, []string{"report"})

	m.runs = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Name:        "runs_total",
		Help:        "Total number of analyzer runs by report and outcome",
		ConstLabels: labels,
	}, []string{"report", "status"})
}

// RecordFileLoaded counts one input file read to completion.
func (m *Manager) RecordFileLoaded() {
	if m == nil {
		return
	}
	m.filesLoaded.Inc()
}

// RecordRowLoaded counts one valid employee row.
func (m *Manager) RecordRowLoaded() {
	if m == nil {
		return
	}
	m.rowsLoaded.Inc()
}

// RecordRowSkipped counts one rejected data row.
func (m *Manager) RecordRowSkipped() {
	if m == nil {
		return
	}
	m.rowsSkipped.Inc()
}

// RecordReport stores the size and generation time of a report.
func (m *Manager) RecordReport(report string, rows int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.reportRows.WithLabelValues(report).Set(float64(rows))
	m.reportDuration.WithLabelValues(report).Observe(elapsed.Seconds())
}

// RecordRun counts a finished run with one of the Status* values.
func (m *Manager) RecordRun(report, status string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(report, status).Inc()
}

// Registry exposes the underlying registry.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// WriteTextfile writes all gathered metrics in the text exposition format,
// suitable for the node_exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteSnapshot, path, err)
	}
	return nil
}
