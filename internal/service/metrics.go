package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Pipeline run outcomes
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
)

// PipelineMetrics records dashboard pipeline runs in a Prometheus registry
type PipelineMetrics struct {
	registry *prometheus.Registry

	runs         *prometheus.CounterVec
	duration     prometheus.Histogram
	filteredRows *prometheus.GaugeVec
}

// NewPipelineMetrics creates the collectors and registers them on a fresh registry
func NewPipelineMetrics() *PipelineMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &PipelineMetrics{
		registry: registry,
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_pipeline_runs_total",
			Help: "Total number of dashboard pipeline runs by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dashboard_pipeline_duration_seconds",
			Help:    "Duration of filter and aggregate passes.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		filteredRows: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dashboard_filtered_rows",
			Help: "Rows left after date filtering in the latest run, by table.",
		}, []string{"table"}),
	}
	registry.MustRegister(m.runs, m.duration, m.filteredRows)
	return m
}

// Registry returns the registry to expose over HTTP
func (m *PipelineMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRun records one completed pipeline run
func (m *PipelineMetrics) ObserveRun(outcome string, elapsed time.Duration, days, hours int) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
	m.filteredRows.WithLabelValues("days").Set(float64(days))
	m.filteredRows.WithLabelValues("hours").Set(float64(hours))
}
