package generator

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/structdata/schema"
)

const metricsNamespace = "structdata"

// Metrics holds the gauges describing the last run. Each generator has its own
// registry, so runs never share state.
type Metrics struct {
	registry *prometheus.Registry

	nodes       *prometheus.GaugeVec
	items       *prometheus.GaugeVec
	skipped     prometheus.Gauge
	outputBytes prometheus.Gauge
	duration    prometheus.Gauge
	lastRun     prometheus.Gauge
}

// NewMetrics creates and registers the run metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		nodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "nodes",
			Help:      "Top-level JSON-LD nodes emitted, by schema.org type.",
		}, []string{"type"}),
		items: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "content_items",
			Help:      "Content items seen, by classification.",
		}, []string{"classification"}),
		skipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "skipped_base_schema_sections",
			Help:      "Base schema sections skipped because of their shape.",
		}),
		outputBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "output_bytes",
			Help:      "Size of the generated output file.",
		}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run.",
		}),
		lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished.",
		}),
	}
	m.registry.MustRegister(m.nodes, m.items, m.skipped, m.outputBytes, m.duration, m.lastRun)
	return m
}

// Registry returns the registry the metrics are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records the outcome of a run.
func (m *Metrics) Observe(result schema.Result, outputBytes int, elapsed time.Duration, finished time.Time) {
	m.nodes.Reset()
	for t, n := range result.CountByType() {
		m.nodes.WithLabelValues(string(t)).Set(float64(n))
	}

	m.items.Reset()
	for _, c := range result.Classified {
		label := string(c.Type)
		if label == "" {
			label = "unclassified"
		}
		m.items.WithLabelValues(label).Inc()
	}

	m.skipped.Set(float64(len(result.Skipped)))
	m.outputBytes.Set(float64(outputBytes))
	m.duration.Set(elapsed.Seconds())
	m.lastRun.Set(float64(finished.Unix()))
}

// WriteTextfile writes the metrics in the text exposition format, for the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
