package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// bulletin loop.
type Metrics struct {
	CyclesTotal       prometheus.Counter
	CycleErrors       prometheus.Counter
	CycleDuration     prometheus.Histogram
	RegionFetchErrors prometheus.Counter
	ActiveAlerts      prometheus.Gauge
	ChunksPublished   prometheus.Counter
	PublishErrors     *prometheus.CounterVec // labels: sink={discord,kafka}
	SchedulerRunning  prometheus.Gauge
}

// NewMetrics creates and registers all bulletin metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		CyclesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_net",
			Name:      "cycles_total",
			Help:      "Total bulletin cycles started.",
		}),
		CycleErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_net",
			Name:      "cycle_errors_total",
			Help:      "Total bulletin cycles that failed before publishing.",
		}),
		CycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_net",
			Name:      "cycle_duration_seconds",
			Help:      "Duration of a complete compose-chunk-publish cycle.",
			Buckets:   []float64{1, 2.5, 5, 10, 20, 30, 60, 120},
		}),
		RegionFetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_net",
			Name:      "region_fetch_errors_total",
			Help:      "Per-region forecast fetches that degraded to an inline error line.",
		}),
		ActiveAlerts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_net",
			Name:      "active_alerts",
			Help:      "Deduplicated alert headlines in the most recent bulletin.",
		}),
		ChunksPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_net",
			Name:      "chunks_published_total",
			Help:      "Total message chunks sent to the destination channel.",
		}),
		PublishErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_net",
			Name:      "publish_errors_total",
			Help:      "Publish failures by sink.",
		}, []string{"sink"}),
		SchedulerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_net",
			Name:      "scheduler_running",
			Help:      "1 while the periodic bulletin loop is active, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.CyclesTotal,
		m.CycleErrors,
		m.CycleDuration,
		m.RegionFetchErrors,
		m.ActiveAlerts,
		m.ChunksPublished,
		m.PublishErrors,
		m.SchedulerRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		CyclesTotal:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_net", Name: "cycles_total"}),
		CycleErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_net", Name: "cycle_errors_total"}),
		CycleDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_net", Name: "cycle_duration_seconds"}),
		RegionFetchErrors: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_net", Name: "region_fetch_errors_total"}),
		ActiveAlerts:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weather_net", Name: "active_alerts"}),
		ChunksPublished:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_net", Name: "chunks_published_total"}),
		PublishErrors:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_net", Name: "publish_errors_total"}, []string{"sink"}),
		SchedulerRunning:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weather_net", Name: "scheduler_running"}),
	}
}
