package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the instrument set for graph analysis. Construct with
// NewMetrics; a nil receiver disables recording.
type Metrics struct {
	analysisTotal    *prometheus.CounterVec
	analysisDuration *prometheus.HistogramVec
	pathsFound       prometheus.Histogram
	cyclesFound      prometheus.Histogram
	truncatedTotal   prometheus.Counter
	partitionsBuilt  prometheus.Histogram
	diffChanges      prometheus.Histogram
	graphStates      prometheus.Gauge
}

// NewMetrics creates and registers the instrument set on the given
// registerer. Pass prometheus.DefaultRegisterer for the process-global
// registry, or a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		analysisTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stategraph_analysis_total",
				Help: "Total number of analysis operations, by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		analysisDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stategraph_analysis_duration_seconds",
				Help:    "Duration of analysis operations.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		pathsFound: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stategraph_paths_found",
			Help:    "Number of paths discovered per traversal.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}),
		cyclesFound: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stategraph_cycles_found",
			Help:    "Number of cycles discovered per traversal.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}),
		truncatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stategraph_traversals_truncated_total",
			Help: "Traversals cut short by path or depth limits.",
		}),
		partitionsBuilt: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stategraph_partitions_built",
			Help:    "Number of partitions produced per split.",
			Buckets: prometheus.LinearBuckets(1, 2, 8),
		}),
		diffChanges: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stategraph_diff_changes",
			Help:    "Total change count per comparison.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}),
		graphStates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stategraph_graph_states",
			Help: "Number of states in the most recently loaded graph.",
		}),
	}

	reg.MustRegister(
		m.analysisTotal,
		m.analysisDuration,
		m.pathsFound,
		m.cyclesFound,
		m.truncatedTotal,
		m.partitionsBuilt,
		m.diffChanges,
		m.graphStates,
	)
	return m
}

// ObserveOperation records one completed operation with its duration.
func (m *Metrics) ObserveOperation(operation string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.analysisTotal.WithLabelValues(operation, outcome).Inc()
	m.analysisDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// ObserveTraversal records the outcome of one path-finding run.
func (m *Metrics) ObserveTraversal(paths, cycles int, truncated bool) {
	if m == nil {
		return
	}
	m.pathsFound.Observe(float64(paths))
	m.cyclesFound.Observe(float64(cycles))
	if truncated {
		m.truncatedTotal.Inc()
	}
}

// ObservePartitions records the partition count of one split.
func (m *Metrics) ObservePartitions(count int) {
	if m == nil {
		return
	}
	m.partitionsBuilt.Observe(float64(count))
}

// ObserveDiff records the total change count of one comparison.
func (m *Metrics) ObserveDiff(changes int) {
	if m == nil {
		return
	}
	m.diffChanges.Observe(float64(changes))
}

// SetGraphSize records the state count of the loaded graph.
func (m *Metrics) SetGraphSize(states int) {
	if m == nil {
		return
	}
	m.graphStates.Set(float64(states))
}
