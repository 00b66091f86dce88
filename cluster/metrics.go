package cluster

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors an Analyzer reports into.
// A nil *Metrics records nothing.
type Metrics struct {
	queries  *prometheus.CounterVec
	attempts *prometheus.CounterVec
	merges   *prometheus.CounterVec
	edges    prometheus.Gauge
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered. Registering twice with the same
// registry panics, as promauto does.
//
// Collectors (all labelled by query where noted):
//
//	lvcluster_query_total{query}             – queries run.
//	lvcluster_union_attempts_total{query}    – edges popped and unioned.
//	lvcluster_merges_total{query}            – unions that merged two components.
//	lvcluster_edges_enumerated               – edge count of the last enumerated set.
//	lvcluster_query_duration_seconds{query}  – wall time per query.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		queries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvcluster",
			Name:      "query_total",
			Help:      "Number of clustering queries run.",
		}, []string{"query"}),
		attempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvcluster",
			Name:      "union_attempts_total",
			Help:      "Edges popped from the queue and passed to Union.",
		}, []string{"query"}),
		merges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvcluster",
			Name:      "merges_total",
			Help:      "Unions that merged two distinct components.",
		}, []string{"query"}),
		edges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "lvcluster",
			Name:      "edges_enumerated",
			Help:      "Number of edges in the most recently enumerated point set.",
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvcluster",
			Name:      "query_duration_seconds",
			Help:      "Wall time spent answering a query.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"query"}),
	}
}

func (m *Metrics) observeEnumerated(n int) {
	if m == nil {
		return
	}
	m.edges.Set(float64(n))
}

func (m *Metrics) observeQuery(query string, attempts, merges int, took time.Duration) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(query).Inc()
	m.attempts.WithLabelValues(query).Add(float64(attempts))
	m.merges.WithLabelValues(query).Add(float64(merges))
	m.duration.WithLabelValues(query).Observe(took.Seconds())
}
