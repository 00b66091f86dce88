package cluster

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvcluster/edges"
	"github.com/katalvlaran/lvcluster/point"
)

// ErrNegativeMergeCount indicates a BoundedMerge call with k < 0.
var ErrNegativeMergeCount = errors.New("cluster: merge count must be non-negative")

// DefaultTop is how many of the largest components BoundedMerge multiplies.
const DefaultTop = 3

// Query names used as the "query" label on metrics and in log lines.
const (
	QueryBoundedMerge     = "bounded_merge"
	QueryFullConnectivity = "full_connectivity"
)

// Options configures an Analyzer.
//
//	Top     – number of largest components multiplied by BoundedMerge (≥ 1).
//	Logger  – receives debug-level query summaries; discarded when nil.
//	Metrics – Prometheus collectors; nothing is recorded when nil.
type Options struct {
	Top     int
	Logger  *log.Logger
	Metrics *Metrics
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Top = DefaultTop with no logger and no metrics.
func DefaultOptions() Options {
	return Options{Top: DefaultTop}
}

// WithTop sets how many of the largest components BoundedMerge multiplies.
// Panics if n < 1.
func WithTop(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("cluster: WithTop(%d): must be at least 1", n))
	}
	return func(o *Options) { o.Top = n }
}

// WithLogger attaches a logger. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("cluster: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithMetrics attaches Prometheus collectors. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("cluster: WithMetrics(nil)")
	}
	return func(o *Options) { o.Metrics = m }
}

// Bottleneck describes the edge whose union made the point set a single
// component.
type Bottleneck struct {
	// Edge is the completing edge; Edge.U < Edge.V.
	Edge edges.Edge

	// From and To are the points at Edge.U and Edge.V.
	From point.Point
	To   point.Point

	// Popped is how many edges were taken from the queue, this one included.
	Popped int
}

// Product returns From.X * To.X. Coordinates fit in 32 bits, so the
// product always fits in a uint64.
func (b Bottleneck) Product() uint64 {
	return uint64(b.From.X) * uint64(b.To.X)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
