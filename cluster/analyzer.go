package cluster

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/lvcluster/disjointset"
	"github.com/katalvlaran/lvcluster/edges"
	"github.com/katalvlaran/lvcluster/point"
)

// Analyzer runs BoundedMerge and FullConnectivity over one point set.
type Analyzer struct {
	points []point.Point
	set    *edges.Set
	opts   Options
}

// New copies pts, enumerates the complete edge set once and applies opts.
// Complexity: O(n²).
func New(pts []point.Point, opts ...Option) *Analyzer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}

	cp := make([]point.Point, len(pts))
	copy(cp, pts)
	set := edges.Enumerate(cp)

	o.Metrics.observeEnumerated(set.Len())
	o.Logger.Debug("enumerated edges", "points", len(cp), "edges", set.Len())

	return &Analyzer{points: cp, set: set, opts: o}
}

// Points returns the number of points.
func (a *Analyzer) Points() int { return len(a.points) }

// Edges returns the number of enumerated edges, n·(n−1)/2.
func (a *Analyzer) Edges() int { return a.set.Len() }

// ComponentSizesAfter pops up to k of the cheapest edges, unions the
// endpoints of each, and returns the resulting component sizes in
// descending order. Every pop counts toward k, merged or not.
//
// Steps:
//  1. Reject k < 0 with ErrNegativeMergeCount.
//  2. Take a fresh queue from the edge set and a fresh forest of n singletons.
//  3. Pop until k pops have happened or the queue is empty; Union the
//     endpoints of every popped edge, ignoring whether it merged.
//  4. Collect the root sizes and sort them largest first.
//
// Error Conditions:
//   - ErrNegativeMergeCount: k < 0.
//
// Complexity: O(E + k·log E + n log n).
func (a *Analyzer) ComponentSizesAfter(k int) ([]int, error) {
	// 1. Validate the merge budget.
	if k < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeMergeCount, k)
	}

	// 2. Per-query state; the edge set itself is never mutated.
	start := time.Now()
	q := a.set.Queue()
	f := disjointset.New(len(a.points))

	// 3. Every pop is one attempt, including unions that change nothing.
	attempts := 0
	for attempts < k {
		e, ok := q.Pop()
		if !ok {
			break // fewer than k edges in total
		}
		f.Union(e.U, e.V)
		attempts++
	}

	// 4. Largest components first.
	sizes := f.ComponentSizes()
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	a.opts.Metrics.observeQuery(QueryBoundedMerge, attempts, f.Merges(), time.Since(start))
	a.opts.Logger.Debug("bounded merge",
		"k", k, "attempts", attempts, "merges", f.Merges(), "components", len(sizes))

	return sizes, nil
}

// BoundedMerge returns the product of the largest Top component sizes after
// k union attempts on the cheapest edges. With fewer than Top components
// all of them are multiplied; with no points the result is 1.
func (a *Analyzer) BoundedMerge(k int) (int, error) {
	sizes, err := a.ComponentSizesAfter(k)
	if err != nil {
		return 0, err
	}
	if len(sizes) > a.opts.Top {
		sizes = sizes[:a.opts.Top]
	}

	product := 1
	for _, s := range sizes {
		product *= s
	}

	return product, nil
}

// Bottleneck pops edges cheapest first until n−1 unions have merged and
// returns the edge that performed the last merge. ok is false when n ≤ 1
// or the edges run out first.
//
// Steps:
//  1. Return early for n ≤ 1: there is nothing to connect, and n−1 would
//     be negative for an empty set.
//  2. Take a fresh queue and a fresh forest of n singletons.
//  3. Pop edges cheapest first. A Union that finds both endpoints already
//     connected is skipped and does not count.
//  4. The pop that performs merge n−1 joins the last two components; it is
//     the heaviest edge of the minimum spanning tree and is returned.
//  5. If the queue empties first the graph was not connected; report false.
//
// Complexity: O(E + m·log E), m = edges popped.
func (a *Analyzer) Bottleneck() (b Bottleneck, ok bool) {
	n := len(a.points)
	start := time.Now()
	popped, merged := 0, 0
	defer func() {
		a.opts.Metrics.observeQuery(QueryFullConnectivity, popped, merged, time.Since(start))
		a.opts.Logger.Debug("full connectivity",
			"points", n, "popped", popped, "merges", merged, "connected", ok)
	}()

	// 1. Nothing needs connecting.
	if n <= 1 {
		return Bottleneck{}, false
	}

	// 2. Per-query state.
	q := a.set.Queue()
	f := disjointset.New(n)

	// 3. Only successful unions move merged forward.
	for merged < n-1 {
		e, more := q.Pop()
		if !more {
			break
		}
		popped++
		if !f.Union(e.U, e.V) {
			continue // already connected
		}
		merged++

		// 4. Last merge: this edge connects everything.
		if merged == n-1 {
			return Bottleneck{
				Edge:   e,
				From:   a.points[e.U],
				To:     a.points[e.V],
				Popped: popped,
			}, true
		}
	}

	// 5. Unreachable for a complete graph over n ≥ 2 points.
	return Bottleneck{}, false
}

// FullConnectivity returns the product of the X coordinates of the
// bottleneck edge's endpoints, or 0 when there is no such edge (n ≤ 1).
func (a *Analyzer) FullConnectivity() uint64 {
	b, ok := a.Bottleneck()
	if !ok {
		return 0
	}

	return b.Product()
}
