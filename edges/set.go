package edges

import (
	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/lvcluster/point"
)

// Set is the immutable edge list of the complete graph over a point slice.
type Set struct {
	edges []Edge
}

// Enumerate builds the Set for pts: one Edge per unordered index pair,
// in row-major order (0-1, 0-2, ..., 1-2, ...).
// Complexity: O(n²) time and memory.
func Enumerate(pts []point.Point) *Set {
	n := len(pts)
	if n < 2 {
		return &Set{}
	}

	out := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Edge{U: i, V: j, Weight: point.Distance(pts[i], pts[j])})
		}
	}

	return &Set{edges: out}
}

// Len returns the number of edges in the set.
func (s *Set) Len() int { return len(s.edges) }

// Edges returns a copy of the edges in enumeration order.
func (s *Set) Edges() []Edge {
	out := make([]Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// Queue returns a new min-priority traversal over every edge in the set.
// The set itself is left untouched.
// Complexity: O(E) to heapify.
func (s *Set) Queue() *Queue {
	h := binaryheap.NewWith(ByWeight)
	if len(s.edges) > 0 {
		vals := make([]interface{}, len(s.edges))
		for i, e := range s.edges {
			vals[i] = e
		}
		// Pushing more than one value at once heapifies bottom-up.
		h.Push(vals...)
	}

	return &Queue{heap: h}
}
