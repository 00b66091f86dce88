// Package cluster answers two structural questions about the complete
// Euclidean graph over a 3-D point set, by feeding its edges cheapest first
// into a disjoint-set forest.
//
// BoundedMerge(k)
//
// Pop the k cheapest edges (fewer if the graph has fewer) and Union the
// endpoints of every one of them. A pop whose endpoints are already
// connected still uses up one of the k iterations. The result is the
// product of the sizes of the largest Top components (three by default,
// fewer if fewer components exist).
//
// FullConnectivity()
//
// Pop edges cheapest first, counting only unions that actually merged. The
// pop that performs merge number n−1 joins the last two components. That
// edge is the heaviest edge of the minimum spanning tree (the bottleneck
// edge), and the result is the product of its endpoints' X coordinates as
// a uint64. For n ≤ 1 nothing needs merging and the result is 0.
//
// The two loops count differently on purpose: BoundedMerge counts attempts,
// FullConnectivity counts merges.
//
// State
//
//	An Analyzer enumerates the edge set once in New. Every query takes a
//	fresh queue from that set and a fresh forest, so queries do not affect
//	each other and may be repeated. An Analyzer is not safe for concurrent
//	queries.
//
// Observability
//
//	WithLogger attaches a charmbracelet/log logger (query summaries at debug
//	level). WithMetrics attaches Prometheus collectors created by NewMetrics.
//
// Complexity
//
//   - New: O(n²) time and memory for the edge set.
//   - BoundedMerge(k): O(E + k·log E + n log n).
//   - FullConnectivity: O(E + m·log E) where m is the number of pops needed.
package cluster
