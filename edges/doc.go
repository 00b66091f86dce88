// Package edges enumerates the complete Euclidean graph over a point slice
// and hands its edges out cheapest first.
//
// What & Why
//
//   - Enumerate computes every unordered pair (i, j), i < j, exactly once and
//     caches its Euclidean weight. For n points that is n·(n−1)/2 edges;
//     for n < 2 the set is empty.
//   - A Set is immutable once built. Each consumer asks it for a fresh Queue,
//     so two queries over the same points never share traversal state.
//   - Queue is a pop-min priority structure (binary heap) ordered by the
//     explicit comparator ByWeight.
//
// Ordering
//
//	Weights are compared with CompareWeight: ordinary numeric order, except
//	that any comparison involving NaN reports "equal". The heap therefore
//	always sees a total preorder and never stalls on a degenerate weight.
//	Ties, including NaN ties, are broken arbitrarily.
//
// Complexity
//
//   - Enumerate: O(n²) time and memory.
//   - Set.Queue: O(E) heapify.
//   - Queue.Pop: O(log E) per extraction.
package edges
