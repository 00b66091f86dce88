package edges

import "github.com/emirpasic/gods/trees/binaryheap"

// Queue hands out the edges of a Set cheapest first. It is owned by a single
// query and is not safe for concurrent use.
type Queue struct {
	heap *binaryheap.Heap
}

// Pop removes and returns the cheapest remaining edge.
// ok is false once the queue is exhausted.
// Complexity: O(log E).
func (q *Queue) Pop() (e Edge, ok bool) {
	v, ok := q.heap.Pop()
	if !ok {
		return Edge{}, false
	}

	return v.(Edge), true
}

// Peek returns the cheapest remaining edge without removing it.
func (q *Queue) Peek() (e Edge, ok bool) {
	v, ok := q.heap.Peek()
	if !ok {
		return Edge{}, false
	}

	return v.(Edge), true
}

// Len returns the number of edges left.
func (q *Queue) Len() int { return q.heap.Size() }

// Empty reports whether every edge has been popped.
func (q *Queue) Empty() bool { return q.heap.Empty() }
