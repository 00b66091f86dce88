// Package disjointset provides a union-find forest over the dense index
// universe {0..n-1}, with path compression and union by size.
//
// What & Why
//
//   - Find locates the representative root of an index. It walks to the root
//     iteratively and then re-links every node on the walked path directly to
//     that root, so no call depth grows with the forest and repeated finds
//     approach O(1) amortized.
//   - Union merges two components and reports whether anything changed. The
//     root of the smaller component is attached under the root of the larger
//     one; on equal sizes v's root goes under u's root.
//   - The forest only ever merges. Components never split, so
//     NumComponents() + Merges() == Len() holds at every point in time.
//
// Failure
//
//	Indices outside [0, n) are caller contract violations and panic. They are
//	never reported as errors.
//
// Complexity
//
//   - New: O(n) time and memory.
//   - Find, Union, Connected, Size: O(α(n)) amortized.
//   - ComponentSizes, NumComponents: O(n).
package disjointset

import "fmt"

// Forest is a union-find structure over {0..n-1}.
// It is not safe for concurrent use.
type Forest struct {
	parent []int // parent[i] == i iff i is a root
	size   []int // valid at roots only
	merges int   // successful unions so far
}

// New returns a forest of n singleton components. It panics if n < 0.
func New(n int) *Forest {
	if n < 0 {
		panic(fmt.Sprintf("disjointset: New(%d): negative size", n))
	}

	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// Len returns n, the size of the universe.
func (f *Forest) Len() int { return len(f.parent) }

// Merges returns how many Union calls actually merged two components.
func (f *Forest) Merges() int { return f.merges }

// Find returns the representative root of x and flattens the path from x
// to it.
//
// Steps:
//  1. Panic if x is outside [0, n).
//  2. Follow parent links from x until a node is its own parent; that node
//     is the root.
//  3. Walk the same path a second time, pointing every node on it straight
//     at the root.
//
// Both passes are loops, so deep chains cannot exhaust the stack.
func (f *Forest) Find(x int) int {
	// 1. Bounds.
	f.check(x)

	// 2. Locate the root.
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}

	// 3. Compress: remember the next hop before re-linking x.
	for f.parent[x] != root {
		x, f.parent[x] = f.parent[x], root
	}

	return root
}

// Union merges the components of u and v. It returns false when they were
// already the same component.
func (f *Forest) Union(u, v int) bool {
	ru, rv := f.Find(u), f.Find(v)
	if ru == rv {
		return false
	}

	// Larger root stays; on equal sizes u's root stays.
	if f.size[ru] < f.size[rv] {
		ru, rv = rv, ru
	}
	f.parent[rv] = ru
	f.size[ru] += f.size[rv]
	f.merges++

	return true
}

// Connected reports whether u and v share a root.
func (f *Forest) Connected(u, v int) bool {
	return f.Find(u) == f.Find(v)
}

// Size returns the number of indices in x's component.
func (f *Forest) Size(x int) int {
	return f.size[f.Find(x)]
}

// ComponentSizes returns the size of every component, ordered by ascending
// root index. The sizes always sum to Len().
func (f *Forest) ComponentSizes() []int {
	out := make([]int, 0, f.NumComponents())
	for i, p := range f.parent {
		if p == i {
			out = append(out, f.size[i])
		}
	}

	return out
}

// NumComponents returns the number of roots.
func (f *Forest) NumComponents() int {
	c := 0
	for i, p := range f.parent {
		if p == i {
			c++
		}
	}

	return c
}

func (f *Forest) check(x int) {
	if x < 0 || x >= len(f.parent) {
		panic(fmt.Sprintf("disjointset: index %d out of range [0, %d)", x, len(f.parent)))
	}
}
