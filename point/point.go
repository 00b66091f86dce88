// Package point defines the 3-D integer point used throughout lvcluster,
// its Euclidean metric, and a line-oriented reader for "x,y,z" records.
//
// A Point carries no identity of its own: callers refer to points by their
// index in the slice returned by Read, and every edge and component index
// downstream is an index into that slice.
//
// Errors:
//
//	ErrEmptyLine      - the record is blank after trimming.
//	ErrFieldCount     - the record does not have exactly three fields.
//	ErrBadCoordinate  - a field is not a non-negative 32-bit integer.
package point

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Parse. Read skips records that fail with any of them.
var (
	// ErrEmptyLine indicates a blank record.
	ErrEmptyLine = errors.New("point: empty line")

	// ErrFieldCount indicates a record that is not exactly "x,y,z".
	ErrFieldCount = errors.New("point: expected three comma-separated fields")

	// ErrBadCoordinate indicates a field that is not a non-negative integer.
	ErrBadCoordinate = errors.New("point: coordinate must be a non-negative integer")
)

// Point is an immutable position in 3-D integer space.
// Coordinates are non-negative and fit in 32 bits.
type Point struct {
	X int
	Y int
	Z int
}

// New returns the point (x, y, z).
func New(x, y, z int) Point {
	return Point{X: x, Y: y, Z: z}
}

// String renders p in its input form "x,y,z".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Distance returns the Euclidean distance between p and q.
// The squared differences are accumulated in float64, so coordinates up to
// 2^32 cannot overflow.
// Complexity: O(1).
func Distance(p, q Point) float64 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)
	dz := float64(p.Z) - float64(q.Z)

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
