package edges

import (
	"fmt"
	"math"
)

// Edge is an unordered pair of point indices with its cached Euclidean weight.
// Enumerate always produces U < V.
type Edge struct {
	// U is the lower endpoint index.
	U int

	// V is the higher endpoint index.
	V int

	// Weight is the Euclidean distance between points U and V.
	Weight float64
}

// String renders e as "u-v (weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d (%.4f)", e.U, e.V, e.Weight)
}

// CompareWeight orders two weights ascending and returns -1, 0 or +1.
// If either weight is NaN the natural order is undefined and the weights
// compare equal.
func CompareWeight(a, b float64) int {
	if math.IsNaN(a) || math.IsNaN(b) {
		return 0
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ByWeight is a gods utils.Comparator over Edge values ordered by CompareWeight.
// It panics if either argument is not an Edge.
func ByWeight(a, b interface{}) int {
	return CompareWeight(a.(Edge).Weight, b.(Edge).Weight)
}
