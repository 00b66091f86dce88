package cluster_test

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcluster/cluster"
	"github.com/katalvlaran/lvcluster/point"
)

// reference returns the 20-point sample with known answers:
// BoundedMerge(10) = 40 and FullConnectivity() = 25272.
func reference() []point.Point {
	return []point.Point{
		point.New(162, 817, 812), point.New(57, 618, 57), point.New(906, 360, 560),
		point.New(592, 479, 940), point.New(352, 342, 300), point.New(466, 668, 158),
		point.New(542, 29, 236), point.New(431, 825, 988), point.New(739, 650, 466),
		point.New(52, 470, 668), point.New(216, 146, 977), point.New(819, 987, 18),
		point.New(117, 168, 530), point.New(805, 96, 715), point.New(346, 949, 466),
		point.New(970, 615, 88), point.New(941, 993, 340), point.New(862, 61, 35),
		point.New(984, 92, 344), point.New(425, 690, 689),
	}
}

// randomPoints draws n points in a 1000³ cube from a fixed seed.
func randomPoints(seed int64, n int) []point.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]point.Point, n)
	for i := range pts {
		pts[i] = point.New(r.Intn(1000), r.Intn(1000), r.Intn(1000))
	}

	return pts
}

// primBottleneck returns the heaviest MST edge weight via dense O(n²) Prim,
// independent of the heap and forest under test.
func primBottleneck(pts []point.Point) float64 {
	n := len(pts)
	in := make([]bool, n)
	best := make([]float64, n)
	for i := range best {
		best[i] = math.Inf(1)
	}
	best[0] = 0

	heaviest := 0.0
	for it := 0; it < n; it++ {
		u := -1
		for v := 0; v < n; v++ {
			if !in[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}
		in[u] = true
		heaviest = math.Max(heaviest, best[u])
		for v := 0; v < n; v++ {
			if d := point.Distance(pts[u], pts[v]); !in[v] && d < best[v] {
				best[v] = d
			}
		}
	}

	return heaviest
}

func TestBoundedMerge_Reference(t *testing.T) {
	a := cluster.New(reference())
	require.Equal(t, 20, a.Points())
	require.Equal(t, 190, a.Edges())

	got, err := a.BoundedMerge(10)
	require.NoError(t, err)
	assert.Equal(t, 40, got)

	sizes, err := a.ComponentSizesAfter(10)
	require.NoError(t, err)
	assert.Len(t, sizes, 11)
	assert.Equal(t, []int{5, 4, 2, 2}, sizes[:4])
}

func TestBoundedMerge_ExhaustsEdges(t *testing.T) {
	a := cluster.New(reference())

	got, err := a.BoundedMerge(1000)
	require.NoError(t, err)
	// Every one of the 190 edges is consumed, leaving a single component of 20.
	assert.Equal(t, 20, got)

	sizes, err := a.ComponentSizesAfter(1000)
	require.NoError(t, err)
	assert.Equal(t, []int{20}, sizes)
}

func TestBoundedMerge_Zero(t *testing.T) {
	a := cluster.New(reference())

	sizes, err := a.ComponentSizesAfter(0)
	require.NoError(t, err)
	assert.Len(t, sizes, 20)
	for _, s := range sizes {
		assert.Equal(t, 1, s)
	}

	got, err := a.BoundedMerge(0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestBoundedMerge_NegativeK(t *testing.T) {
	_, err := cluster.New(reference()).BoundedMerge(-1)
	assert.ErrorIs(t, err, cluster.ErrNegativeMergeCount)
}

// TestBoundedMerge_CountsAttempts uses three collinear points where the third
// cheapest edge closes a cycle: k=3 must leave the same partition as k=2.
func TestBoundedMerge_CountsAttempts(t *testing.T) {
	pts := []point.Point{point.New(0, 0, 0), point.New(1, 0, 0), point.New(3, 0, 0), point.New(100, 0, 0)}
	a := cluster.New(pts)

	two, err := a.ComponentSizesAfter(2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, two)

	// Edges by weight: 0-1 (1), 1-2 (2), 0-2 (3). The third pop is a no-op.
	three, err := a.ComponentSizesAfter(3)
	require.NoError(t, err)
	assert.Equal(t, two, three)

	four, err := a.ComponentSizesAfter(4)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, four)
}

func TestBoundedMerge_Top(t *testing.T) {
	tests := []struct {
		top  int
		want int
	}{
		{top: 1, want: 5},
		{top: 2, want: 20},
		{top: 3, want: 40},
		{top: 4, want: 80},
	}
	for _, tt := range tests {
		got, err := cluster.New(reference(), cluster.WithTop(tt.top)).BoundedMerge(10)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "top=%d", tt.top)
	}
}

func TestBoundedMerge_SmallSets(t *testing.T) {
	tests := []struct {
		name string
		pts  []point.Point
		k    int
		want int
	}{
		{name: "empty", pts: nil, k: 10, want: 1},
		{name: "single", pts: []point.Point{point.New(1, 1, 1)}, k: 10, want: 1},
		{name: "pair merged", pts: []point.Point{point.New(1, 1, 1), point.New(2, 2, 2)}, k: 1, want: 2},
		{name: "pair apart", pts: []point.Point{point.New(1, 1, 1), point.New(2, 2, 2)}, k: 0, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cluster.New(tt.pts).BoundedMerge(tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFullConnectivity_Reference(t *testing.T) {
	a := cluster.New(reference())
	assert.Equal(t, uint64(25272), a.FullConnectivity())

	b, ok := a.Bottleneck()
	require.True(t, ok)
	assert.Equal(t, 10, b.Edge.U)
	assert.Equal(t, 12, b.Edge.V)
	assert.Equal(t, point.New(216, 146, 977), b.From)
	assert.Equal(t, point.New(117, 168, 530), b.To)
	assert.GreaterOrEqual(t, b.Popped, 19)
	assert.LessOrEqual(t, b.Popped, 190)
}

func TestFullConnectivity_Repeatable(t *testing.T) {
	a := cluster.New(reference())
	first := a.FullConnectivity()
	_, _ = a.BoundedMerge(10)
	assert.Equal(t, first, a.FullConnectivity())
}

func TestFullConnectivity_Degenerate(t *testing.T) {
	assert.Zero(t, cluster.New(nil).FullConnectivity())
	assert.Zero(t, cluster.New([]point.Point{point.New(7, 8, 9)}).FullConnectivity())

	_, ok := cluster.New(nil).Bottleneck()
	assert.False(t, ok)
}

func TestFullConnectivity_Pair(t *testing.T) {
	a := cluster.New([]point.Point{point.New(3, 0, 0), point.New(11, 5, 5)})
	assert.Equal(t, uint64(33), a.FullConnectivity())

	b, ok := a.Bottleneck()
	require.True(t, ok)
	assert.Equal(t, 1, b.Popped)
}

func TestFullConnectivity_MaxCoordinates(t *testing.T) {
	pts := make([]point.Point, 0, 2)
	for _, line := range []string{"4294967295,0,0", "4000000000,1,1"} {
		p, err := point.Parse(line)
		require.NoError(t, err)
		pts = append(pts, p)
	}

	a := cluster.New(pts)
	assert.Equal(t, uint64(17179869180000000000), a.FullConnectivity())

	b, ok := a.Bottleneck()
	require.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint32)*4000000000, b.Product())
}

func TestFullConnectivity_DuplicatePoints(t *testing.T) {
	pts := []point.Point{point.New(4, 4, 4), point.New(4, 4, 4), point.New(4, 4, 4)}
	assert.Equal(t, uint64(16), cluster.New(pts).FullConnectivity())
}

// TestBottleneck_MatchesPrim cross-checks the bottleneck weight against an
// independent dense Prim on random inputs.
func TestBottleneck_MatchesPrim(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		pts := randomPoints(seed, 40)
		b, ok := cluster.New(pts).Bottleneck()
		require.True(t, ok)
		assert.InDelta(t, primBottleneck(pts), b.Edge.Weight, 1e-9, "seed %d", seed)
	}
}

func TestBoundedMerge_AllEdgesConnects(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17} {
		a := cluster.New(randomPoints(int64(n), n))
		sizes, err := a.ComponentSizesAfter(a.Edges())
		require.NoError(t, err)
		assert.Equal(t, []int{n}, sizes, "n=%d", n)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	a := cluster.New(reference(), cluster.WithLogger(l))
	_, _ = a.BoundedMerge(10)
	_ = a.FullConnectivity()

	out := buf.String()
	assert.Contains(t, out, "enumerated edges")
	assert.Contains(t, out, "bounded merge")
	assert.Contains(t, out, "full connectivity")
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { cluster.WithTop(0) })
	assert.Panics(t, func() { cluster.WithLogger(nil) })
	assert.Panics(t, func() { cluster.WithMetrics(nil) })
}

func TestNew_CopiesPoints(t *testing.T) {
	pts := []point.Point{point.New(3, 0, 0), point.New(11, 5, 5)}
	a := cluster.New(pts)
	pts[0] = point.New(1000, 0, 0)
	assert.Equal(t, uint64(33), a.FullConnectivity())
}
