package incidence_test

import (
	"testing"

	"github.com/finitegeom/quadric/gf"
	"github.com/finitegeom/quadric/incidence"
	"github.com/finitegeom/quadric/symplectic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, q int) *incidence.Graph {
	t.Helper()
	f, err := gf.NewField(q)
	require.NoError(t, err)
	s, err := symplectic.NewSpace(f, 4, symplectic.StandardForm(4))
	require.NoError(t, err)
	g, err := incidence.Build(s)
	require.NoError(t, err)

	return g
}

// TestBuild_Canonical verifies the (q=3,d=4) graph: 40 vertices, 240 edges,
// 12-regular, with coordinates attached.
func TestBuild_Canonical(t *testing.T) {
	g := buildGraph(t, 3)

	assert.Equal(t, 40, g.VertexCount())
	assert.Equal(t, 240, g.EdgeCount())
	assert.Equal(t, 3, g.Modulus())
	assert.Equal(t, 4, g.Dim())

	for v := 0; v < g.VertexCount(); v++ {
		deg, err := g.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 12, deg, "vertex %d", v)
	}

	assert.Equal(t, []int{0, 0, 0, 1}, g.Point(0), "lexicographically first point")
	assert.Nil(t, g.Point(40), "out of range yields nil")
}

// TestBuild_VertexCountFormula checks (q^4−1)/(q−1) at q ∈ {2,5,7}.
func TestBuild_VertexCountFormula(t *testing.T) {
	for _, tc := range []struct{ q, want int }{{2, 15}, {5, 156}, {7, 400}} {
		g := buildGraph(t, tc.q)
		assert.Equal(t, tc.want, g.VertexCount(), "q=%d", tc.q)
	}
}

// TestBuild_Deterministic rebuilds the canonical graph and compares adjacency
// fingerprints: identical parameters must give bitwise-identical adjacency.
func TestBuild_Deterministic(t *testing.T) {
	a := buildGraph(t, 3)
	b := buildGraph(t, 3)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

// TestBuild_NilSpace verifies the nil guard.
func TestBuild_NilSpace(t *testing.T) {
	_, err := incidence.Build(nil)
	assert.ErrorIs(t, err, incidence.ErrNilSpace)
}

// TestNew_Validation covers bare-graph construction errors.
func TestNew_Validation(t *testing.T) {
	_, err := incidence.New(0, nil)
	assert.ErrorIs(t, err, incidence.ErrBadOrder)

	_, err = incidence.New(3, [][2]int{{0, 3}})
	assert.ErrorIs(t, err, incidence.ErrVertexRange)

	_, err = incidence.New(3, [][2]int{{1, 1}})
	assert.ErrorIs(t, err, incidence.ErrSelfLoop)
}

// TestNew_Queries exercises adjacency, neighbors and common neighbors on a
// small hand-built graph (a 4-cycle plus one chord).
func TestNew_Queries(t *testing.T) {
	g, err := incidence.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {0, 2}})
	require.NoError(t, err)

	assert.Equal(t, 5, g.EdgeCount(), "duplicate edges collapse")
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(1, 3))
	assert.False(t, g.HasEdge(1, 1))

	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, nb)

	cnt, err := g.CommonNeighborCount(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, cnt, "0 and 2 neighbor both")

	common, err := g.CommonNeighbors([]int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, common)

	assert.Nil(t, g.Point(0), "bare graphs carry no coordinates")
	assert.Zero(t, g.Modulus())

	_, err = g.Neighbors(9)
	assert.ErrorIs(t, err, incidence.ErrVertexRange)
	_, err = g.CommonNeighbors([]int{0, 9})
	assert.ErrorIs(t, err, incidence.ErrVertexRange)
}

// TestAdjacencyDense verifies the gonum export is symmetric 0/1 with row sums
// equal to degrees.
func TestAdjacencyDense(t *testing.T) {
	g := buildGraph(t, 2)
	n := g.VertexCount()
	dense := g.AdjacencyDense()
	require.Len(t, dense, n*n)

	for u := 0; u < n; u++ {
		sum := 0.0
		for v := 0; v < n; v++ {
			assert.Equal(t, dense[u*n+v], dense[v*n+u])
			sum += dense[u*n+v]
		}
		deg, err := g.Degree(u)
		require.NoError(t, err)
		assert.Equal(t, float64(deg), sum, "row %d", u)
	}
}
