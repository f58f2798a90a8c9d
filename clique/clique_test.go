package clique_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/finitegeom/quadric/clique"
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

// TestCliques_Canonical verifies the 40 maximal 4-cliques of the (q=3,d=4)
// graph: each one ascending, pairwise adjacent, and admitting no extension.
func TestCliques_Canonical(t *testing.T) {
	g := buildGraph(t, 3)

	cliques, err := clique.Cliques(g, 4)
	require.NoError(t, err)
	assert.Len(t, cliques, 40)

	for _, set := range cliques {
		require.Len(t, set, 4)
		assert.True(t, sort.IntsAreSorted(set), "clique %v", set)
		for i := 0; i < len(set); i++ {
			for j := i + 1; j < len(set); j++ {
				assert.True(t, g.HasEdge(set[i], set[j]), "clique %v", set)
			}
		}
		ext, err := g.CommonNeighbors(set)
		require.NoError(t, err)
		assert.Empty(t, ext, "clique %v extends", set)
	}
}

// TestCliques_EachVertexOnFourLines checks the GQ(3,3) line count per point:
// every vertex lies on exactly q+1 = 4 maximal 4-cliques.
func TestCliques_EachVertexOnFourLines(t *testing.T) {
	g := buildGraph(t, 3)

	cliques, err := clique.Cliques(g, 4)
	require.NoError(t, err)

	perVertex := make([]int, g.VertexCount())
	for _, set := range cliques {
		for _, v := range set {
			perVertex[v]++
		}
	}
	for v, c := range perVertex {
		assert.Equal(t, 4, c, "vertex %d", v)
	}
}

// TestCliques_SmallField covers q=2: 15 maximal 3-cliques, and no maximal
// clique of size 4 at all.
func TestCliques_SmallField(t *testing.T) {
	g := buildGraph(t, 2)

	triples, err := clique.Cliques(g, 3)
	require.NoError(t, err)
	assert.Len(t, triples, 15)

	quads, err := clique.Cliques(g, 4)
	require.NoError(t, err)
	assert.Empty(t, quads)
}

// TestCliques_Validation covers the nil and size guards.
func TestCliques_Validation(t *testing.T) {
	_, err := clique.Cliques(nil, 4)
	assert.ErrorIs(t, err, clique.ErrNilGraph)

	g := buildGraph(t, 2)
	_, err = clique.Cliques(g, 1)
	assert.ErrorIs(t, err, clique.ErrSizeRange)
}

// TestTriangles counts triangles against the SRG identity v·k·λ/6:
// 160 for q=3 and 15 for q=2.
func TestTriangles(t *testing.T) {
	for _, tc := range []struct{ q, want int }{{3, 160}, {2, 15}} {
		g := buildGraph(t, tc.q)
		got, err := clique.Triangles(g)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "q=%d", tc.q)
	}

	_, err := clique.Triangles(nil)
	assert.ErrorIs(t, err, clique.ErrNilGraph)
}

// TestComponents_Canonical verifies the 90 K-components of the (q=3,d=4)
// graph: outer and center are disjoint 4-co-cliques, the center is the
// common-neighbor closure of the outer, and closure is an involution.
func TestComponents_Canonical(t *testing.T) {
	g := buildGraph(t, 3)

	comps, err := clique.Components(g, 4)
	require.NoError(t, err)
	assert.Len(t, comps, 90)

	outerSet := make(map[[4]int]int, len(comps))
	for i, c := range comps {
		var key [4]int
		copy(key[:], c.Outer)
		outerSet[key] = i
	}

	for _, c := range comps {
		require.Len(t, c.Outer, 4)
		require.Len(t, c.Center, 4)

		for i := 0; i < 4; i++ {
			for j := i + 1; j < 4; j++ {
				assert.False(t, g.HasEdge(c.Outer[i], c.Outer[j]), "outer %v", c.Outer)
				assert.False(t, g.HasEdge(c.Center[i], c.Center[j]), "center %v", c.Center)
			}
		}

		for _, u := range c.Outer {
			for _, v := range c.Center {
				assert.NotEqual(t, u, v, "outer/center overlap")
				assert.True(t, g.HasEdge(u, v), "center vertex %d misses outer %d", v, u)
			}
		}

		// Involution: the center is the outer of another component, and its
		// center is the original outer.
		var key [4]int
		copy(key[:], c.Center)
		idx, ok := outerSet[key]
		require.True(t, ok, "center %v is not an outer", c.Center)
		assert.Equal(t, c.Outer, comps[idx].Center)
	}
}

// TestComponents_SmallField covers q=2: 20 K-components at size 3.
func TestComponents_SmallField(t *testing.T) {
	g := buildGraph(t, 2)

	comps, err := clique.Components(g, 3)
	require.NoError(t, err)
	assert.Len(t, comps, 20)
}

// TestComponents_MediumField covers q=5: 650 K-components at size 6 over
// 156 vertices — the 650 hyperbolic lines of PG(3,5) — with the involution
// intact. The count doubles as a guard that the enumeration stays flat in
// memory instead of materializing every 6-co-clique of the graph.
func TestComponents_MediumField(t *testing.T) {
	g := buildGraph(t, 5)

	comps, err := clique.Components(g, 6)
	require.NoError(t, err)
	require.Len(t, comps, 650)

	outerSet := make(map[string]bool, len(comps))
	for _, c := range comps {
		outerSet[fmt.Sprint(c.Outer)] = true
	}
	for _, c := range comps {
		assert.True(t, outerSet[fmt.Sprint(c.Center)], "center %v is not an outer", c.Center)
	}
}

// TestComponents_NoneIsValid asks for a size with no components and expects
// an empty slice, not an error.
func TestComponents_NoneIsValid(t *testing.T) {
	g := buildGraph(t, 3)

	comps, err := clique.Components(g, 5)
	require.NoError(t, err)
	assert.Empty(t, comps)
}

// TestComponents_Validation covers the nil and size guards.
func TestComponents_Validation(t *testing.T) {
	_, err := clique.Components(nil, 4)
	assert.ErrorIs(t, err, clique.ErrNilGraph)

	g := buildGraph(t, 3)
	_, err = clique.Components(g, 0)
	assert.ErrorIs(t, err, clique.ErrSizeRange)
}
