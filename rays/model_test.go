package rays_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/finitegeom/quadric/gf"
	"github.com/finitegeom/quadric/incidence"
	"github.com/finitegeom/quadric/rays"
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

func buildModel(t *testing.T) *rays.Model {
	t.Helper()
	m, err := rays.NewModel(buildGraph(t, 3))
	require.NoError(t, err)

	return m
}

// TestNewModel_Canonical builds the forty-ray model and re-checks the
// contract from the outside: unit rays, inner-product magnitude zero on the
// 240 edges and 1/3 on the 540 non-edges.
func TestNewModel_Canonical(t *testing.T) {
	m := buildModel(t)
	g := m.Graph()
	require.Equal(t, 40, m.VertexCount())

	for v := 0; v < m.VertexCount(); v++ {
		ray, err := m.Ray(v)
		require.NoError(t, err)
		require.Len(t, ray, 4)
		norm := 0.0
		for _, z := range ray {
			norm += real(z)*real(z) + imag(z)*imag(z)
		}
		assert.InDelta(t, 1.0, norm, 1e-12, "ray %d not unit", v)
	}

	zeros, thirds := 0, 0
	for u := 0; u < m.VertexCount(); u++ {
		for v := u + 1; v < m.VertexCount(); v++ {
			ip, err := m.InnerProduct(u, v)
			require.NoError(t, err)
			mag := real(ip)*real(ip) + imag(ip)*imag(ip)
			if g.HasEdge(u, v) {
				assert.InDelta(t, 0.0, mag, 1e-9, "edge (%d,%d)", u, v)
				zeros++
			} else {
				assert.InDelta(t, m.NonEdgeMagnitude(), mag, 1e-9, "non-edge (%d,%d)", u, v)
				thirds++
			}
		}
	}
	assert.Equal(t, 240, zeros)
	assert.Equal(t, 540, thirds)
}

// TestNewModel_AnchorBasis checks that the four anchor points map to the
// standard basis of C⁴.
func TestNewModel_AnchorBasis(t *testing.T) {
	m := buildModel(t)
	g := m.Graph()

	want := map[[4]int]int{
		{0, 0, 0, 1}: 0,
		{0, 1, 0, 0}: 1,
		{0, 1, 0, 1}: 2,
		{0, 1, 0, 2}: 3,
	}
	seen := 0
	for v := 0; v < g.VertexCount(); v++ {
		var key [4]int
		copy(key[:], g.Point(v))
		slot, ok := want[key]
		if !ok {
			continue
		}
		seen++
		ray, err := m.Ray(v)
		require.NoError(t, err)
		for k, z := range ray {
			if k == slot {
				assert.InDelta(t, 0.0, cmplx.Abs(z-1), 1e-12)
			} else {
				assert.InDelta(t, 0.0, cmplx.Abs(z), 1e-12)
			}
		}
	}
	assert.Equal(t, 4, seen, "anchor line present")
}

// TestNewModel_RayIsolation verifies Ray hands out copies.
func TestNewModel_RayIsolation(t *testing.T) {
	m := buildModel(t)

	ray, err := m.Ray(7)
	require.NoError(t, err)
	ray[0] = complex(math.Inf(1), 0)

	again, err := m.Ray(7)
	require.NoError(t, err)
	assert.False(t, math.IsInf(real(again[0]), 1), "internal ray mutated")
}

// TestNewModel_UnsupportedGeometry rejects graphs outside (q=3, d=4) and
// bare graphs without coordinates.
func TestNewModel_UnsupportedGeometry(t *testing.T) {
	_, err := rays.NewModel(buildGraph(t, 5))
	assert.ErrorIs(t, err, rays.ErrUnsupportedGeometry)

	bare, err := incidence.New(3, [][2]int{{0, 1}})
	require.NoError(t, err)
	_, err = rays.NewModel(bare)
	assert.ErrorIs(t, err, rays.ErrUnsupportedGeometry)

	_, err = rays.NewModel(nil)
	assert.ErrorIs(t, err, rays.ErrNilGraph)
}

// TestModel_IndexGuards covers the vertex-range sentinels.
func TestModel_IndexGuards(t *testing.T) {
	m := buildModel(t)

	_, err := m.Ray(40)
	assert.ErrorIs(t, err, rays.ErrVertexRange)
	_, err = m.InnerProduct(0, -1)
	assert.ErrorIs(t, err, rays.ErrVertexRange)
}

// TestWithEpsilon_Panics verifies the option guard.
func TestWithEpsilon_Panics(t *testing.T) {
	assert.Panics(t, func() { rays.WithEpsilon(0) })
}
