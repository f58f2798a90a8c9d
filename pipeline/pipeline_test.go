package pipeline_test

import (
	"testing"

	"github.com/finitegeom/quadric/gf"
	"github.com/finitegeom/quadric/pipeline"
	"github.com/finitegeom/quadric/verify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_Canonical drives the full pipeline at (q=3, d=4) and checks the
// whole census: SRG(40,12,2,4) with no mismatches, spectrum 12¹ 2²⁴ (−4)¹⁵,
// 40 cliques, 160 triangles, 90 components, and a holonomy census putting
// every component cycle at residue 3 of 6.
func TestRun_Canonical(t *testing.T) {
	report, err := pipeline.Run(pipeline.Config{Q: 3})
	require.NoError(t, err)

	assert.True(t, report.OK(), "mismatches: %v", report.Mismatches)
	assert.Equal(t, 40, report.VertexCount)
	assert.Equal(t, 240, report.EdgeCount)
	assert.Equal(t, verify.Params{K: 12, Lambda: 2, Mu: 4}, report.SRG)

	require.Len(t, report.Spectrum, 3)
	assert.InDelta(t, 12, report.Spectrum[0].Value, 1e-9)
	assert.Equal(t, 1, report.Spectrum[0].Multiplicity)
	assert.InDelta(t, 2, report.Spectrum[1].Value, 1e-9)
	assert.Equal(t, 24, report.Spectrum[1].Multiplicity)
	assert.InDelta(t, -4, report.Spectrum[2].Value, 1e-9)
	assert.Equal(t, 15, report.Spectrum[2].Multiplicity)

	assert.Equal(t, 4, report.TargetCliqueSize)
	assert.Equal(t, 40, report.CliqueCount)
	assert.Equal(t, 160, report.TriangleCount)
	assert.Len(t, report.Components, 90)

	assert.True(t, report.RayModelBuilt)
	assert.Equal(t, map[int]int{3: 90}, report.Holonomy)
	assert.Zero(t, report.ExcludedCycles)
}

// TestRun_SmallField covers q=2: the ray stage is skipped, everything else
// verifies as SRG(15,6,1,3).
func TestRun_SmallField(t *testing.T) {
	report, err := pipeline.Run(pipeline.Config{Q: 2})
	require.NoError(t, err)

	assert.True(t, report.OK(), "mismatches: %v", report.Mismatches)
	assert.Equal(t, 15, report.VertexCount)
	assert.Equal(t, verify.Params{K: 6, Lambda: 1, Mu: 3}, report.SRG)
	assert.Equal(t, 15, report.CliqueCount)
	assert.Equal(t, 15, report.TriangleCount)
	assert.Len(t, report.Components, 20)

	assert.False(t, report.RayModelBuilt)
	assert.Nil(t, report.Holonomy)
}

// TestRun_MediumField drives the full pipeline at q=5 — 156 vertices,
// SRG(156,30,4,6) — and expects a complete report: 156 maximal 6-cliques,
// 3120 triangles, 650 components, ray stage skipped.
func TestRun_MediumField(t *testing.T) {
	report, err := pipeline.Run(pipeline.Config{Q: 5})
	require.NoError(t, err)

	assert.True(t, report.OK(), "mismatches: %v", report.Mismatches)
	assert.Equal(t, 156, report.VertexCount)
	assert.Equal(t, 2340, report.EdgeCount)
	assert.Equal(t, verify.Params{K: 30, Lambda: 4, Mu: 6}, report.SRG)
	assert.Equal(t, 6, report.TargetCliqueSize)
	assert.Equal(t, 156, report.CliqueCount)
	assert.Equal(t, 3120, report.TriangleCount)
	assert.Len(t, report.Components, 650)
	assert.False(t, report.RayModelBuilt)
}

// TestRun_Automorphisms enables the search at q=2; the collinearity graph of
// GQ(2,2) has the symmetric group S₆ as automorphisms, order 720.
func TestRun_Automorphisms(t *testing.T) {
	report, err := pipeline.Run(pipeline.Config{Q: 2, SearchAutomorphisms: true})
	require.NoError(t, err)

	require.NotNil(t, report.Automorphisms)
	assert.True(t, report.Automorphisms.Exact)
	assert.Equal(t, uint64(720), report.Automorphisms.Order)
}

// TestRun_Deterministic compares the adjacency fingerprints of two runs.
func TestRun_Deterministic(t *testing.T) {
	a, err := pipeline.Run(pipeline.Config{Q: 3})
	require.NoError(t, err)
	b, err := pipeline.Run(pipeline.Config{Q: 3})
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint, b.Fingerprint)
	assert.Equal(t, a.Holonomy, b.Holonomy)
}

// TestExpectedParams checks the closed form at several (q, dim) pairs.
func TestExpectedParams(t *testing.T) {
	assert.Equal(t, verify.Params{K: 12, Lambda: 2, Mu: 4}, pipeline.ExpectedParams(3, 4))
	assert.Equal(t, verify.Params{K: 6, Lambda: 1, Mu: 3}, pipeline.ExpectedParams(2, 4))
	assert.Equal(t, verify.Params{K: 30, Lambda: 4, Mu: 6}, pipeline.ExpectedParams(5, 4))
	assert.Equal(t, verify.Params{K: 120, Lambda: 38, Mu: 40}, pipeline.ExpectedParams(3, 6))
}

// TestRun_ConfigErrors covers field and tuning rejections.
func TestRun_ConfigErrors(t *testing.T) {
	_, err := pipeline.Run(pipeline.Config{Q: 4})
	assert.ErrorIs(t, err, gf.ErrNonPrimeModulus)

	_, err = pipeline.Run(pipeline.Config{Q: 3, PhaseModulus: 1})
	assert.ErrorIs(t, err, pipeline.ErrBadConfig)

	_, err = pipeline.Run(pipeline.Config{Q: 3, Epsilon: -1})
	assert.ErrorIs(t, err, pipeline.ErrBadConfig)

	_, err = pipeline.Run(pipeline.Config{Q: 3, Dim: 3})
	assert.Error(t, err)
}
