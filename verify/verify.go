package verify

import (
	"errors"

	"github.com/finitegeom/quadric/incidence"
)

// ErrNilGraph indicates a nil graph passed to Verify.
var ErrNilGraph = errors.New("verify: graph is nil")

// Verify audits g against the expected SRG parameters and returns the full
// Report. Construction-layer errors are returned as errors; invariant
// findings are never errors — they accumulate in Report.Mismatches.
// Complexity: O(n²·w) for the pair sweep (w = bitset row words),
// O(n³) for the spectrum, search-budget bounded for automorphisms.
func Verify(g *incidence.Graph, expect Params, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := gatherOptions(opts...)

	n := g.VertexCount()
	rep := &Report{
		VertexCount: n,
		EdgeCount:   g.EdgeCount(),
		Params:      expect,
	}

	// Stage 1: degree audit — accumulate every deviation, never abort early.
	for v := 0; v < n; v++ {
		deg, err := g.Degree(v)
		if err != nil {
			return nil, err
		}
		if deg != expect.K {
			rep.Mismatches = append(rep.Mismatches, Mismatch{
				Kind: MismatchDegree, U: v, V: -1,
				Got: float64(deg), Want: float64(expect.K),
			})
		}
	}

	// Stage 2: λ/μ audit over every unordered distinct pair.
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			common, err := g.CommonNeighborCount(u, v)
			if err != nil {
				return nil, err
			}
			kind, want := MismatchMu, expect.Mu
			if g.HasEdge(u, v) {
				kind, want = MismatchLambda, expect.Lambda
			}
			if common != want {
				rep.Mismatches = append(rep.Mismatches, Mismatch{
					Kind: kind, U: u, V: v,
					Got: float64(common), Want: float64(want),
				})
			}
		}
	}

	// Stage 3: spectrum — numeric clustering plus exact SRG cross-check.
	spectrum, specMismatches, err := spectrumOf(g, expect, o.eps)
	if err != nil {
		return nil, err
	}
	rep.Spectrum = spectrum
	rep.Mismatches = append(rep.Mismatches, specMismatches...)

	// Stage 4: optional automorphism search.
	if o.searchAut {
		rep.Automorphisms = countAutomorphisms(g, o.autBudget)
	}

	return rep, nil
}
