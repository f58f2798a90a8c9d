package verify

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/finitegeom/quadric/incidence"
)

// ErrEigenFailed indicates the symmetric eigen factorization did not converge.
var ErrEigenFailed = errors.New("verify: eigen decomposition failed")

// spectrumOf computes the adjacency spectrum with multiplicities.
//
// Numeric path: gonum EigenSym on the 0/1 adjacency matrix; eigenvalues are
// sorted descending and grouped into clusters whenever consecutive values lie
// within eps — the only numeric tolerance in this package. Exact path: when
// the SRG quadratic x²−(λ−μ)x−(k−μ) for the expected parameters has a
// perfect-square discriminant and yields integral multiplicities, the integer
// spectrum {k¹, r^f, s^g} is derived exactly and compared against the
// clusters; any disagreement is reported as a spectrum mismatch.
func spectrumOf(g *incidence.Graph, expect Params, eps float64) ([]Eigenvalue, []Mismatch, error) {
	n := g.VertexCount()

	// Stage 1: numeric eigenvalues.
	sym := mat.NewSymDense(n, g.AdjacencyDense())
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return nil, nil, ErrEigenFailed
	}
	vals := eig.Values(nil)
	sort.Sort(sort.Reverse(sort.Float64Slice(vals)))

	// Stage 2: cluster within eps into (value, multiplicity) lines.
	var spectrum []Eigenvalue
	for i := 0; i < n; {
		j := i + 1
		sum := vals[i]
		for j < n && vals[j-1]-vals[j] <= eps {
			sum += vals[j]
			j++
		}
		spectrum = append(spectrum, Eigenvalue{Value: sum / float64(j-i), Multiplicity: j - i})
		i = j
	}

	// Stage 3: exact SRG cross-check when the parameters admit one.
	exact, ok := exactSRGSpectrum(n, expect)
	if !ok {
		return spectrum, nil, nil
	}
	var mismatches []Mismatch
	if len(exact) != len(spectrum) {
		mismatches = append(mismatches, Mismatch{
			Kind: MismatchSpectrum, U: -1, V: -1,
			Got: float64(len(spectrum)), Want: float64(len(exact)),
			Note: "distinct eigenvalue count differs from exact SRG spectrum",
		})

		return spectrum, mismatches, nil
	}
	for i, line := range spectrum {
		if math.Abs(line.Value-exact[i].Value) > eps || line.Multiplicity != exact[i].Multiplicity {
			mismatches = append(mismatches, Mismatch{
				Kind: MismatchSpectrum, U: -1, V: -1,
				Got: line.Value, Want: exact[i].Value,
				Note: fmt.Sprintf("eigenvalue line %d: got multiplicity %d, want %d",
					i, line.Multiplicity, exact[i].Multiplicity),
			})
		}
	}

	return spectrum, mismatches, nil
}

// exactSRGSpectrum derives the integer spectrum of SRG(v,k,λ,μ) when it
// exists: eigenvalues r,s = ((λ−μ) ± √Δ)/2 with Δ = (λ−μ)² + 4(k−μ), and
// multiplicities f,g = ((v−1) ∓ (2k+(v−1)(λ−μ))/√Δ)/2. Returns ok=false
// when Δ is not a perfect square or the multiplicities are not non-negative
// integers — the numeric path then stands alone.
func exactSRGSpectrum(v int, p Params) ([]Eigenvalue, bool) {
	if v < 2 || p.Mu <= 0 {
		return nil, false
	}
	diff := p.Lambda - p.Mu
	disc := diff*diff + 4*(p.K-p.Mu)
	if disc <= 0 {
		return nil, false
	}
	root := int(math.Round(math.Sqrt(float64(disc))))
	if root*root != disc {
		return nil, false
	}

	r := (diff + root) / 2
	s := (diff - root) / 2
	if (diff+root)%2 != 0 {
		return nil, false
	}

	num := 2*p.K + (v-1)*diff
	if num%root != 0 || ((v-1)-num/root)%2 != 0 {
		return nil, false
	}
	f := ((v - 1) - num/root) / 2 // multiplicity of r
	g := (v - 1) - f              // multiplicity of s
	if f < 0 || g < 0 {
		return nil, false
	}

	return []Eigenvalue{
		{Value: float64(p.K), Multiplicity: 1},
		{Value: float64(r), Multiplicity: f},
		{Value: float64(s), Multiplicity: g},
	}, true
}
