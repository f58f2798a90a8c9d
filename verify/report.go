package verify

// Params is an expected strongly-regular parameter set: degree K, common
// neighbors of adjacent pairs Lambda, of non-adjacent pairs Mu.
type Params struct {
	K      int
	Lambda int
	Mu     int
}

// MismatchKind names the invariant a Mismatch violates.
type MismatchKind string

// Mismatch kinds.
const (
	MismatchDegree   MismatchKind = "degree"
	MismatchLambda   MismatchKind = "lambda"
	MismatchMu       MismatchKind = "mu"
	MismatchSpectrum MismatchKind = "spectrum"
)

// Mismatch is one accumulated invariant violation. U is the vertex (V = −1)
// for degree mismatches, and the pair (U,V) for λ/μ mismatches; spectrum
// mismatches use U = V = −1 and describe themselves in Note.
type Mismatch struct {
	Kind MismatchKind
	U, V int
	Got  float64
	Want float64
	Note string
}

// Eigenvalue is one spectral line: a clustered eigenvalue and its multiplicity.
type Eigenvalue struct {
	Value        float64
	Multiplicity int
}

// AutomorphismData reports the automorphism-group search outcome. Order is
// exact when Exact is true, otherwise a lower bound established before the
// node budget ran out. Nodes is the number of search-tree nodes visited.
type AutomorphismData struct {
	Order uint64
	Exact bool
	Nodes uint64
}

// Report is the complete audit outcome. A Report with an empty Mismatch list
// certifies every checked invariant; a non-empty list enumerates every
// violation found in a single pass.
type Report struct {
	VertexCount int
	EdgeCount   int
	Params      Params
	Mismatches  []Mismatch
	Spectrum    []Eigenvalue
	// Automorphisms is nil when the search was not requested.
	Automorphisms *AutomorphismData
}

// OK reports whether no invariant mismatch was found.
func (r *Report) OK() bool { return len(r.Mismatches) == 0 }
