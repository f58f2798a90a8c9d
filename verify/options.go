package verify

import "math"

// Documented defaults (single source of truth).
const (
	// DefaultEpsilon is the tolerance used to cluster near-equal eigenvalues
	// into multiplicities and to compare the exact and numeric spectra.
	DefaultEpsilon = 1e-9

	// DefaultAutomorphismBudget caps the number of search-tree nodes the
	// automorphism enumeration may visit when the search is enabled without
	// an explicit budget.
	DefaultAutomorphismBudget = 5_000_000
)

const panicEpsilonInvalid = "verify: WithEpsilon: eps must be finite and non-negative"

// Option configures a verification run.
type Option func(*options)

type options struct {
	eps       float64
	searchAut bool
	autBudget uint64
}

// WithEpsilon overrides the eigenvalue clustering tolerance.
// Panics on NaN, ±Inf or negative eps (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithAutomorphisms enables the automorphism search under the default budget.
func WithAutomorphisms() Option {
	return func(o *options) {
		o.searchAut = true
		if o.autBudget == 0 {
			o.autBudget = DefaultAutomorphismBudget
		}
	}
}

// WithAutomorphismBudget enables the automorphism search with an explicit
// node budget. A budget of 0 falls back to the default.
func WithAutomorphismBudget(nodes uint64) Option {
	return func(o *options) {
		o.searchAut = true
		o.autBudget = nodes
		if o.autBudget == 0 {
			o.autBudget = DefaultAutomorphismBudget
		}
	}
}

// gatherOptions resolves setters over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{eps: DefaultEpsilon}
	for _, set := range opts {
		set(&o)
	}

	return o
}
