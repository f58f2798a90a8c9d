// Package verify audits the combinatorial invariants of an incidence graph
// against an expected strongly-regular parameter set.
//
// Verify computes, for a Graph and expected {k, λ, μ}:
//
//   - the degree of every vertex,
//   - the common-neighbor count of every adjacent pair (λ) and every
//     non-adjacent distinct pair (μ),
//   - the adjacency spectrum with multiplicities,
//   - optionally, a budgeted automorphism-group search.
//
// Every deviation is accumulated into the returned Report — the audit never
// aborts on the first mismatch and never throws for a finding. The caller
// decides whether a non-empty mismatch list is fatal.
//
// The spectrum is computed numerically (gonum EigenSym) and clustered into
// multiplicities within a single documented tolerance; whenever the SRG
// quadratic x²−(λ−μ)x−(k−μ) has a perfect-square discriminant the integer
// eigenvalues and their multiplicities are also derived exactly, and any
// disagreement between the two paths is itself reported as a mismatch.
//
// The automorphism search is an exact backtracking enumeration with
// adjacency-consistency pruning under a node budget: an exhausted search
// reports the exact group order; a budget hit reports the count found so far
// as a documented lower bound (Exact=false) instead of blocking.
package verify
