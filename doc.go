// Package quadric builds finite incidence geometries from symplectic spaces
// over prime fields and verifies their combinatorial invariants.
//
// The pipeline, leaves first:
//
//   - gf         — exact arithmetic over GF(q), q prime.
//   - symplectic — GF(q)^d with a non-degenerate alternating bilinear form.
//   - incidence  — the projective-point graph: vertices are canonical
//     projective points, edges join pairs with zero symplectic pairing.
//   - verify     — strongly-regular-graph audit: degrees, λ/μ counts,
//     adjacency spectrum, budgeted automorphism search.
//   - clique     — maximal k-clique enumeration, triangle census, and
//     outer/center K-component pairing.
//   - rays       — a closed-form unit-vector realization in C^4 whose inner
//     products reproduce adjacency exactly.
//   - holonomy   — Bargmann-invariant phase labels for vertex cycles,
//     quantized into Z_N.
//   - quotient   — graphs induced by an explicit vertex partition.
//   - pipeline   — one-shot Config → VerificationReport orchestration.
//
// The canonical geometry is GF(3)^4 with the standard alternating form: its
// point graph is the SRG(40,12,2,4) collinearity graph of the generalized
// quadrangle GQ(3,3), carrying 40 lines, 90 hyperbolic quads, and a Witting
// ray realization with a uniform cycle holonomy.
//
// Every structure is immutable once built; all computation is deterministic
// and exact up to one documented numeric tolerance per package.
package quadric
