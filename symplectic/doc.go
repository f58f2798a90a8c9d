// Package symplectic models GF(q)^d equipped with a non-degenerate
// alternating bilinear form.
//
// A Space is constructed from a gf.Field, an even dimension d, and a d×d
// form matrix B over GF(q). Construction validates the matrix exactly:
//
//   - B must be alternating: zero diagonal and B[j][i] ≡ −B[i][j]
//     (ErrNotAlternating);
//   - B must be non-degenerate: full rank over GF(q), checked by exact
//     modular Gaussian elimination (ErrDegenerateForm).
//
// The Space exposes the pairing u^T·B·v, projective canonicalization of
// nonzero vectors (first nonzero coordinate forced to 1), and deterministic
// lexicographic enumeration of all (q^d−1)/(q−1) canonical projective
// points. Under an alternating form every vector is self-orthogonal, so
// every projective point belongs to the incidence geometry.
package symplectic
