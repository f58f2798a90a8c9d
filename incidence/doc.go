// Package incidence builds and serves the projective-point incidence graph
// of a symplectic space.
//
// Vertices are the canonical projective points of the space, in lexicographic
// order; an edge joins two points whose symplectic pairing is zero. Because
// the form is alternating, every point is self-orthogonal and belongs to the
// geometry — no isotropy filtering is needed.
//
// Graph is immutable once built. Adjacency is a packed bitset, so degree and
// common-neighbor queries are word-parallel popcounts; every derived
// structure in this module references vertices by index into the fixed
// vertex order. New constructs bare graphs (no point coordinates) for
// quotients and tests.
//
// Complexity of Build: O(n²·d) pairing evaluations for n = (q^d−1)/(q−1)
// vertices — 780 candidate pairs for the canonical (q=3, d=4) case.
package incidence
