package incidence

import (
	"fmt"

	"github.com/finitegeom/quadric/symplectic"
)

// Build constructs the incidence graph of a symplectic space: vertices are
// the canonical projective points in lexicographic order; an edge joins two
// distinct points whose pairing is zero.
//
// The expected vertex count (q^d−1)/(q−1) and the uniqueness of canonical
// representatives are re-checked during the build; a violation reports
// ErrConstructionInvariant and indicates a bug upstream, not bad input.
func Build(space *symplectic.Space) (*Graph, error) {
	if space == nil {
		return nil, ErrNilSpace
	}

	// Stage 1: enumerate vertices and re-check canonical uniqueness.
	points := space.Points()
	q := space.Field().Modulus()
	d := space.Dim()
	want := 1
	for i := 0; i < d-1; i++ {
		want = want*q + 1 // (q^d−1)/(q−1) by Horner
	}
	if len(points) != want {
		return nil, fmt.Errorf("incidence: %d points, expected %d: %w", len(points), want, ErrConstructionInvariant)
	}
	seen := make(map[string]struct{}, len(points))
	for _, p := range points {
		key := fmt.Sprint(p)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("incidence: duplicate canonical point %v: %w", p, ErrConstructionInvariant)
		}
		seen[key] = struct{}{}
	}

	// Stage 2: pairwise pairing; edge iff zero.
	n := len(points)
	g := &Graph{n: n, words: (n + 63) / 64, points: points, q: q, dim: d}
	g.adj = make([]uint64, n*g.words)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			p, err := space.Pairing(points[u], points[v])
			if err != nil {
				return nil, fmt.Errorf("incidence: pairing (%d,%d): %w", u, v, err)
			}
			if p == 0 {
				g.setEdge(u, v)
			}
		}
	}
	g.finalize()

	return g, nil
}
