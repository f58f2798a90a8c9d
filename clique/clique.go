package clique

import (
	"errors"
	"fmt"
	"sort"

	"github.com/finitegeom/quadric/incidence"
)

var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("clique: nil graph")
	// ErrSizeRange is returned when the requested set size is below 2.
	ErrSizeRange = errors.New("clique: size out of range")
)

// Component pairs a set of k mutually non-adjacent vertices (Outer) with its
// common-neighbor closure (Center), which is again k mutually non-adjacent
// vertices. Both slices are ascending.
type Component struct {
	Outer  []int
	Center []int
}

// engine drives the branch-and-bound enumeration of k-vertex sets drawn
// from an ascending candidate pool. Partial sets grow by ascending pool
// position only, so every set is produced exactly once and in lexicographic
// order. wantEdge selects the relation required between members: true
// enumerates cliques, false co-cliques. Each complete set is streamed to
// emit; the engine accumulates nothing, and emit must copy the slice if it
// retains it.
type engine struct {
	g        *incidence.Graph
	k        int
	wantEdge bool
	pool     []int
	current  []int
	emit     func([]int)
}

// extend grows the partial set with every admissible pool vertex at
// position ≥ from.
func (e *engine) extend(from int) {
	if len(e.current) == e.k {
		e.emit(e.current)
		return
	}
	// Prune: not enough pool remains to reach size k.
	need := e.k - len(e.current)
	for i := from; i+need <= len(e.pool); i++ {
		v := e.pool[i]
		if !e.admissible(v) {
			continue
		}
		e.current = append(e.current, v)
		e.extend(i + 1)
		e.current = e.current[:len(e.current)-1]
	}
}

// admissible reports whether v relates as required to every current member.
func (e *engine) admissible(v int) bool {
	for _, u := range e.current {
		if e.g.HasEdge(u, v) != e.wantEdge {
			return false
		}
	}
	return true
}

// Cliques enumerates every maximal clique of exactly k vertices, each
// returned as an ascending index slice in lexicographic order. A k-clique
// that extends to a larger clique is excluded. In the canonical symplectic
// graph over GF(3) the maximal 4-cliques are the 40 totally isotropic lines.
//
// Complexity: O(C(n,k)·k²) worst case; adjacency pruning keeps the practical
// cost far below that on sparse incidence graphs.
func Cliques(g *incidence.Graph, k int) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 2 {
		return nil, fmt.Errorf("clique: size %d: %w", k, ErrSizeRange)
	}

	pool := make([]int, g.VertexCount())
	for i := range pool {
		pool[i] = i
	}
	var out [][]int
	e := &engine{
		g: g, k: k, wantEdge: true,
		pool:    pool,
		current: make([]int, 0, k),
		emit: func(set []int) {
			if isMaximalClique(g, set) {
				out = append(out, append([]int(nil), set...))
			}
		},
	}
	e.extend(0)

	return out, nil
}

// isMaximalClique reports whether no vertex outside set is adjacent to all
// of set.
func isMaximalClique(g *incidence.Graph, set []int) bool {
	ext, err := g.CommonNeighbors(set)
	if err != nil {
		return false
	}
	return len(ext) == 0
}

// Triangles counts the triangles of g. Each triangle contributes once to the
// common-neighbor count of each of its three edges, so the total is the edge
// sum of common-neighbor counts divided by three.
//
// Complexity: O(m·n/64) with word-parallel intersection per edge.
func Triangles(g *incidence.Graph) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	sum := 0
	for u := 0; u < g.VertexCount(); u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return 0, err
		}
		for _, v := range nbrs {
			if v <= u {
				continue
			}
			c, err := g.CommonNeighborCount(u, v)
			if err != nil {
				return 0, err
			}
			sum += c
		}
	}

	return sum / 3, nil
}

// Components enumerates the K-components of size k: every set of k mutually
// non-adjacent vertices whose common-neighbor closure is again a set of k
// mutually non-adjacent vertices. Components are ordered lexicographically
// by outer. Zero components is a valid outcome for a graph without the
// closure property at size k.
//
// Candidate generation runs through closures of non-adjacent vertex pairs:
// the center of a valid component holds k ≥ 2 mutually non-adjacent
// vertices, every outer vertex neighbors all of them, so the outer is a
// k-subset of the common-neighbor closure of any two center vertices. Each
// of the O(n²) closures is a small pool (μ vertices in a strongly regular
// graph), which keeps the enumeration flat in memory and viable on the
// larger fields, where the naive sweep over all k-co-cliques of the graph
// is not.
//
// In the canonical symplectic graph over GF(3) there are exactly 90 such
// components, the hyperbolic lines paired with their symplectic perps; the
// pairing is an involution, so the center of a component is the outer of
// another.
func Components(g *incidence.Graph, k int) ([]Component, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if k < 2 {
		return nil, fmt.Errorf("clique: size %d: %w", k, ErrSizeRange)
	}

	var out []Component
	var emitErr error
	seen := make(map[string]bool)
	n := g.VertexCount()
	for c1 := 0; c1 < n; c1++ {
		for c2 := c1 + 1; c2 < n; c2++ {
			if g.HasEdge(c1, c2) {
				continue
			}
			pool, err := g.CommonNeighbors([]int{c1, c2})
			if err != nil {
				return nil, err
			}
			if len(pool) < k {
				continue
			}
			e := &engine{
				g: g, k: k, wantEdge: false,
				pool:    pool,
				current: make([]int, 0, k),
				emit: func(set []int) {
					if emitErr != nil {
						return
					}
					center, err := g.CommonNeighbors(set)
					if err != nil {
						emitErr = err
						return
					}
					if len(center) != k || !isCoClique(g, center) {
						return
					}
					key := fmt.Sprint(set)
					if seen[key] {
						return
					}
					seen[key] = true
					out = append(out, Component{
						Outer:  append([]int(nil), set...),
						Center: center,
					})
				},
			}
			e.extend(0)
			if emitErr != nil {
				return nil, emitErr
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return lessOuter(out[i].Outer, out[j].Outer)
	})

	return out, nil
}

// lessOuter orders ascending index slices lexicographically.
func lessOuter(a, b []int) bool {
	for i := range a {
		if i >= len(b) || a[i] != b[i] {
			return i < len(b) && a[i] < b[i]
		}
	}
	return false
}

// isCoClique reports whether set is pairwise non-adjacent.
func isCoClique(g *incidence.Graph, set []int) bool {
	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			if g.HasEdge(set[i], set[j]) {
				return false
			}
		}
	}
	return true
}
