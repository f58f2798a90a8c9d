package verify

import "github.com/finitegeom/quadric/incidence"

// autEngine is the backtracking state for the automorphism enumeration.
// A dedicated engine struct keeps hot-path state explicit and the budget
// check cheap (one counter, no closures over growing scopes).
type autEngine struct {
	g      *incidence.Graph
	n      int
	deg    []int
	image  []int
	used   []bool
	found  uint64
	nodes  uint64
	budget uint64
	halted bool
}

// countAutomorphisms enumerates adjacency-preserving vertex bijections by
// depth-first backtracking: vertex i maps only to unused candidates of equal
// degree whose adjacency to all previously mapped vertices matches. Every
// completed mapping is one automorphism. The node budget bounds the number
// of search-tree nodes; on exhaustion the count so far is a lower bound and
// Exact is false.
// Complexity: worst case exponential; pruning makes the small graphs in this
// module practical. Memory: O(n).
func countAutomorphisms(g *incidence.Graph, budget uint64) *AutomorphismData {
	n := g.VertexCount()
	e := &autEngine{
		g:      g,
		n:      n,
		deg:    make([]int, n),
		image:  make([]int, n),
		used:   make([]bool, n),
		budget: budget,
	}
	for v := 0; v < n; v++ {
		e.deg[v], _ = g.Degree(v)
	}
	e.extend(0)

	return &AutomorphismData{Order: e.found, Exact: !e.halted, Nodes: e.nodes}
}

// extend tries every consistent image for vertex depth and recurses.
func (e *autEngine) extend(depth int) {
	if e.halted {
		return
	}
	e.nodes++
	if e.nodes > e.budget {
		e.halted = true

		return
	}
	if depth == e.n {
		e.found++

		return
	}

	for c := 0; c < e.n; c++ {
		if e.used[c] || e.deg[c] != e.deg[depth] {
			continue
		}
		consistent := true
		for j := 0; j < depth; j++ {
			if e.g.HasEdge(depth, j) != e.g.HasEdge(c, e.image[j]) {
				consistent = false
				break
			}
		}
		if !consistent {
			continue
		}
		e.image[depth] = c
		e.used[c] = true
		e.extend(depth + 1)
		e.used[c] = false
		if e.halted {
			return
		}
	}
}
