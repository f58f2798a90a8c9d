package incidence

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/bits"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNilSpace indicates a nil space was passed to Build.
	ErrNilSpace = errors.New("incidence: space is nil")

	// ErrConstructionInvariant indicates an internal consistency failure while
	// building — a bug, not bad input.
	ErrConstructionInvariant = errors.New("incidence: construction invariant violated")

	// ErrVertexRange indicates a vertex index outside [0, VertexCount).
	ErrVertexRange = errors.New("incidence: vertex index out of range")

	// ErrBadOrder indicates a non-positive vertex count passed to New.
	ErrBadOrder = errors.New("incidence: vertex count must be positive")

	// ErrSelfLoop indicates an edge from a vertex to itself passed to New.
	ErrSelfLoop = errors.New("incidence: self-loops not allowed")
)

// Graph is an immutable undirected graph over indexed vertices.
//
// A Graph built from a symplectic space additionally carries the point
// coordinates and the field parameters; bare graphs (quotients, test
// fixtures) carry neither. No method mutates the receiver.
type Graph struct {
	n      int
	words  int      // bitset row width in uint64 words
	adj    []uint64 // n rows × words
	deg    []int
	edges  int
	points [][]int // nil for bare graphs
	q, dim int     // 0 for bare graphs
}

// New constructs a bare graph on n vertices from an explicit edge list.
// Edges are undirected; duplicates collapse. Returns ErrBadOrder,
// ErrVertexRange or ErrSelfLoop.
func New(n int, edges [][2]int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("incidence: n=%d: %w", n, ErrBadOrder)
	}

	g := &Graph{n: n, words: (n + 63) / 64}
	g.adj = make([]uint64, n*g.words)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("incidence: edge (%d,%d) on %d vertices: %w", u, v, n, ErrVertexRange)
		}
		if u == v {
			return nil, fmt.Errorf("incidence: edge (%d,%d): %w", u, v, ErrSelfLoop)
		}
		g.setEdge(u, v)
	}
	g.finalize()

	return g, nil
}

// setEdge marks the undirected pair in both bitset rows. Build-time only.
func (g *Graph) setEdge(u, v int) {
	g.adj[u*g.words+v/64] |= 1 << uint(v%64)
	g.adj[v*g.words+u/64] |= 1 << uint(u%64)
}

// finalize freezes degree and edge counts after all setEdge calls.
func (g *Graph) finalize() {
	g.deg = make([]int, g.n)
	total := 0
	for v := 0; v < g.n; v++ {
		row := g.adj[v*g.words : (v+1)*g.words]
		for _, w := range row {
			g.deg[v] += bits.OnesCount64(w)
		}
		total += g.deg[v]
	}
	g.edges = total / 2
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Modulus returns the field modulus q, or 0 for bare graphs.
func (g *Graph) Modulus() int { return g.q }

// Dim returns the vector-space dimension d, or 0 for bare graphs.
func (g *Graph) Dim() int { return g.dim }

// HasEdge reports adjacency of u and v; false for out-of-range or equal indices.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n || u == v {
		return false
	}

	return g.adj[u*g.words+v/64]&(1<<uint(v%64)) != 0
}

// Degree returns the degree of v, or ErrVertexRange.
func (g *Graph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, fmt.Errorf("incidence: vertex %d: %w", v, ErrVertexRange)
	}

	return g.deg[v], nil
}

// Neighbors returns the ascending neighbor list of v, or ErrVertexRange.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, fmt.Errorf("incidence: vertex %d: %w", v, ErrVertexRange)
	}

	out := make([]int, 0, g.deg[v])
	row := g.adj[v*g.words : (v+1)*g.words]
	for wi, w := range row {
		for w != 0 {
			out = append(out, wi*64+bits.TrailingZeros64(w))
			w &= w - 1
		}
	}

	return out, nil
}

// CommonNeighborCount returns |N(u) ∩ N(v)| by word-parallel popcount.
func (g *Graph) CommonNeighborCount(u, v int) (int, error) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return 0, fmt.Errorf("incidence: pair (%d,%d): %w", u, v, ErrVertexRange)
	}

	ru := g.adj[u*g.words : (u+1)*g.words]
	rv := g.adj[v*g.words : (v+1)*g.words]
	count := 0
	for i := range ru {
		count += bits.OnesCount64(ru[i] & rv[i])
	}

	return count, nil
}

// CommonNeighbors returns the ascending list of vertices adjacent to every
// vertex in set. An empty set yields every vertex.
func (g *Graph) CommonNeighbors(set []int) ([]int, error) {
	acc := make([]uint64, g.words)
	for i := range acc {
		acc[i] = ^uint64(0)
	}
	for _, v := range set {
		if v < 0 || v >= g.n {
			return nil, fmt.Errorf("incidence: vertex %d: %w", v, ErrVertexRange)
		}
		row := g.adj[v*g.words : (v+1)*g.words]
		for i := range acc {
			acc[i] &= row[i]
		}
	}

	var out []int
	for wi, w := range acc {
		for w != 0 {
			idx := wi*64 + bits.TrailingZeros64(w)
			if idx < g.n {
				out = append(out, idx)
			}
			w &= w - 1
		}
	}

	return out, nil
}

// Point returns the projective coordinates of vertex v, or nil for bare graphs.
// The returned slice is a copy.
func (g *Graph) Point(v int) []int {
	if g.points == nil || v < 0 || v >= g.n {
		return nil
	}

	return append([]int(nil), g.points[v]...)
}

// AdjacencyDense exports the adjacency matrix as a row-major 0/1 float64
// slice of length n², ready for gonum ingestion.
func (g *Graph) AdjacencyDense() []float64 {
	out := make([]float64, g.n*g.n)
	for u := 0; u < g.n; u++ {
		for v := 0; v < g.n; v++ {
			if g.HasEdge(u, v) {
				out[u*g.n+v] = 1
			}
		}
	}

	return out
}

// Fingerprint returns an FNV-1a digest of the adjacency bitset. Two graphs
// built from identical parameters produce identical fingerprints; used to
// test determinism of the build.
func (g *Graph) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, w := range g.adj {
		for i := 0; i < 8; i++ {
			buf[i] = byte(w >> uint(8*i))
		}
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}
