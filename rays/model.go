package rays

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/finitegeom/quadric/incidence"
)

var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("rays: nil graph")
	// ErrUnsupportedGeometry is returned when the graph is not the canonical
	// (q=3, d=4) symplectic incidence graph with point coordinates attached.
	ErrUnsupportedGeometry = errors.New("rays: unsupported geometry")
	// ErrInconsistent is returned when a constructed ray pair violates the
	// magnitude contract. See InconsistencyError for the offending pair.
	ErrInconsistent = errors.New("rays: model inconsistent with graph")
	// ErrVertexRange is returned for out-of-range ray indices.
	ErrVertexRange = errors.New("rays: vertex index out of range")
)

// InconsistencyError reports one vertex pair whose inner-product magnitude
// deviates from the adjacency contract. It unwraps to ErrInconsistent.
type InconsistencyError struct {
	U, V int
	Got  float64 // |⟨r_u, r_v⟩|²
	Want float64
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("rays: pair (%d,%d): |⟨u,v⟩|² = %g, want %g", e.U, e.V, e.Got, e.Want)
}

func (e *InconsistencyError) Unwrap() error { return ErrInconsistent }

// dim is the ambient complex dimension and modulus the field order; the
// model exists only for this geometry.
const (
	dim     = 4
	modulus = 3
)

// anchorPoints are the four points of the distinguished isotropic line, in
// the order that fixes their basis-vector images e₀..e₃.
var anchorPoints = [dim][dim]int{
	{0, 0, 0, 1},
	{0, 1, 0, 0},
	{0, 1, 0, 1},
	{0, 1, 0, 2},
}

// negativeEntries lists the (anchor, coordinate) slots that carry sign −1;
// all other nonzero entries are positive.
var negativeEntries = map[[2]int]bool{
	{0, 1}: true,
	{0, 2}: true,
	{1, 0}: true,
	{3, 1}: true,
}

// Model holds the verified forty-ray realization of a canonical graph.
type Model struct {
	graph *incidence.Graph
	rays  [][]complex128
	eps   float64
}

// NewModel constructs the ray system for g and verifies the magnitude
// contract over every vertex pair. The graph must be the canonical
// construction: modulus 3, dimension 4, forty vertices with coordinates.
//
// Complexity: O(n²) inner products over n = 40 vertices.
func NewModel(g *incidence.Graph, opts ...Option) (*Model, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := gatherOptions(opts)

	// Stage 1: structural premises.
	if g.Modulus() != modulus || g.Dim() != dim || g.Point(0) == nil {
		return nil, fmt.Errorf("rays: graph (q=%d, d=%d): %w", g.Modulus(), g.Dim(), ErrUnsupportedGeometry)
	}
	anchors, err := locateAnchors(g)
	if err != nil {
		return nil, err
	}

	// Stage 2: one ray per vertex.
	m := &Model{graph: g, eps: cfg.epsilon}
	m.rays = make([][]complex128, g.VertexCount())
	for v := range m.rays {
		ray, err := buildRay(g, anchors, v)
		if err != nil {
			return nil, err
		}
		m.rays[v] = ray
	}

	// Stage 3: magnitude contract over all pairs.
	for u := 0; u < len(m.rays); u++ {
		for v := u + 1; v < len(m.rays); v++ {
			got := magnitudeSquared(m.rays[u], m.rays[v])
			want := m.NonEdgeMagnitude()
			if g.HasEdge(u, v) {
				want = 0
			}
			if math.Abs(got-want) > m.eps {
				return nil, &InconsistencyError{U: u, V: v, Got: got, Want: want}
			}
		}
	}

	return m, nil
}

// locateAnchors resolves the graph vertices carrying the anchor coordinates.
func locateAnchors(g *incidence.Graph) ([dim]int, error) {
	var anchors [dim]int
	for i := range anchors {
		anchors[i] = -1
	}
	for v := 0; v < g.VertexCount(); v++ {
		p := g.Point(v)
		for i, want := range anchorPoints {
			if equalPoint(p, want[:]) {
				anchors[i] = v
			}
		}
	}
	for _, v := range anchors {
		if v < 0 {
			return anchors, fmt.Errorf("rays: anchor line not present: %w", ErrUnsupportedGeometry)
		}
	}

	return anchors, nil
}

func equalPoint(p, q []int) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// buildRay maps vertex v to its unit ray. Anchors map to basis vectors;
// every other vertex zeroes the coordinate of its unique adjacent anchor and
// fills the rest with signed cube-root phases of magnitude 1/√3.
func buildRay(g *incidence.Graph, anchors [dim]int, v int) ([]complex128, error) {
	ray := make([]complex128, dim)
	for i, a := range anchors {
		if a == v {
			ray[i] = 1
			return ray, nil
		}
	}

	zero := -1
	for i, a := range anchors {
		if g.HasEdge(v, a) {
			if zero >= 0 {
				return nil, fmt.Errorf("rays: vertex %d touches several anchors: %w", v, ErrUnsupportedGeometry)
			}
			zero = i
		}
	}
	if zero < 0 {
		return nil, fmt.Errorf("rays: vertex %d touches no anchor: %w", v, ErrUnsupportedGeometry)
	}

	b, c := phasePair(zero, g.Point(v))
	phases := [3]int{0, b, c}
	inv := complex(1/math.Sqrt(modulus), 0)
	slot := 0
	for k := 0; k < dim; k++ {
		if k == zero {
			continue
		}
		entry := omega(phases[slot]) * inv
		if negativeEntries[[2]int{zero, k}] {
			entry = -entry
		}
		ray[k] = entry
		slot++
	}

	return ray, nil
}

// phasePair evaluates the two phase exponents of a non-anchor point from
// its coordinates, as GF(3) polynomials selected by the zero position.
func phasePair(zero int, p []int) (int, int) {
	x2, x3, x4 := p[1], p[2], p[3]
	switch zero {
	case 0:
		return (x2 + x4) % modulus, (x2 + 2*x4) % modulus
	case 1:
		return (2 + x2 + x3 + x3*x4) % modulus, (1 + 2*x2 + 2*x3 + x3*x4) % modulus
	case 2:
		return (2*x2 + 2*x4) % modulus, (2 * x4) % modulus
	default:
		return (2*x2 + x4) % modulus, x4 % modulus
	}
}

// omega returns e^{2πi·k/3}.
func omega(k int) complex128 {
	return cmplx.Exp(complex(0, 2*math.Pi*float64(k)/modulus))
}

func magnitudeSquared(u, v []complex128) float64 {
	var ip complex128
	for i := range u {
		ip += cmplx.Conj(u[i]) * v[i]
	}
	re, im := real(ip), imag(ip)

	return re*re + im*im
}

// VertexCount returns the number of rays.
func (m *Model) VertexCount() int { return len(m.rays) }

// Graph returns the underlying incidence graph.
func (m *Model) Graph() *incidence.Graph { return m.graph }

// NonEdgeMagnitude returns the squared inner-product magnitude required
// between rays of non-adjacent vertices, 1/q.
func (m *Model) NonEdgeMagnitude() float64 { return 1.0 / modulus }

// Ray returns a copy of the unit ray of vertex v.
func (m *Model) Ray(v int) ([]complex128, error) {
	if v < 0 || v >= len(m.rays) {
		return nil, fmt.Errorf("rays: vertex %d: %w", v, ErrVertexRange)
	}
	out := make([]complex128, dim)
	copy(out, m.rays[v])

	return out, nil
}

// InnerProduct returns ⟨r_u, r_v⟩ with the conjugate on the first slot.
func (m *Model) InnerProduct(u, v int) (complex128, error) {
	if u < 0 || u >= len(m.rays) || v < 0 || v >= len(m.rays) {
		return 0, fmt.Errorf("rays: pair (%d,%d): %w", u, v, ErrVertexRange)
	}
	var ip complex128
	for i := range m.rays[u] {
		ip += cmplx.Conj(m.rays[u][i]) * m.rays[v][i]
	}

	return ip, nil
}
