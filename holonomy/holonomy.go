package holonomy

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/finitegeom/quadric/clique"
	"github.com/finitegeom/quadric/rays"
)

var (
	// ErrNilModel is returned when the ray model is nil.
	ErrNilModel = errors.New("holonomy: nil ray model")
	// ErrShortCycle is returned for cycles of fewer than three vertices.
	ErrShortCycle = errors.New("holonomy: cycle too short")
	// ErrRepeatedVertex is returned when a cycle visits a vertex twice.
	ErrRepeatedVertex = errors.New("holonomy: repeated vertex in cycle")
)

// Label is a quantized holonomy class: a residue in [0, N) for a cycle with
// a non-vanishing invariant, or Undefined for one below the threshold.
type Label int

// Undefined marks cycles whose invariant magnitude falls below the
// classifier's near-zero threshold.
const Undefined Label = -1

func (l Label) String() string {
	if l == Undefined {
		return "undefined"
	}
	return fmt.Sprintf("%d", int(l))
}

// Distribution aggregates cycle labels. Counts holds the defined residues;
// Undefined tallies the cycles with vanishing invariants.
type Distribution struct {
	Counts    map[Label]int
	Undefined int
}

// Classifier quantizes Bargmann phases of cycles over a fixed ray model.
type Classifier struct {
	model       *rays.Model
	modulus     int
	epsilon     float64
	parallelism int
}

// NewClassifier builds a classifier over m. Defaults: modulus 6, threshold
// 1e-9, four workers.
func NewClassifier(m *rays.Model, opts ...Option) (*Classifier, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	cfg := gatherOptions(opts)

	return &Classifier{
		model:       m,
		modulus:     cfg.modulus,
		epsilon:     cfg.epsilon,
		parallelism: cfg.parallelism,
	}, nil
}

// Modulus returns the quantization modulus N.
func (c *Classifier) Modulus() int { return c.modulus }

// Invariant returns the Bargmann invariant of the cycle, the product of
// consecutive ray inner products with wraparound. The cycle is rotated to
// start at its minimum vertex first, so equal cycles written from different
// starting points produce bitwise-identical products.
//
// Complexity: O(m·d) for a cycle of length m in dimension d.
func (c *Classifier) Invariant(cycle []int) (complex128, error) {
	if len(cycle) < 3 {
		return 0, fmt.Errorf("holonomy: %d vertices: %w", len(cycle), ErrShortCycle)
	}
	seen := make(map[int]bool, len(cycle))
	for _, v := range cycle {
		if seen[v] {
			return 0, fmt.Errorf("holonomy: vertex %d: %w", v, ErrRepeatedVertex)
		}
		seen[v] = true
	}

	rot := rotateToMin(cycle)
	inv := complex(1, 0)
	for i := range rot {
		ip, err := c.model.InnerProduct(rot[i], rot[(i+1)%len(rot)])
		if err != nil {
			return 0, err
		}
		inv *= ip
	}

	return inv, nil
}

// Label quantizes the Bargmann phase of the cycle to a residue modulo N, or
// Undefined when the invariant magnitude is below the threshold.
func (c *Classifier) Label(cycle []int) (Label, error) {
	inv, err := c.Invariant(cycle)
	if err != nil {
		return Undefined, err
	}
	if cmplx.Abs(inv) < c.epsilon {
		return Undefined, nil
	}

	phase := cmplx.Phase(inv) // (−π, π]
	if phase < 0 {
		phase += 2 * math.Pi
	}
	step := 2 * math.Pi / float64(c.modulus)

	return Label(int(math.Round(phase/step)) % c.modulus), nil
}

// ClassifyComponents labels the sorted outer cycle of every component and
// aggregates the labels into a distribution. Components are processed by a
// bounded errgroup; the result does not depend on scheduling.
func (c *Classifier) ClassifyComponents(comps []clique.Component) (Distribution, error) {
	labels := make([]Label, len(comps))

	var eg errgroup.Group
	eg.SetLimit(c.parallelism)
	for i, comp := range comps {
		eg.Go(func() error {
			cycle := append([]int(nil), comp.Outer...)
			sort.Ints(cycle)
			l, err := c.Label(cycle)
			if err != nil {
				return fmt.Errorf("holonomy: component %d: %w", i, err)
			}
			labels[i] = l
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Distribution{}, err
	}

	dist := Distribution{Counts: make(map[Label]int)}
	for _, l := range labels {
		if l == Undefined {
			dist.Undefined++
			continue
		}
		dist.Counts[l]++
	}

	return dist, nil
}

// rotateToMin returns the cycle rotated to start at its minimum vertex.
func rotateToMin(cycle []int) []int {
	at := 0
	for i, v := range cycle {
		if v < cycle[at] {
			at = i
		}
	}
	out := make([]int, len(cycle))
	for i := range cycle {
		out[i] = cycle[(at+i)%len(cycle)]
	}

	return out
}
