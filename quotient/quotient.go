package quotient

import (
	"errors"
	"fmt"

	"github.com/finitegeom/quadric/incidence"
)

var (
	// ErrNilGraph is returned when the input graph is nil.
	ErrNilGraph = errors.New("quotient: nil graph")
	// ErrBadPartition is returned when the partition does not cover the
	// vertex set exactly once. The wrapping message names the defect.
	ErrBadPartition = errors.New("quotient: bad partition")
)

// Build contracts g along the partition. Class i of the partition becomes
// quotient vertex i; classes become adjacent when any source edge runs
// between them.
//
// Complexity: O(n + m) over the source vertices and edges.
func Build(g *incidence.Graph, partition [][]int) (*incidence.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// Stage 1: validate coverage and build the vertex→class map.
	n := g.VertexCount()
	class := make([]int, n)
	for i := range class {
		class[i] = -1
	}
	for ci, members := range partition {
		if len(members) == 0 {
			return nil, fmt.Errorf("quotient: class %d empty: %w", ci, ErrBadPartition)
		}
		for _, v := range members {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("quotient: class %d: vertex %d out of range: %w", ci, v, ErrBadPartition)
			}
			if class[v] >= 0 {
				return nil, fmt.Errorf("quotient: vertex %d in classes %d and %d: %w", v, class[v], ci, ErrBadPartition)
			}
			class[v] = ci
		}
	}
	for v, ci := range class {
		if ci < 0 {
			return nil, fmt.Errorf("quotient: vertex %d uncovered: %w", v, ErrBadPartition)
		}
	}

	// Stage 2: project edges; intra-class edges drop out.
	var edges [][2]int
	for u := 0; u < n; u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			if v <= u || class[u] == class[v] {
				continue
			}
			edges = append(edges, [2]int{class[u], class[v]})
		}
	}

	return incidence.New(len(partition), edges)
}
