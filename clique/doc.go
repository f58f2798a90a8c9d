// Package clique enumerates distinguished substructures of an incidence
// graph: maximal k-cliques, triangles, and K-components.
//
// Cliques runs a deterministic branch-and-bound over the adjacency
// structure, extending partial cliques with ascending candidate vertices and
// pruning every branch whose candidate set is too small to reach size k.
// For the canonical (q=3,d=4) graph the 4-cliques are exactly the 40 totally
// isotropic lines of GQ(3,3).
//
// A K-component is a pair (outer, center) of disjoint same-size vertex sets:
// outer is a set of k mutually non-adjacent vertices, and center is the
// common-neighbor closure of outer, valid only when center is itself a set
// of k mutually non-adjacent vertices. In the canonical geometry these
// are the 90 hyperbolic (non-isotropic) lines paired with their symplectic
// perps, and the pairing is an involution: the center's component has the
// original outer as its center. None of this is assumed — Components
// verifies the closure property per candidate and reports what it finds;
// zero components is a valid result for a geometry without the property.
package clique
