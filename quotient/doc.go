// Package quotient contracts an incidence graph along a vertex partition.
//
// Each partition class becomes one quotient vertex; two distinct classes are
// adjacent exactly when at least one edge of the source graph runs between
// them. Edges inside a class are discarded, so the quotient is always
// simple. The partition must cover every vertex exactly once: empty classes,
// overlapping classes, and uncovered vertices are each rejected with a
// detail wrapping ErrBadPartition.
//
// The quotient is a bare graph: it carries adjacency only, no field or
// point coordinates, so it feeds back into verification and clique
// enumeration but not into the ray model.
package quotient
