// Package rays attaches a unit-ray model in C⁴ to the canonical symplectic
// incidence graph over GF(3).
//
// The forty rays form a Witting configuration: the four points of one
// isotropic line (the anchors) map to the standard basis of C⁴, and every
// other point maps to a vector with a single zero coordinate, the remaining
// entries of magnitude 1/√3 with cube-root-of-unity phases read off the
// point's coordinates. The model realizes the graph metrically: two rays
// have inner-product magnitude 0 exactly when the underlying points are
// adjacent, and 1/√3 otherwise.
//
// NewModel verifies the full contract over all vertex pairs before
// returning; a graph that is not the canonical (q=3, d=4) construction is
// rejected with ErrUnsupportedGeometry, and any magnitude off contract
// surfaces as an InconsistencyError wrapping ErrInconsistent.
package rays
