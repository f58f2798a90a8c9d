// Package holonomy classifies closed vertex cycles of a ray model by the
// phase of their Bargmann invariant.
//
// For a cycle v₀ → v₁ → … → v_{m−1} → v₀ the invariant is the product of
// consecutive ray inner products ⟨r_{v₀},r_{v₁}⟩·…·⟨r_{v_{m−1}},r_{v₀}⟩. Its
// phase is gauge-independent (each ray's free phase cancels between the two
// factors it enters) and invariant under cyclic rotation of the cycle, so it
// is a property of the cycle itself. The classifier quantizes the phase to a
// residue modulo N; a cycle whose invariant magnitude falls below the
// near-zero threshold gets the Undefined label and is tallied rather than
// dropped.
//
// ClassifyComponents labels the sorted outer cycle of each K-component,
// fanning the work across a bounded errgroup; the aggregated distribution is
// deterministic regardless of parallelism. For the canonical forty-point
// geometry every component cycle lands on phase π, residue 3 of 6.
package holonomy
