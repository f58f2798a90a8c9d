// Package pipeline runs the full construction-and-verification sequence for
// one parameter set: field → symplectic space → incidence graph → invariant
// audit → clique and component census → ray model → holonomy census.
//
// Run never aborts on an invariant mismatch; every violation lands in the
// report, and OK() summarizes the audit. The ray and holonomy stages only
// exist for the canonical (q=3, d=4) geometry; for any other parameters
// they are skipped and the report says so, which is an outcome, not an
// error. ExpectedParams supplies the strongly-regular parameter set of the
// symplectic graph for any prime q and even dimension, so callers audit
// against theory rather than hand-entered numbers.
package pipeline
