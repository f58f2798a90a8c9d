// Package gf implements exact arithmetic over a prime field GF(q).
//
// A Field is constructed once from a prime modulus and exposes add, mul,
// neg, inv and pow on canonical representatives in [0, q). Construction with
// a non-prime modulus fails with ErrNonPrimeModulus; inverting zero fails
// with ErrZeroInverse — never silently coerced.
//
// Element is a tagged value carrying its modulus, so arithmetic across
// incompatible fields fails fast with ErrModulusMismatch instead of
// producing silently wrong residues.
//
// All operations are O(1) except Inv/Pow, which are O(log q) by
// square-and-multiply. There is no shared mutable state.
package gf
