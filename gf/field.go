package gf

import (
	"errors"
	"fmt"
)

// Sentinel errors for field construction and arithmetic.
var (
	// ErrNonPrimeModulus indicates the requested modulus is not a prime ≥ 2.
	ErrNonPrimeModulus = errors.New("gf: modulus is not prime")

	// ErrZeroInverse indicates an inverse of zero was requested.
	ErrZeroInverse = errors.New("gf: zero has no multiplicative inverse")

	// ErrModulusMismatch indicates arithmetic across elements of different fields.
	ErrModulusMismatch = errors.New("gf: element moduli differ")
)

// Field is an immutable prime field GF(q).
type Field struct {
	q int
}

// NewField constructs GF(q). Returns ErrNonPrimeModulus unless q is prime.
// Primality by trial division; the moduli in play are tiny.
func NewField(q int) (*Field, error) {
	if q < 2 {
		return nil, fmt.Errorf("gf: modulus %d: %w", q, ErrNonPrimeModulus)
	}
	for p := 2; p*p <= q; p++ {
		if q%p == 0 {
			return nil, fmt.Errorf("gf: modulus %d: %w", q, ErrNonPrimeModulus)
		}
	}

	return &Field{q: q}, nil
}

// Modulus returns q.
func (f *Field) Modulus() int { return f.q }

// norm reduces an arbitrary integer to its canonical representative in [0, q).
func (f *Field) norm(a int) int {
	a %= f.q
	if a < 0 {
		a += f.q
	}

	return a
}

// Add returns a+b mod q.
func (f *Field) Add(a, b int) int { return f.norm(f.norm(a) + f.norm(b)) }

// Sub returns a−b mod q.
func (f *Field) Sub(a, b int) int { return f.norm(f.norm(a) - f.norm(b)) }

// Mul returns a·b mod q.
func (f *Field) Mul(a, b int) int { return f.norm(f.norm(a) * f.norm(b)) }

// Neg returns −a mod q.
func (f *Field) Neg(a int) int { return f.norm(-f.norm(a)) }

// Pow returns a^e mod q for e ≥ 0 by square-and-multiply.
// Complexity: O(log e).
func (f *Field) Pow(a, e int) int {
	base := f.norm(a)
	out := 1 % f.q
	for e > 0 {
		if e&1 == 1 {
			out = f.Mul(out, base)
		}
		base = f.Mul(base, base)
		e >>= 1
	}

	return out
}

// Inv returns the multiplicative inverse of a, or ErrZeroInverse for a ≡ 0.
// Uses Fermat: a^(q−2) mod q, valid because q is prime.
func (f *Field) Inv(a int) (int, error) {
	if f.norm(a) == 0 {
		return 0, ErrZeroInverse
	}

	return f.Pow(a, f.q-2), nil
}

// Element is a field value tagged with its modulus.
type Element struct {
	Val int
	Mod int
}

// Elem wraps v as a tagged element of f.
func (f *Field) Elem(v int) Element { return Element{Val: f.norm(v), Mod: f.q} }

// field reconstructs the (validated-by-construction) field of e.
func (e Element) field() *Field { return &Field{q: e.Mod} }

// check guards cross-field arithmetic.
func (e Element) check(o Element) error {
	if e.Mod != o.Mod {
		return fmt.Errorf("gf: %d vs %d: %w", e.Mod, o.Mod, ErrModulusMismatch)
	}

	return nil
}

// Add returns e+o, or ErrModulusMismatch for elements of different fields.
func (e Element) Add(o Element) (Element, error) {
	if err := e.check(o); err != nil {
		return Element{}, err
	}

	return Element{Val: e.field().Add(e.Val, o.Val), Mod: e.Mod}, nil
}

// Mul returns e·o, or ErrModulusMismatch for elements of different fields.
func (e Element) Mul(o Element) (Element, error) {
	if err := e.check(o); err != nil {
		return Element{}, err
	}

	return Element{Val: e.field().Mul(e.Val, o.Val), Mod: e.Mod}, nil
}

// Neg returns −e.
func (e Element) Neg() Element { return Element{Val: e.field().Neg(e.Val), Mod: e.Mod} }

// Inv returns e⁻¹, or ErrZeroInverse for the zero element.
func (e Element) Inv() (Element, error) {
	v, err := e.field().Inv(e.Val)
	if err != nil {
		return Element{}, err
	}

	return Element{Val: v, Mod: e.Mod}, nil
}
