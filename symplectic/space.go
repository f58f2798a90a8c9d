package symplectic

import (
	"errors"
	"fmt"

	"github.com/finitegeom/quadric/gf"
)

// Sentinel errors for space construction and pairing.
var (
	// ErrNilField indicates a nil *gf.Field was supplied.
	ErrNilField = errors.New("symplectic: field is nil")

	// ErrOddDimension indicates a dimension that is not a positive even number.
	ErrOddDimension = errors.New("symplectic: dimension must be positive and even")

	// ErrFormShape indicates the form matrix is not d×d.
	ErrFormShape = errors.New("symplectic: form matrix shape mismatch")

	// ErrNotAlternating indicates B(v,v) ≠ 0 for some v — the matrix is not
	// skew-symmetric with zero diagonal.
	ErrNotAlternating = errors.New("symplectic: form is not alternating")

	// ErrDegenerateForm indicates a nonzero vector orthogonal to the whole space.
	ErrDegenerateForm = errors.New("symplectic: form is degenerate")

	// ErrVectorLength indicates a vector of the wrong dimension.
	ErrVectorLength = errors.New("symplectic: vector length mismatch")

	// ErrZeroVector indicates the zero vector where a projective point is required.
	ErrZeroVector = errors.New("symplectic: zero vector has no projective representative")
)

// Space is an immutable symplectic space (GF(q)^d, B).
type Space struct {
	field *gf.Field
	dim   int
	form  [][]int // canonical residues, validated alternating + non-degenerate
}

// StandardForm returns the block-diagonal alternating form
// ((0,1),(−1,0)) ⊕ … ⊕ ((0,1),(−1,0)) as an integer matrix
// (entries 0, 1, −1; callers' fields normalize residues).
func StandardForm(dim int) [][]int {
	b := make([][]int, dim)
	for i := range b {
		b[i] = make([]int, dim)
	}
	for i := 0; i+1 < dim; i += 2 {
		b[i][i+1] = 1
		b[i+1][i] = -1
	}

	return b
}

// NewSpace validates (field, dim, form) and constructs the space.
// The form matrix is copied and reduced to canonical residues; the input is
// never retained. Returns ErrNilField, ErrOddDimension, ErrFormShape,
// ErrNotAlternating or ErrDegenerateForm.
// Complexity: O(d³) for the rank check.
func NewSpace(field *gf.Field, dim int, form [][]int) (*Space, error) {
	// Stage 1: shape validation.
	if field == nil {
		return nil, ErrNilField
	}
	if dim <= 0 || dim%2 != 0 {
		return nil, fmt.Errorf("symplectic: dim=%d: %w", dim, ErrOddDimension)
	}
	if len(form) != dim {
		return nil, fmt.Errorf("symplectic: %d rows for dim %d: %w", len(form), dim, ErrFormShape)
	}
	b := make([][]int, dim)
	for i, row := range form {
		if len(row) != dim {
			return nil, fmt.Errorf("symplectic: row %d has %d entries for dim %d: %w", i, len(row), dim, ErrFormShape)
		}
		b[i] = make([]int, dim)
		for j, v := range row {
			b[i][j] = field.Add(v, 0) // canonical residue
		}
	}

	// Stage 2: alternating — zero diagonal and b[j][i] = −b[i][j].
	for i := 0; i < dim; i++ {
		if b[i][i] != 0 {
			return nil, fmt.Errorf("symplectic: diagonal entry (%d,%d)=%d: %w", i, i, b[i][i], ErrNotAlternating)
		}
		for j := i + 1; j < dim; j++ {
			if b[j][i] != field.Neg(b[i][j]) {
				return nil, fmt.Errorf("symplectic: entries (%d,%d) and (%d,%d): %w", i, j, j, i, ErrNotAlternating)
			}
		}
	}

	// Stage 3: non-degenerate — full rank by exact Gaussian elimination mod q.
	if rank := rankMod(field, b); rank != dim {
		return nil, fmt.Errorf("symplectic: rank %d < %d: %w", rank, dim, ErrDegenerateForm)
	}

	return &Space{field: field, dim: dim, form: b}, nil
}

// rankMod computes the rank of m over GF(q) on a working copy.
func rankMod(field *gf.Field, m [][]int) int {
	n := len(m)
	a := make([][]int, n)
	for i := range m {
		a[i] = append([]int(nil), m[i]...)
	}

	rank := 0
	for col := 0; col < n && rank < n; col++ {
		pivot := -1
		for r := rank; r < n; r++ {
			if a[r][col] != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		a[rank], a[pivot] = a[pivot], a[rank]
		inv, _ := field.Inv(a[rank][col]) // nonzero by pivot choice
		for c := col; c < n; c++ {
			a[rank][c] = field.Mul(a[rank][c], inv)
		}
		for r := 0; r < n; r++ {
			if r != rank && a[r][col] != 0 {
				f := a[r][col]
				for c := col; c < n; c++ {
					a[r][c] = field.Sub(a[r][c], field.Mul(f, a[rank][c]))
				}
			}
		}
		rank++
	}

	return rank
}

// Field returns the underlying prime field.
func (s *Space) Field() *gf.Field { return s.field }

// Dim returns d.
func (s *Space) Dim() int { return s.dim }

// Form returns a copy of the validated form matrix.
func (s *Space) Form() [][]int {
	out := make([][]int, s.dim)
	for i := range s.form {
		out[i] = append([]int(nil), s.form[i]...)
	}

	return out
}

// Pairing computes u^T·B·v in GF(q).
// Complexity: O(d²).
func (s *Space) Pairing(u, v []int) (int, error) {
	if len(u) != s.dim || len(v) != s.dim {
		return 0, fmt.Errorf("symplectic: got %d and %d for dim %d: %w", len(u), len(v), s.dim, ErrVectorLength)
	}

	sum := 0
	for i := 0; i < s.dim; i++ {
		if s.field.Add(u[i], 0) == 0 {
			continue
		}
		row := 0
		for j := 0; j < s.dim; j++ {
			row = s.field.Add(row, s.field.Mul(s.form[i][j], v[j]))
		}
		sum = s.field.Add(sum, s.field.Mul(u[i], row))
	}

	return sum, nil
}

// Canonical returns the projective representative of a nonzero vector:
// the scalar multiple whose first nonzero coordinate is 1. Two vectors are
// scalar multiples of each other iff their canonical forms are equal.
func (s *Space) Canonical(v []int) ([]int, error) {
	if len(v) != s.dim {
		return nil, fmt.Errorf("symplectic: got %d for dim %d: %w", len(v), s.dim, ErrVectorLength)
	}

	lead := -1
	out := make([]int, s.dim)
	for i, x := range v {
		out[i] = s.field.Add(x, 0)
		if lead < 0 && out[i] != 0 {
			lead = i
		}
	}
	if lead < 0 {
		return nil, ErrZeroVector
	}

	inv, _ := s.field.Inv(out[lead]) // nonzero by construction
	for i := lead; i < s.dim; i++ {
		out[i] = s.field.Mul(out[i], inv)
	}

	return out, nil
}

// Points enumerates all canonical projective points in lexicographic order.
// A vector is its own canonical representative iff its first nonzero
// coordinate equals 1, so the enumeration never deduplicates — it emits
// exactly (q^d−1)/(q−1) points, always in the same order.
// Complexity: O(q^d · d).
func (s *Space) Points() [][]int {
	q := s.field.Modulus()
	var out [][]int
	v := make([]int, s.dim)
	for {
		// canonical iff first nonzero coordinate is 1
		lead := -1
		for i, x := range v {
			if x != 0 {
				lead = i
				break
			}
		}
		if lead >= 0 && v[lead] == 1 {
			out = append(out, append([]int(nil), v...))
		}

		// lexicographic increment, most significant coordinate first
		i := s.dim - 1
		for ; i >= 0; i-- {
			v[i]++
			if v[i] < q {
				break
			}
			v[i] = 0
		}
		if i < 0 {
			break
		}
	}

	return out
}
