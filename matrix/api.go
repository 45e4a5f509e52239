// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation.
//
// Hints:
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.
//   - Use NewFromInts to lift integer tables into exact matrices.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/absorb/rational"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	one := rational.One()
	for i := 0; i < n; i++ {
		I.data[i*n+i] = one
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// NewFromRats builds a Dense from a rectangular table of rationals.
// Errors: ErrBadShape for an empty or ragged table.
func NewFromRats(rows [][]rational.Rat) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewFromInts builds a Dense from a rectangular table of integers.
// Errors: ErrBadShape for an empty or ragged table.
func NewFromInts(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrBadShape)
		}
		for j, v := range row {
			m.data[i*c+j] = rational.FromInt(v)
		}
	}

	return m, nil
}

// SelectRowsCols returns the sub-matrix formed by rowIdx × colIdx in the
// given order. It accepts any Matrix; *Dense inputs skip the copy-in.
// Errors: ErrNilMatrix, ErrOutOfRange.
func SelectRowsCols(m Matrix, rowIdx, colIdx []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSelect, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSelect, err)
	}
	sub, err := d.Induced(rowIdx, colIdx)
	if err != nil {
		return nil, matrixErrorf(opSelect, err)
	}

	return sub, nil
}

// ---------- Aliases (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b Matrix) (Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b Matrix) (Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b Matrix) (Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose: returns mᵀ.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// InverseOf is an alias for Inverse: returns A^{-1} (Gauss-Jordan with row swaps).
func InverseOf(m Matrix) (Matrix, error) { return Inverse(m) }

// RowSums returns r where r[i] = Σ_j m[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func RowSums(m Matrix) ([]rational.Rat, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	out := make([]rational.Rat, d.r)
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			out[i] = out[i].Add(d.data[i*d.c+j])
		}
	}

	return out, nil
}
