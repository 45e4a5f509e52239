// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Inverse computes A^{-1} by Gauss-Jordan elimination on the augmented pair [A | I].
// The input must be non-nil and square. Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m) and ValidateSquare(m). Copy A into a private
//     working Dense `work`; allocate `inv` = I_n.
//   - Stage 2: For each pivot column c = 0..n-1:
//   - If work[c,c] == 0, take the first row p > c with work[p,c] != 0 and
//     swap rows c and p in both work and inv. No such row → ErrSingular.
//   - Scale row c of both halves by 1/work[c,c] so the pivot becomes exactly 1.
//   - For every row r != c, subtract work[r,c] × (row c) from row r in both halves.
//   - Stage 3: work is now I_n and inv holds A^{-1}.
//
// Behavior highlights:
//   - Exact arithmetic: the pivot search only asks "is it zero?", so choosing
//     the first non-zero candidate is as good as any for correctness, and it
//     keeps the row order deterministic.
//   - ErrSingular is returned only when a whole pivot column below (and at) the
//     diagonal is zero, i.e. when A is truly singular.
//   - Mutation is confined to work and inv, both private to this call.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrInvalidDimensions for a 0×0 input.
//   - ErrSingular (no non-zero pivot candidate).
//
// Complexity:
//   - Time O(n^3) rational operations, Space O(n^2). The bit width of the
//     entries can grow during elimination; reduction after every operation
//     keeps it bounded by the determinant's size.
func Inverse(m Matrix) (Matrix, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	inv, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	work := src.cloneDense() // never eliminate on the caller's storage

	var (
		c, r, j, p int
		base, rb   int
	)
	for c = 0; c < n; c++ {
		// Partial pivoting: a zero on the diagonal needs a row swap, not a skip.
		p = c
		for p < n && work.data[p*n+c].IsZero() {
			p++
		}
		if p == n {
			return nil, matrixErrorf(opInverse, fmt.Errorf("pivot column %d: %w", c, ErrSingular))
		}
		work.swapRows(c, p)
		inv.swapRows(c, p)

		// Normalize the pivot row.
		base = c * n
		pivotInv, err := work.data[base+c].Inv()
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for j = 0; j < n; j++ {
			work.data[base+j] = work.data[base+j].Mul(pivotInv)
			inv.data[base+j] = inv.data[base+j].Mul(pivotInv)
		}

		// Eliminate column c from every other row.
		for r = 0; r < n; r++ {
			if r == c {
				continue
			}
			rb = r * n
			factor := work.data[rb+c]
			if factor.IsZero() {
				continue
			}
			for j = 0; j < n; j++ {
				work.data[rb+j] = work.data[rb+j].Sub(factor.Mul(work.data[base+j]))
				inv.data[rb+j] = inv.data[rb+j].Sub(factor.Mul(inv.data[base+j]))
			}
		}
	}

	return inv, nil
}
