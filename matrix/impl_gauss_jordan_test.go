package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/absorb/matrix"
	"github.com/katalvlaran/absorb/rational"
	"github.com/stretchr/testify/require"
)

// requireInverse asserts A·inv == I and inv·A == I exactly.
func requireInverse(t *testing.T, a, inv matrix.Matrix) {
	t.Helper()
	I, err := matrix.IdentityLike(a)
	require.NoError(t, err)

	left, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	RequireEqual(t, I, left)

	right, err := matrix.Mul(inv, a)
	require.NoError(t, err)
	RequireEqual(t, I, right)
}

func TestInverseKnown2x2(t *testing.T) {
	a := MustInts(t, [][]int64{{4, 7}, {2, 6}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	RequireEqual(t, MustRats(t, [][]string{{"3/5", "-7/10"}, {"-1/5", "2/5"}}), inv)
}

// TestInverseZeroDiagonal covers matrices whose diagonal is zero before
// elimination; a kernel without row swaps would fail or return garbage here.
func TestInverseZeroDiagonal(t *testing.T) {
	cases := map[string][][]int64{
		"swap2":     {{0, 1}, {1, 0}},
		"zeroDiag3": {{0, 2, 3}, {1, 0, 4}, {5, 6, 0}},
		"lateZero":  {{1, 1, 0}, {1, 1, 1}, {0, 1, 1}}, // (1,1) becomes 0 after step 0
		"perm4":     {{0, 0, 0, 1}, {0, 0, 1, 0}, {1, 0, 0, 0}, {0, 1, 0, 0}},
	}
	for name, tbl := range cases {
		t.Run(name, func(t *testing.T) {
			a := MustInts(t, tbl)
			inv, err := matrix.Inverse(a)
			require.NoError(t, err)
			requireInverse(t, a, inv)
		})
	}
}

func TestInverseSingular(t *testing.T) {
	cases := map[string][][]int64{
		"dependentRows": {{1, 2}, {2, 4}},
		"zeroColumn":    {{0, 1}, {0, 2}},
		"zeroMatrix":    {{0, 0}, {0, 0}},
		"lateSingular":  {{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	}
	for name, tbl := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := matrix.Inverse(MustInts(t, tbl))
			require.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
}

func TestInverseValidation(t *testing.T) {
	_, err := matrix.Inverse(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.InverseOf(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = matrix.Inverse(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInverseDoesNotMutateInput(t *testing.T) {
	a := MustInts(t, [][]int64{{0, 2}, {3, 1}})
	snapshot := a.Clone()
	_, err := matrix.Inverse(a)
	require.NoError(t, err)
	RequireEqual(t, snapshot, a)
}

func TestInverseThroughInterface(t *testing.T) {
	a := MustInts(t, [][]int64{{0, 2, 1}, {1, 1, 0}, {3, 0, 1}})
	direct, err := matrix.Inverse(a)
	require.NoError(t, err)
	hidden, err := matrix.Inverse(hide{a})
	require.NoError(t, err)
	RequireEqual(t, direct, hidden)
}

// TestInverseHilbert inverts Hilbert matrices, whose inverses have integer
// entries that overflow float precision quickly. (H_n⁻¹)[0,0] == n².
func TestInverseHilbert(t *testing.T) {
	for _, n := range []int{2, 5, 8, 10} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			h := MustDense(t, n, n)
			var i, j int
			for i = 0; i < n; i++ {
				for j = 0; j < n; j++ {
					v, err := rational.New(1, int64(i+j+1))
					require.NoError(t, err)
					require.NoError(t, h.Set(i, j, v))
				}
			}
			inv, err := matrix.Inverse(h)
			require.NoError(t, err)
			require.Equal(t, fmt.Sprint(n*n), MustAt(t, inv, 0, 0).String())
			requireInverse(t, h, inv)
		})
	}
}

// TestInverseRandomProperty checks A·A⁻¹ == I on seeded random invertible inputs,
// with a random row permutation applied so zero pivots are frequent.
func TestInverseRandomProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := DiagonallyDominant(t, rng, n, 5)
			perm := rng.Perm(n)
			all := make([]int, n)
			for i := range all {
				all[i] = i
			}
			p, err := a.Induced(perm, all)
			require.NoError(t, err)

			inv, err := matrix.Inverse(p)
			require.NoError(t, err)
			requireInverse(t, p, inv)
		})
	}
}
