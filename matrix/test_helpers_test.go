// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep fixtures exact (integer or small-fraction entries) so results can be
//     compared with Equal instead of tolerances.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/absorb/matrix"
	"github.com/katalvlaran/absorb/rational"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the interface (non-*Dense) read path.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustInts BUILDS a *Dense from an integer table or fails the test.
func MustInts(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(rows)
	require.NoError(t, err)

	return m
}

// MustRats BUILDS a *Dense from a table of fraction literals ("1/2", "-3").
func MustRats(t testing.TB, rows [][]string) *matrix.Dense {
	t.Helper()
	tbl := make([][]rational.Rat, len(rows))
	for i, row := range rows {
		tbl[i] = make([]rational.Rat, len(row))
		for j, s := range row {
			tbl[i][j] = rational.MustParse(s)
		}
	}
	m, err := matrix.NewFromRats(tbl)
	require.NoError(t, err)

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) rational.Rat {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RequireEqual asserts exact equality of two matrices and prints both on failure.
func RequireEqual(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	require.Truef(t, matrix.Equal(want, got), "matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
}

// RandomIntDense FILLS an r×c Dense with integers in [-span, span] from a seeded source.
func RandomIntDense(t testing.TB, rng *rand.Rand, r, c int, span int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rational.FromInt(rng.Int63n(2*span+1)-span)))
		}
	}

	return m
}

// DiagonallyDominant BUILDS an n×n integer matrix whose diagonal strictly
// dominates each row, hence invertible. Off-diagonal entries lie in [-span, span].
func DiagonallyDominant(t testing.TB, rng *rand.Rand, n int, span int64) *matrix.Dense {
	t.Helper()
	m := RandomIntDense(t, rng, n, n, span)
	var i, j int
	for i = 0; i < n; i++ {
		dom := int64(1)
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			v := MustAt(t, m, i, j).Num().Int64()
			if v < 0 {
				v = -v
			}
			dom += v
		}
		require.NoError(t, m.Set(i, i, rational.FromInt(dom)))
	}

	return m
}
