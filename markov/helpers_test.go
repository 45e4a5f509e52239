// SPDX-License-Identifier: MIT

package markov_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/absorb/markov"
	"github.com/katalvlaran/absorb/rational"
	"github.com/stretchr/testify/require"
)

// Fixtures shared across the markov tests.
var (
	// chain5 splits state 0 into 1 (2/3) and 2 (1/3); state 1 into 3 (3/7) and 4 (4/7).
	chain5 = [][]int64{
		{0, 2, 1, 0, 0},
		{0, 0, 0, 3, 4},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}

	// chain6 has a transient cycle 0 ↔ 1 and four absorbing states.
	chain6 = [][]int64{
		{0, 1, 0, 0, 0, 1},
		{4, 0, 0, 3, 2, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	}
)

// MustSystem builds a TransitionSystem or fails the test.
func MustSystem(t testing.TB, w [][]int64) *markov.TransitionSystem {
	t.Helper()
	s, err := markov.NewTransitionSystemInt64(w)
	require.NoError(t, err)

	return s
}

// Ints converts a []*big.Int into []int64 for compact assertions.
func Ints(t testing.TB, xs []*big.Int) []int64 {
	t.Helper()
	out := make([]int64, len(xs))
	for i, x := range xs {
		require.True(t, x.IsInt64(), "value %s overflows int64", x)
		out[i] = x.Int64()
	}

	return out
}

// RandomChain generates an n-state chain whose last a states are absorbing
// and whose transient states always reach one of them: every transient
// state i gets a positive weight into state i+1 (or into an absorbing state
// for the last transient one). Remaining weights are random in [0, maxW].
func RandomChain(rng *rand.Rand, n, a int, maxW int64) [][]int64 {
	t := n - a
	w := make([][]int64, n)
	for i := range w {
		w[i] = make([]int64, n)
		if i >= t {
			continue
		}
		for j := range w[i] {
			if rng.Intn(3) == 0 {
				w[i][j] = rng.Int63n(maxW + 1)
			}
		}
		w[i][i+1] += 1 + rng.Int63n(maxW)
	}

	return w
}

// strs renders rationals for readable comparisons.
func strs(xs []rational.Rat) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}

	return out
}
