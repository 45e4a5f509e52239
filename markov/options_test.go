// SPDX-License-Identifier: MIT

package markov_test

import (
	"testing"

	"github.com/katalvlaran/absorb/markov"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	require.Equal(t, markov.DefaultVerify, markov.VerifyEnabled())
	require.True(t, markov.VerifyEnabled(nil))
}

func TestOptions_LastWins(t *testing.T) {
	require.False(t, markov.VerifyEnabled(markov.WithVerify(false)))
	require.True(t, markov.VerifyEnabled(markov.WithVerify(false), markov.WithVerify(true)))
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { markov.WithLogger(nil) })
}
