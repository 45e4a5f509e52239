// SPDX-License-Identifier: MIT

package markov_test

import (
	"testing"

	"github.com/katalvlaran/absorb/markov"
	"github.com/stretchr/testify/require"
)

func TestPartition_Blocks(t *testing.T) {
	part, err := MustSystem(t, chain6).Partition()
	require.NoError(t, err)

	require.Equal(t, []int{0, 1}, part.Transient)
	require.Equal(t, []int{2, 3, 4, 5}, part.Absorbing)
	require.Equal(t, 6, part.Size())
	require.Equal(t, 2, part.Q.Rows())
	require.Equal(t, 2, part.Q.Cols())
	require.Equal(t, 2, part.R.Rows())
	require.Equal(t, 4, part.R.Cols())

	q, _ := part.Q.Row(0)
	require.Equal(t, []string{"0", "1/2"}, strs(q))
	r, _ := part.R.Row(1)
	require.Equal(t, []string{"0", "1/3", "2/9", "0"}, strs(r))
}

func TestPartition_Positions(t *testing.T) {
	part, err := MustSystem(t, [][]int64{
		{0, 0, 0, 0},
		{1, 0, 1, 1},
		{0, 0, 0, 0},
		{0, 2, 1, 0},
	}).Partition()
	require.NoError(t, err)

	pos, ok := part.TransientPos(3)
	require.True(t, ok)
	require.Equal(t, 1, pos)
	_, ok = part.TransientPos(2)
	require.False(t, ok)

	pos, ok = part.AbsorbingPos(2)
	require.True(t, ok)
	require.Equal(t, 1, pos)
	_, ok = part.AbsorbingPos(1)
	require.False(t, ok)

	_, ok = part.AbsorbingPos(-1)
	require.False(t, ok)
	_, ok = part.TransientPos(4)
	require.False(t, ok)
}

func TestPartition_AllAbsorbing(t *testing.T) {
	part, err := MustSystem(t, [][]int64{{0, 0}, {0, 0}}).Partition()
	require.NoError(t, err)
	require.Empty(t, part.Transient)
	require.Equal(t, []int{0, 1}, part.Absorbing)
	require.Equal(t, 0, part.Q.Rows())
	require.Equal(t, 2, part.R.Cols())
}

func TestPartition_NoAbsorbing(t *testing.T) {
	_, err := MustSystem(t, [][]int64{{0, 1}, {1, 0}}).Partition()
	require.ErrorIs(t, err, markov.ErrNoAbsorbing)
	require.ErrorIs(t, err, markov.ErrInvalidInput)
}

func TestStuckStates(t *testing.T) {
	cases := []struct {
		name string
		w    [][]int64
		want []int
	}{
		{"all reach", chain6, nil},
		{"closed pair", [][]int64{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}}, []int{0, 1}},
		{"self loop only", [][]int64{{1, 0}, {0, 0}}, []int{0}},
		{"feeds into stuck class", [][]int64{
			{0, 1, 0, 0},
			{0, 0, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 0},
		}, []int{0, 1, 2}},
		{"partial", [][]int64{
			{0, 1, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
			{0, 0, 0, 0},
		}, []int{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, markov.StuckStates(MustSystem(t, tc.w)))
		})
	}
}
