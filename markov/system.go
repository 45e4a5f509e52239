// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/absorb/matrix"
	"github.com/katalvlaran/absorb/rational"
)

// TransitionSystem is a validated, immutable copy of a weight table.
// Row i holds the weights of the transitions out of state i.
type TransitionSystem struct {
	weights [][]*big.Int // n×n, deep copy owned by the system
	rowSums []*big.Int   // rowSums[i] = Σ_j weights[i][j]
}

// NewTransitionSystem validates weights and takes a deep copy of them.
//
// Errors (all match ErrInvalidInput):
//   - ErrEmpty          no rows;
//   - ErrNotSquare      some row length != number of rows;
//   - ErrNilWeight      a nil entry;
//   - ErrNegativeWeight an entry below zero.
//
// Complexity: O(n²).
func NewTransitionSystem(weights [][]*big.Int) (*TransitionSystem, error) {
	n := len(weights)
	if n == 0 {
		return nil, ErrEmpty
	}

	s := &TransitionSystem{
		weights: make([][]*big.Int, n),
		rowSums: make([]*big.Int, n),
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(weights[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(weights[i]), n, ErrNotSquare)
		}
		row := make([]*big.Int, n)
		sum := new(big.Int)
		for j = 0; j < n; j++ {
			w := weights[i][j]
			if w == nil {
				return nil, fmt.Errorf("weight (%d,%d): %w", i, j, ErrNilWeight)
			}
			if w.Sign() < 0 {
				return nil, fmt.Errorf("weight (%d,%d) = %s: %w", i, j, w, ErrNegativeWeight)
			}
			row[j] = new(big.Int).Set(w)
			sum.Add(sum, w)
		}
		s.weights[i] = row
		s.rowSums[i] = sum
	}

	return s, nil
}

// NewTransitionSystemInt64 is NewTransitionSystem for machine-sized weights.
func NewTransitionSystemInt64(weights [][]int64) (*TransitionSystem, error) {
	n := len(weights)
	if n == 0 {
		return nil, ErrEmpty
	}
	big2D := make([][]*big.Int, n)
	for i, row := range weights {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNotSquare)
		}
		big2D[i] = make([]*big.Int, n)
		for j, w := range row {
			big2D[i][j] = big.NewInt(w)
		}
	}

	return NewTransitionSystem(big2D)
}

// Size returns the number of states.
func (s *TransitionSystem) Size() int { return len(s.weights) }

// Weight returns a copy of the weight from state i to state j.
// Panics on out-of-range indices, like slice indexing.
func (s *TransitionSystem) Weight(i, j int) *big.Int {
	return new(big.Int).Set(s.weights[i][j])
}

// RowSum returns a copy of the total outgoing weight of state i.
func (s *TransitionSystem) RowSum(i int) *big.Int {
	return new(big.Int).Set(s.rowSums[i])
}

// IsAbsorbing reports whether state i has no outgoing weight.
func (s *TransitionSystem) IsAbsorbing(i int) bool { return s.rowSums[i].Sign() == 0 }

// AbsorbingStates returns the absorbing states in ascending index order.
func (s *TransitionSystem) AbsorbingStates() []int { return s.filter(true) }

// TransientStates returns the transient states in ascending index order.
func (s *TransitionSystem) TransientStates() []int { return s.filter(false) }

// filter is the stable classification pass shared by the two views above.
func (s *TransitionSystem) filter(absorbing bool) []int {
	out := make([]int, 0, len(s.weights))
	for i := range s.weights {
		if s.IsAbsorbing(i) == absorbing {
			out = append(out, i)
		}
	}

	return out
}

// NormalizedMatrix returns the n×n exact transition matrix P:
//   - absorbing row i: P[i,i] = 1, zeros elsewhere;
//   - transient row i: P[i,j] = weights[i][j] / rowSum(i).
//
// Every row of P sums to exactly 1.
// Complexity: O(n²) rational constructions.
func (s *TransitionSystem) NormalizedMatrix() (*matrix.Dense, error) {
	n := s.Size()
	p, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, markovErrorf("NormalizedMatrix", err)
	}

	var (
		i, j int
		v    rational.Rat
	)
	for i = 0; i < n; i++ {
		if s.IsAbsorbing(i) {
			if err = p.Set(i, i, rational.One()); err != nil {
				return nil, markovErrorf("NormalizedMatrix", err)
			}
			continue
		}
		for j = 0; j < n; j++ {
			if s.weights[i][j].Sign() == 0 {
				continue
			}
			v, err = rational.NewBig(s.weights[i][j], s.rowSums[i])
			if err != nil {
				// only reachable with a zero row sum on a transient row
				return nil, markovErrorf("NormalizedMatrix", fmt.Errorf("state %d: %w: %w", i, ErrZeroRowSum, err))
			}
			if err = p.Set(i, j, v); err != nil {
				return nil, markovErrorf("NormalizedMatrix", err)
			}
		}
	}

	return p, nil
}
