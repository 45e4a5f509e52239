// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/absorb/matrix"
)

const opPartition = "Partition"

// Partition is the canonical split of a chain into transient and absorbing
// classes.
//
//   - Transient and Absorbing list original state indices in ascending
//     relative order; together they cover 0..n-1 exactly once.
//   - Q = P[Transient, Transient] (t×t), R = P[Transient, Absorbing] (t×a).
//     With no transient states both are zero-area matrices.
type Partition struct {
	Transient []int
	Absorbing []int
	Q         *matrix.Dense
	R         *matrix.Dense

	slot []int // slot[i] = position of state i inside its own class
}

// Partition classifies the states, builds P and cuts Q and R out of it.
//
// Implementation:
//   - Stage 1: stable split of 0..n-1 by IsAbsorbing; empty absorbing class → ErrNoAbsorbing.
//   - Stage 2: P = NormalizedMatrix().
//   - Stage 3: Q and R via order-preserving SelectRowsCols.
//
// Errors: ErrNoAbsorbing, ErrZeroRowSum and propagated matrix errors.
// Complexity: O(n²).
func (s *TransitionSystem) Partition() (*Partition, error) {
	part := &Partition{
		Transient: s.TransientStates(),
		Absorbing: s.AbsorbingStates(),
		slot:      make([]int, s.Size()),
	}
	if len(part.Absorbing) == 0 {
		return nil, markovErrorf(opPartition, ErrNoAbsorbing)
	}
	for pos, i := range part.Transient {
		part.slot[i] = pos
	}
	for pos, i := range part.Absorbing {
		part.slot[i] = pos
	}

	p, err := s.NormalizedMatrix()
	if err != nil {
		return nil, markovErrorf(opPartition, err)
	}
	if part.Q, err = matrix.SelectRowsCols(p, part.Transient, part.Transient); err != nil {
		return nil, markovErrorf(opPartition, fmt.Errorf("Q: %w", err))
	}
	if part.R, err = matrix.SelectRowsCols(p, part.Transient, part.Absorbing); err != nil {
		return nil, markovErrorf(opPartition, fmt.Errorf("R: %w", err))
	}

	return part, nil
}

// Size returns the total number of states.
func (p *Partition) Size() int { return len(p.slot) }

// TransientPos returns the row of state i inside Q/R, or false if i is
// absorbing or out of range.
func (p *Partition) TransientPos(i int) (int, bool) {
	if i < 0 || i >= len(p.slot) || p.isAbsorbing(i) {
		return 0, false
	}
	return p.slot[i], true
}

// AbsorbingPos returns the column of state i inside R, or false if i is
// transient or out of range.
func (p *Partition) AbsorbingPos(i int) (int, bool) {
	if i < 0 || i >= len(p.slot) || !p.isAbsorbing(i) {
		return 0, false
	}
	return p.slot[i], true
}

// isAbsorbing looks the state up in the absorbing list via its slot.
func (p *Partition) isAbsorbing(i int) bool {
	pos := p.slot[i]
	return pos < len(p.Absorbing) && p.Absorbing[pos] == i
}
