// SPDX-License-Identifier: MIT

package markov

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/absorb/matrix"
	"github.com/katalvlaran/absorb/rational"
)

const (
	opSolver        = "NewSolver"
	opFundamental   = "Fundamental"
	opLimiting      = "Limiting"
	opDistribution  = "Distribution"
	opExpectedSteps = "ExpectedSteps"
)

// Solver computes absorption quantities for one TransitionSystem.
// F and L are computed on first use and cached; a Solver is therefore not
// safe for concurrent use. Create one Solver per goroutine, or use Solve.
type Solver struct {
	part  *Partition
	log   *slog.Logger
	stuck []int // transient states with no path to absorption

	fundamental *matrix.Dense // F = (I-Q)^-1, t×t
	limiting    *matrix.Dense // L = F·R, t×a
}

// NewSolver partitions sys and records which transient states can never
// reach absorption.
//
// Implementation:
//   - Stage 1: Partition (ErrNoAbsorbing when there is no terminal state).
//   - Stage 2: reverse reachability from the absorbing class. Unmarked
//     transient states make every transient-start query fail with
//     ErrNeverAbsorbs, including the single-absorbing-state shortcut which
//     never inverts I−Q. Absorbing starts still succeed.
//
// Complexity: O(n²).
func NewSolver(sys *TransitionSystem, opts ...Option) (*Solver, error) {
	if sys == nil {
		return nil, markovErrorf(opSolver, ErrEmpty)
	}
	o := gatherOptions(opts...)

	part, err := sys.Partition()
	if err != nil {
		return nil, markovErrorf(opSolver, err)
	}
	stuck := sys.stuckStates()
	o.logger.Debug("chain partitioned",
		slog.Int("states", part.Size()),
		slog.Int("transient", len(part.Transient)),
		slog.Int("absorbing", len(part.Absorbing)),
		slog.Int("stuck", len(stuck)))

	return &Solver{part: part, log: o.logger, stuck: stuck}, nil
}

// checkAbsorbs fails with ErrNeverAbsorbs when some transient state is stuck.
func (s *Solver) checkAbsorbs() error {
	if len(s.stuck) == 0 {
		return nil
	}
	return fmt.Errorf("states %v: %w", s.stuck, ErrNeverAbsorbs)
}

// Partition exposes the transient/absorbing split. Callers must not mutate it.
func (s *Solver) Partition() *Partition { return s.part }

// Fundamental returns F = (I − Q)⁻¹ (t×t). Entry (i,j) is the expected number
// of visits to transient state Transient[j] starting from Transient[i].
//
// A singular I−Q is reported as ErrNeverAbsorbs with matrix.ErrSingular kept
// in the chain.
func (s *Solver) Fundamental() (matrix.Matrix, error) {
	if s.fundamental != nil {
		return s.fundamental, nil
	}
	if err := s.checkAbsorbs(); err != nil {
		return nil, markovErrorf(opFundamental, err)
	}
	t := len(s.part.Transient)
	if t == 0 {
		s.fundamental = s.part.Q // legal 0×0
		return s.fundamental, nil
	}

	I, err := matrix.NewIdentity(t)
	if err != nil {
		return nil, markovErrorf(opFundamental, err)
	}
	iq, err := matrix.Sub(I, s.part.Q)
	if err != nil {
		return nil, markovErrorf(opFundamental, err)
	}
	f, err := matrix.Inverse(iq)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, markovErrorf(opFundamental, fmt.Errorf("%w: %w", ErrNeverAbsorbs, err))
		}
		return nil, markovErrorf(opFundamental, err)
	}
	s.fundamental = f.(*matrix.Dense)
	s.log.Debug("fundamental matrix computed", slog.Int("size", t))

	return s.fundamental, nil
}

// Limiting returns L = F·R (t×a). Entry (i,j) is the probability of ending in
// Absorbing[j] when starting from Transient[i].
func (s *Solver) Limiting() (matrix.Matrix, error) {
	if s.limiting != nil {
		return s.limiting, nil
	}
	f, err := s.Fundamental()
	if err != nil {
		return nil, markovErrorf(opLimiting, err)
	}
	l, err := matrix.Mul(f, s.part.R)
	if err != nil {
		return nil, markovErrorf(opLimiting, err)
	}
	s.limiting = l.(*matrix.Dense)

	return s.limiting, nil
}

// Distribution returns the absorption probabilities from start, one per
// absorbing state in Partition().Absorbing order.
//
// Implementation:
//   - start absorbing: unit vector at its own slot (no inversion).
//   - some transient state never absorbs: ErrNeverAbsorbs.
//   - exactly one absorbing state: [1] (no inversion).
//   - otherwise: the row of L at start's position in Transient.
//
// Errors: ErrStartOutOfRange, plus Fundamental/Limiting errors.
func (s *Solver) Distribution(start int) ([]rational.Rat, error) {
	if start < 0 || start >= s.part.Size() {
		return nil, markovErrorf(opDistribution, fmt.Errorf("start %d of %d states: %w", start, s.part.Size(), ErrStartOutOfRange))
	}
	a := len(s.part.Absorbing)

	if pos, ok := s.part.AbsorbingPos(start); ok {
		s.log.Debug("start state is absorbing", slog.Int("start", start))
		out := make([]rational.Rat, a)
		out[pos] = rational.One()
		return out, nil
	}
	if err := s.checkAbsorbs(); err != nil {
		return nil, markovErrorf(opDistribution, err)
	}
	if a == 1 {
		s.log.Debug("single absorbing state, skipping inversion", slog.Int("absorbing", s.part.Absorbing[0]))
		return []rational.Rat{rational.One()}, nil
	}

	l, err := s.Limiting()
	if err != nil {
		return nil, markovErrorf(opDistribution, err)
	}
	row, _ := s.part.TransientPos(start)
	out, err := l.(*matrix.Dense).Row(row)
	if err != nil {
		return nil, markovErrorf(opDistribution, err)
	}

	return out, nil
}

// ExpectedSteps returns the expected number of transitions before absorption
// when starting from start: the sum of start's row of F, or 0 when start is
// absorbing.
func (s *Solver) ExpectedSteps(start int) (rational.Rat, error) {
	if start < 0 || start >= s.part.Size() {
		return rational.Rat{}, markovErrorf(opExpectedSteps, fmt.Errorf("start %d of %d states: %w", start, s.part.Size(), ErrStartOutOfRange))
	}
	row, ok := s.part.TransientPos(start)
	if !ok {
		return rational.Zero(), nil
	}
	f, err := s.Fundamental()
	if err != nil {
		return rational.Rat{}, markovErrorf(opExpectedSteps, err)
	}
	sums, err := matrix.RowSums(f)
	if err != nil {
		return rational.Rat{}, markovErrorf(opExpectedSteps, err)
	}

	return sums[row], nil
}
