// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"log/slog"
	"math/big"

	"github.com/katalvlaran/absorb/rational"
)

const (
	opSolve  = "Solve"
	opAbsorb = "Absorb"
	opVerify = "Verify"
)

// Result is the absorption distribution from one start state.
// Absorbing, Probabilities and Numerators are index-aligned.
type Result struct {
	Start         int
	Absorbing     []int
	Probabilities []rational.Rat
	Numerators    []*big.Int
	Denominator   *big.Int
}

// Ints returns the flat answer [p_1, ..., p_a, denominator]. The slice and
// its integers are fresh copies.
func (r Result) Ints() []*big.Int {
	out := make([]*big.Int, 0, len(r.Numerators)+1)
	for _, n := range r.Numerators {
		out = append(out, new(big.Int).Set(n))
	}
	if r.Denominator != nil {
		out = append(out, new(big.Int).Set(r.Denominator))
	}

	return out
}

// Verify checks that the numerators sum to the denominator and that each
// one matches its probability. Violations are reported as ErrNotStochastic.
func (r Result) Verify() error {
	if r.Denominator == nil || len(r.Numerators) != len(r.Probabilities) {
		return markovErrorf(opVerify, fmt.Errorf("malformed result: %w", ErrNotStochastic))
	}
	if err := checkNormalized(r.Numerators, r.Denominator); err != nil {
		return markovErrorf(opVerify, err)
	}
	for i, p := range r.Probabilities {
		q, err := rational.NewBig(r.Numerators[i], r.Denominator)
		if err != nil {
			return markovErrorf(opVerify, err)
		}
		if !q.Equal(p) {
			return markovErrorf(opVerify, fmt.Errorf("state %d: %s != %s: %w", r.Absorbing[i], q, p, ErrNotStochastic))
		}
	}

	return nil
}

// Absorb runs the whole pipeline on a validated system: partition, limiting
// distribution from start, normalization and (unless disabled with
// WithVerify(false)) the self check.
func Absorb(sys *TransitionSystem, start int, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	solver, err := NewSolver(sys, opts...)
	if err != nil {
		return Result{}, markovErrorf(opAbsorb, err)
	}
	probs, err := solver.Distribution(start)
	if err != nil {
		return Result{}, markovErrorf(opAbsorb, err)
	}
	nums, den, err := Normalize(probs)
	if err != nil {
		return Result{}, markovErrorf(opAbsorb, err)
	}

	res := Result{
		Start:         start,
		Absorbing:     append([]int(nil), solver.Partition().Absorbing...),
		Probabilities: probs,
		Numerators:    nums,
		Denominator:   den,
	}
	if o.verify {
		if err = res.Verify(); err != nil {
			return Result{}, markovErrorf(opAbsorb, err)
		}
	}
	o.logger.Debug("absorption solved",
		slog.Int("start", start),
		slog.String("denominator", den.String()))

	return res, nil
}

// SolveBig validates weights and returns the full Result for start.
func SolveBig(weights [][]*big.Int, start int, opts ...Option) (Result, error) {
	sys, err := NewTransitionSystem(weights)
	if err != nil {
		return Result{}, markovErrorf(opSolve, err)
	}

	return Absorb(sys, start, opts...)
}

// Solve is the one-call entry point: it returns [p_1, ..., p_a, d] where
// p_k/d is the exact probability of ending in the k-th absorbing state
// (ascending state order) when starting from start, and d is the least
// common denominator.
//
// Every failure matches ErrInvalidInput under errors.Is, except
// ErrNotStochastic which signals an internal defect.
func Solve(weights [][]int64, start int, opts ...Option) ([]*big.Int, error) {
	sys, err := NewTransitionSystemInt64(weights)
	if err != nil {
		return nil, markovErrorf(opSolve, err)
	}
	res, err := Absorb(sys, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Ints(), nil
}
