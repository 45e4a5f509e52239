// SPDX-License-Identifier: MIT

package markov

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella for every caller-fixable input problem.
// All sentinels below except ErrNotStochastic wrap it.
var ErrInvalidInput = errors.New("markov: invalid input")

var (
	// ErrEmpty is returned for a transition table without states.
	ErrEmpty = fmt.Errorf("%w: empty transition matrix", ErrInvalidInput)

	// ErrNotSquare is returned when some row length differs from the row count.
	ErrNotSquare = fmt.Errorf("%w: transition matrix is not square", ErrInvalidInput)

	// ErrNegativeWeight is returned for a weight below zero.
	ErrNegativeWeight = fmt.Errorf("%w: negative weight", ErrInvalidInput)

	// ErrNilWeight is returned for a nil *big.Int weight.
	ErrNilWeight = fmt.Errorf("%w: nil weight", ErrInvalidInput)

	// ErrNoAbsorbing is returned when no row sums to zero.
	ErrNoAbsorbing = fmt.Errorf("%w: no absorbing state", ErrInvalidInput)

	// ErrNeverAbsorbs is returned when some transient state cannot reach any
	// absorbing state, i.e. I−Q is singular.
	ErrNeverAbsorbs = fmt.Errorf("%w: chain never absorbs from some state", ErrInvalidInput)

	// ErrStartOutOfRange is returned when the start state is not in [0, n).
	ErrStartOutOfRange = fmt.Errorf("%w: start state out of range", ErrInvalidInput)

	// ErrZeroRowSum guards the normalization of a transient row whose weights
	// sum to zero. Classification makes it unreachable.
	ErrZeroRowSum = fmt.Errorf("%w: transient state with zero row sum", ErrInvalidInput)
)

// ErrNotStochastic reports that a probability row does not sum to exactly 1.
// It signals an internal defect, not bad input.
var ErrNotStochastic = errors.New("markov: probabilities do not sum to one")

// markovErrorf wraps err with an operation tag, preserving it for errors.Is.
func markovErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
