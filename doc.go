// Package absorb is an exact solver for absorbing Markov chains.
//
// Given a square table of non-negative integer weights, absorb computes the
// probability of ending in each absorbing (terminal) state from a chosen
// start state. All arithmetic is rational over math/big, so answers are
// exact fractions and never accumulate rounding error.
//
// What is inside:
//
//	rational/    immutable arbitrary-precision fractions (always reduced, den > 0)
//	matrix/      dense rational matrices: add, sub, mul, transpose,
//	             sub-matrix selection, Gauss–Jordan inverse with row swaps
//	markov/      transition systems, transient/absorbing partition (Q, R),
//	             fundamental and limiting matrices, LCM normalization, Solve
//	cmd/absorb   JSON-in, text/JSON-out command line front end
//
// Quick example:
//
//	out, err := markov.Solve([][]int64{
//		{0, 1, 0, 0, 0, 1}, // s0 → s1 or s5
//		{4, 0, 0, 3, 2, 0}, // s1 → s0, s3 or s4
//		{0, 0, 0, 0, 0, 0}, // s2..s5 are terminal
//		{0, 0, 0, 0, 0, 0},
//		{0, 0, 0, 0, 0, 0},
//		{0, 0, 0, 0, 0, 0},
//	}, 0)
//	// out == [0 3 2 9 14]: P(s2)=0, P(s3)=3/14, P(s4)=2/14, P(s5)=9/14
//
// Failures are reported through sentinel errors matched with errors.Is;
// every input problem in markov matches markov.ErrInvalidInput.
package absorb
