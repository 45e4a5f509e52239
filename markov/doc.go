// Package markov solves absorbing Markov chains exactly.
//
// A chain is given as a square table of non-negative integer weights: row i
// lists how strongly state i moves to every state j. A row whose weights are
// all zero is an absorbing (terminal) state; every other state is transient.
//
// The solver normalizes rows into exact transition probabilities, splits the
// chain into the transient→transient block Q and the transient→absorbing
// block R, and computes
//
//	F = (I − Q)⁻¹   fundamental matrix (expected visits)
//	L = F · R       limiting matrix (absorption probabilities)
//
// entirely in rational arithmetic. The probabilities for the start state are
// finally expressed as integer numerators over their least common denominator:
//
//	out, _ := markov.Solve([][]int64{
//		{0, 2, 1, 0, 0},
//		{0, 0, 0, 3, 4},
//		{0, 0, 0, 0, 0},
//		{0, 0, 0, 0, 0},
//		{0, 0, 0, 0, 0},
//	}, 0)
//	// out == [7 6 8 21]
//
// Every solve is a pure function of its input: it owns all intermediate
// matrices, so concurrent calls on independent inputs need no locking. A
// single *Solver caches F and L and is not safe for concurrent use.
//
// Errors: all input problems match ErrInvalidInput via errors.Is; the more
// specific sentinels (ErrNotSquare, ErrNegativeWeight, ErrNoAbsorbing,
// ErrNeverAbsorbs, ErrStartOutOfRange) refine it.
package markov
