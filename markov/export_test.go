// SPDX-License-Identifier: MIT

package markov

// Test bridge: exposes unexported helpers to package markov_test only.

// StuckStates returns the transient states of s that cannot reach absorption.
func StuckStates(s *TransitionSystem) []int { return s.stuckStates() }

// VerifyEnabled reports the resolved verify flag for opts.
func VerifyEnabled(opts ...Option) bool { return gatherOptions(opts...).verify }

// CheckNormalized exposes the Σ numerators == denominator check.
var CheckNormalized = checkNormalized
