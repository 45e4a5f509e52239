// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/absorb/rational"
)

const opNormalize = "Normalize"

// Normalize expresses probs over their least common denominator.
// It returns the numerators (in input order) and the common denominator d,
// with probs[i] == numerators[i]/d for every i.
//
// The denominator is the LCM of the reduced input denominators, so it is
// the smallest positive d that works; for a single 0 input it is 1.
//
// Errors: ErrInvalidInput for an empty slice.
// Complexity: O(k) big-int GCD operations.
func Normalize(probs []rational.Rat) ([]*big.Int, *big.Int, error) {
	if len(probs) == 0 {
		return nil, nil, markovErrorf(opNormalize, fmt.Errorf("%w: no probabilities", ErrInvalidInput))
	}

	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, p := range probs {
		d := p.Den()
		// lcm = lcm / gcd(lcm, d) * d
		g.GCD(nil, nil, lcm, d)
		lcm.Quo(lcm, g).Mul(lcm, d)
	}

	nums := make([]*big.Int, len(probs))
	for i, p := range probs {
		scale := new(big.Int).Quo(lcm, p.Den())
		nums[i] = scale.Mul(scale, p.Num())
	}

	return nums, lcm, nil
}

// checkNormalized reports ErrNotStochastic unless Σ nums == den.
func checkNormalized(nums []*big.Int, den *big.Int) error {
	sum := new(big.Int)
	for _, n := range nums {
		sum.Add(sum, n)
	}
	if sum.Cmp(den) != 0 {
		return fmt.Errorf("sum %s, denominator %s: %w", sum, den, ErrNotStochastic)
	}

	return nil
}
