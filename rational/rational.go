// SPDX-License-Identifier: MIT

// Package rational - Rat value type and arithmetic.
//
// Purpose:
//   - Keep numerator/denominator in canonical reduced form after every operation.
//   - Never alias caller-owned *big.Int values: inputs are copied, outputs are copied.
//
// Complexity:
//   - Add/Sub/Mul/Div cost one or two big multiplications plus one GCD;
//     the bit width of the operands dominates, not the call count.
package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// bigZero and bigOne are read-only; they back the zero value of Rat and are
// never passed to a mutating big.Int method.
var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Rat is an exact fraction num/den.
// A nil num reads as 0 and a nil den reads as 1, which makes Rat{} == 0/1.
// The pointed-to big.Ints are owned by the Rat and never mutated after construction.
type Rat struct {
	num *big.Int
	den *big.Int
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Rat{}

// numer returns the numerator for read-only use.
func (x Rat) numer() *big.Int {
	if x.num == nil {
		return bigZero
	}
	return x.num
}

// denom returns the denominator for read-only use.
func (x Rat) denom() *big.Int {
	if x.den == nil {
		return bigOne
	}
	return x.den
}

// reduce builds a canonical Rat from num/den, taking ownership of both.
// Caller guarantees den != 0.
//
// Implementation:
//   - Stage 1: zero numerator collapses to 0/1.
//   - Stage 2: move the sign into the numerator.
//   - Stage 3: divide both by gcd(|num|, |den|).
func reduce(num, den *big.Int) Rat {
	if num.Sign() == 0 {
		return Rat{}
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, num, den) // GCD of absolute values
	if g.Cmp(bigOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	return Rat{num: num, den: den}
}

// New returns num/den in reduced form.
// Returns ErrDivisionByZero if den == 0.
func New(num, den int64) (Rat, error) {
	if den == 0 {
		return Rat{}, fmt.Errorf("New(%d, 0): %w", num, ErrDivisionByZero)
	}

	return reduce(big.NewInt(num), big.NewInt(den)), nil
}

// NewBig returns num/den in reduced form. The arguments are copied.
// Returns ErrNilOperand on nil input and ErrDivisionByZero if den == 0.
func NewBig(num, den *big.Int) (Rat, error) {
	if num == nil || den == nil {
		return Rat{}, fmt.Errorf("NewBig: %w", ErrNilOperand)
	}
	if den.Sign() == 0 {
		return Rat{}, fmt.Errorf("NewBig(%s, 0): %w", num, ErrDivisionByZero)
	}

	return reduce(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// FromInt returns the integer v as v/1.
func FromInt(v int64) Rat {
	if v == 0 {
		return Rat{}
	}
	return Rat{num: big.NewInt(v), den: big.NewInt(1)}
}

// FromBig returns the integer v as v/1. A nil v reads as zero.
func FromBig(v *big.Int) Rat {
	if v == nil || v.Sign() == 0 {
		return Rat{}
	}
	return Rat{num: new(big.Int).Set(v), den: big.NewInt(1)}
}

// Zero returns 0/1.
func Zero() Rat { return Rat{} }

// One returns 1/1.
func One() Rat { return FromInt(1) }

// Num returns a copy of the numerator (sign carrier).
func (x Rat) Num() *big.Int { return new(big.Int).Set(x.numer()) }

// Den returns a copy of the denominator (always > 0).
func (x Rat) Den() *big.Int { return new(big.Int).Set(x.denom()) }

// Add returns x + y.
func (x Rat) Add(y Rat) Rat {
	// a/b + c/d = (a*d + c*b) / (b*d)
	num := new(big.Int).Mul(x.numer(), y.denom())
	num.Add(num, new(big.Int).Mul(y.numer(), x.denom()))
	den := new(big.Int).Mul(x.denom(), y.denom())

	return reduce(num, den)
}

// Sub returns x - y.
func (x Rat) Sub(y Rat) Rat {
	num := new(big.Int).Mul(x.numer(), y.denom())
	num.Sub(num, new(big.Int).Mul(y.numer(), x.denom()))
	den := new(big.Int).Mul(x.denom(), y.denom())

	return reduce(num, den)
}

// Mul returns x * y.
func (x Rat) Mul(y Rat) Rat {
	if x.IsZero() || y.IsZero() {
		return Rat{}
	}
	num := new(big.Int).Mul(x.numer(), y.numer())
	den := new(big.Int).Mul(x.denom(), y.denom())

	return reduce(num, den)
}

// Div returns x / y, or ErrDivisionByZero if y is zero.
func (x Rat) Div(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, fmt.Errorf("Div(%s, 0): %w", x, ErrDivisionByZero)
	}
	num := new(big.Int).Mul(x.numer(), y.denom())
	den := new(big.Int).Mul(x.denom(), y.numer())

	return reduce(num, den), nil
}

// Inv returns 1/x, or ErrDivisionByZero if x is zero.
func (x Rat) Inv() (Rat, error) {
	if x.IsZero() {
		return Rat{}, fmt.Errorf("Inv(0): %w", ErrDivisionByZero)
	}

	return reduce(new(big.Int).Set(x.denom()), new(big.Int).Set(x.numer())), nil
}

// Neg returns -x.
func (x Rat) Neg() Rat {
	if x.IsZero() {
		return Rat{}
	}
	return Rat{num: new(big.Int).Neg(x.numer()), den: new(big.Int).Set(x.denom())}
}

// Sign returns -1, 0 or +1.
func (x Rat) Sign() int { return x.numer().Sign() }

// IsZero reports whether x == 0.
func (x Rat) IsZero() bool { return x.numer().Sign() == 0 }

// IsOne reports whether x == 1.
func (x Rat) IsOne() bool {
	return x.numer().Cmp(bigOne) == 0 && x.denom().Cmp(bigOne) == 0
}

// IsInt reports whether the denominator is 1.
func (x Rat) IsInt() bool { return x.denom().Cmp(bigOne) == 0 }

// Cmp compares x and y and returns -1, 0 or +1.
func (x Rat) Cmp(y Rat) int {
	// Denominators are positive, so cross-multiplication preserves order.
	l := new(big.Int).Mul(x.numer(), y.denom())
	r := new(big.Int).Mul(y.numer(), x.denom())

	return l.Cmp(r)
}

// Equal reports whether x == y. Canonical form makes this a field-wise compare.
func (x Rat) Equal(y Rat) bool {
	return x.numer().Cmp(y.numer()) == 0 && x.denom().Cmp(y.denom()) == 0
}

// String formats x as "n/d", or "n" when the denominator is 1.
func (x Rat) String() string {
	if x.IsInt() {
		return x.numer().String()
	}
	return x.numer().String() + "/" + x.denom().String()
}

// Parse reads "n", "n/d" or "-n/d" (surrounding spaces allowed) in base 10.
// Returns ErrSyntax for malformed input and ErrDivisionByZero for "n/0".
func Parse(s string) (Rat, error) {
	numStr, denStr, hasDen := strings.Cut(strings.TrimSpace(s), "/")
	num, ok := new(big.Int).SetString(strings.TrimSpace(numStr), 10)
	if !ok {
		return Rat{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	if !hasDen {
		return FromBig(num), nil
	}
	den, ok := new(big.Int).SetString(strings.TrimSpace(denStr), 10)
	if !ok {
		return Rat{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	if den.Sign() == 0 {
		return Rat{}, fmt.Errorf("Parse(%q): %w", s, ErrDivisionByZero)
	}

	return reduce(num, den), nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures only.
func MustParse(s string) Rat {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}
