// Package rational provides an exact fraction type backed by math/big.
//
// A Rat is an immutable value: every arithmetic method returns a fresh,
// fully reduced result and never touches its receiver or arguments.
// Invariants held by every Rat produced by this package:
//
//   - the denominator is strictly positive;
//   - gcd(|numerator|, denominator) == 1;
//   - zero is always represented as 0/1.
//
// The zero value of Rat is a valid 0/1, so []Rat obtained from make() is a
// vector of zeros without further initialization.
//
// Construction from a zero denominator and division by a zero Rat return
// ErrDivisionByZero instead of panicking.
//
//	half, _ := rational.New(1, 2)
//	third, _ := rational.New(1, 3)
//	sum := half.Add(third) // 5/6
package rational
