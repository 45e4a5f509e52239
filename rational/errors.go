// SPDX-License-Identifier: MIT

package rational

import "errors"

var (
	// ErrDivisionByZero is returned when a Rat would get a zero denominator,
	// either at construction time or as the result of Div/Inv by zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrNilOperand is returned when a nil *big.Int is passed to a constructor.
	ErrNilOperand = errors.New("rational: nil operand")

	// ErrSyntax is returned by Parse for malformed input.
	ErrSyntax = errors.New("rational: invalid syntax")
)
