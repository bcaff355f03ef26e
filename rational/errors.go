// SPDX-License-Identifier: MIT

package rational

import "errors"

// Sentinel errors for the rational package. Callers match them with errors.Is.
var (
	// ErrDivisionByZero is returned when a zero denominator or divisor is used.
	// Constructing such a value is a precondition violation of the caller.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrSyntax indicates that Parse could not interpret the input text.
	ErrSyntax = errors.New("rational: invalid syntax")
)
