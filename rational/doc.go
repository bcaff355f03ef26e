// SPDX-License-Identifier: MIT

// Package rational provides an exact, immutable fraction value used by every
// lintrace algorithm.
//
// What & Why:
//
//	Tracing procedures such as Gaussian elimination or cofactor inversion are
//	meant to be read by humans, step after step. Floating-point rounding would
//	turn 1/3 into 0.333333 and make the recorded steps lie. Rational keeps every
//	entry as numerator/denominator in lowest terms with a positive denominator,
//	so equality and zero tests are exact.
//
// Value semantics:
//
//   - A Rational is never mutated after construction; every operation returns a
//     fresh value. Copying a Rational (assignment, slices, struct fields) is safe.
//   - The zero value is the number 0 and is ready to use.
//
// Display:
//
//   - String renders "7" when the denominator is 1 and "-3/4" otherwise.
//   - MarshalText / UnmarshalText and UnmarshalYAML use the same canonical form,
//     and additionally accept decimal input ("0.25") when parsing.
//
// Errors:
//
//   - ErrDivisionByZero: a zero denominator was supplied to New, or Div/Inv was
//     asked to divide by zero.
//   - ErrSyntax: Parse could not read the text as an integer, fraction or decimal.
//
// Complexity:
//
//	Arithmetic is delegated to math/big and is O(d²) in the number of digits d;
//	for classroom-sized matrices this is effectively O(1).
package rational
