// SPDX-License-Identifier: MIT

package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// Rational is an exact fraction kept in lowest terms with a positive denominator.
// The backing *big.Rat is private and never mutated once the value is built,
// so Rational behaves like a plain value. The zero value is 0.
type Rational struct {
	r *big.Rat // nil means 0
}

// Operation tags for wrapped errors.
const (
	opNew   = "New"
	opDiv   = "Div"
	opInv   = "Inv"
	opParse = "Parse"
)

// rationalErrorf wraps err with an operation tag, keeping errors.Is working.
func rationalErrorf(tag string, err error) error {
	return fmt.Errorf("rational.%s: %w", tag, err)
}

// New returns num/den reduced to lowest terms.
// Returns ErrDivisionByZero if den == 0.
// Complexity: O(1) for int64 inputs.
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, rationalErrorf(opNew, ErrDivisionByZero)
	}

	// big.NewRat normalizes sign and reduces by gcd.
	return Rational{r: big.NewRat(num, den)}, nil
}

// MustNew is like New but panics on a zero denominator.
// Intended for literals in tests and examples where den is known to be non-zero.
func MustNew(num, den int64) Rational {
	v, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return v
}

// FromInt returns the integer n as a Rational.
func FromInt(n int64) Rational {
	return Rational{r: new(big.Rat).SetInt64(n)}
}

// FromBig copies x into a new Rational. A nil x yields 0.
func FromBig(x *big.Rat) Rational {
	if x == nil {
		return Rational{}
	}

	return Rational{r: new(big.Rat).Set(x)}
}

// Zero returns the additive identity.
func Zero() Rational { return Rational{} }

// One returns the multiplicative identity.
func One() Rational { return FromInt(1) }

// Parse reads an integer ("-7"), a fraction ("3/4", "-3/-4") or a decimal
// ("0.125") into a Rational. Surrounding whitespace is ignored.
// Returns ErrDivisionByZero for "p/0" and ErrSyntax for anything else unreadable.
func Parse(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rational{}, rationalErrorf(opParse, ErrSyntax)
	}

	// SetString rejects "p/0" without saying why; check the denominator first.
	if num, den, ok := strings.Cut(s, "/"); ok {
		d, okDen := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if okDen && d.Sign() == 0 {
			return Rational{}, rationalErrorf(opParse, ErrDivisionByZero)
		}
		n, okNum := new(big.Int).SetString(strings.TrimSpace(num), 10)
		if !okNum || !okDen {
			return Rational{}, rationalErrorf(opParse, fmt.Errorf("%q: %w", s, ErrSyntax))
		}

		return Rational{r: new(big.Rat).SetFrac(n, d)}, nil
	}

	x, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, rationalErrorf(opParse, fmt.Errorf("%q: %w", s, ErrSyntax))
	}

	return Rational{r: x}, nil
}

// rat returns the backing value, materializing 0 for the zero Rational.
// The result must be treated as read-only.
func (a Rational) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}

	return a.r
}

// Add returns a + b.
func (a Rational) Add(b Rational) Rational {
	return Rational{r: new(big.Rat).Add(a.rat(), b.rat())}
}

// Sub returns a − b.
func (a Rational) Sub(b Rational) Rational {
	return Rational{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

// Mul returns a × b.
func (a Rational) Mul(b Rational) Rational {
	return Rational{r: new(big.Rat).Mul(a.rat(), b.rat())}
}

// Neg returns −a.
func (a Rational) Neg() Rational {
	return Rational{r: new(big.Rat).Neg(a.rat())}
}

// Div returns a ÷ b, or ErrDivisionByZero when b is zero.
func (a Rational) Div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, rationalErrorf(opDiv, ErrDivisionByZero)
	}

	return Rational{r: new(big.Rat).Quo(a.rat(), b.rat())}, nil
}

// Inv returns 1/a, or ErrDivisionByZero when a is zero.
func (a Rational) Inv() (Rational, error) {
	if a.IsZero() {
		return Rational{}, rationalErrorf(opInv, ErrDivisionByZero)
	}

	return Rational{r: new(big.Rat).Inv(a.rat())}, nil
}

// IsZero reports whether a == 0.
func (a Rational) IsZero() bool {
	return a.r == nil || a.r.Sign() == 0
}

// Sign returns -1, 0 or +1 depending on the sign of a.
func (a Rational) Sign() int {
	if a.r == nil {
		return 0
	}

	return a.r.Sign()
}

// Cmp compares a and b and returns -1, 0 or +1.
func (a Rational) Cmp(b Rational) int {
	return a.rat().Cmp(b.rat())
}

// Equal reports whether a and b denote the same number.
// Both sides are always normalized, so this is a structural comparison.
func (a Rational) Equal(b Rational) bool {
	return a.Cmp(b) == 0
}

// IsInt reports whether the denominator is 1.
func (a Rational) IsInt() bool {
	return a.rat().IsInt()
}

// Num returns a copy of the numerator (carries the sign).
func (a Rational) Num() *big.Int {
	return new(big.Int).Set(a.rat().Num())
}

// Denom returns a copy of the denominator (always > 0).
func (a Rational) Denom() *big.Int {
	return new(big.Int).Set(a.rat().Denom())
}

// Big returns a copy of a as *big.Rat for interop with math/big callers.
func (a Rational) Big() *big.Rat {
	return new(big.Rat).Set(a.rat())
}

// String renders the canonical display form: "n" for integers, "n/d" otherwise.
func (a Rational) String() string {
	r := a.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	return r.Num().String() + "/" + r.Denom().String()
}
