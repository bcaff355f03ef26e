// SPDX-License-Identifier: MIT

// Package latex renders rationals and matrices as LaTeX fragments.
//
// The fragments are the pre-rendered content blocks carried by trace steps;
// assembling them into a document is left to the consumer. Output needs the
// amsmath package (bmatrix, aligned).
package latex

import (
	"strings"

	"github.com/katalvlaran/lintrace/matrix"
	"github.com/katalvlaran/lintrace/rational"
)

// Rational renders an integer literally and a fraction as \frac{p}{q}.
// A negative fraction keeps its sign outside: -\frac{3}{4}.
func Rational(v rational.Rational) string {
	if v.IsInt() {
		return v.String()
	}
	num := v.Num()
	sign := ""
	if num.Sign() < 0 {
		sign = "-"
		num.Neg(num)
	}

	return sign + `\frac{` + num.String() + `}{` + v.Denom().String() + `}`
}

// Matrix renders m as a bmatrix environment. A nil matrix renders as an empty
// bmatrix, which is how the 0×0 minor of a 1×1 matrix is shown.
func Matrix(m *matrix.Dense) string {
	if m == nil {
		return `\begin{bmatrix}\end{bmatrix}`
	}

	rows := m.ToRows()
	lines := make([]string, len(rows))
	elems := make([]string, m.Cols())
	for i, row := range rows {
		for j, v := range row {
			elems[j] = Rational(v)
		}
		lines[i] = strings.Join(elems, " & ")
	}

	return `\begin{bmatrix}` + strings.Join(lines, ` \\ `) + `\end{bmatrix}`
}

// Display wraps a math expression in a display-math block \[ ... \].
func Display(expr string) string {
	return `\[ ` + expr + ` \]`
}

// Escape makes plain text safe to place in a LaTeX paragraph or heading.
func Escape(s string) string {
	return escaper.Replace(s)
}

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`_`, `\_`,
	`%`, `\%`,
	`&`, `\&`,
	`#`, `\#`,
	`$`, `\$`,
	`{`, `\{`,
	`}`, `\}`,
)
