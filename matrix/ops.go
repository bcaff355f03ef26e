// SPDX-License-Identifier: MIT
// Package matrix: derived operations shared by the tracers.
//
// Every function here is pure: operands are never mutated and each result is
// a fresh Dense with its own storage. Loops run in fixed i→j order so results
// are deterministic.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lintrace/rational"
)

// Operation name constants for unified error wrapping.
const (
	opMinor     = "Minor"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMul       = "Mul"
	opDiagProd  = "DiagonalProduct"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Minor returns the (r−1)×(c−1) matrix obtained by deleting row `row` and
// column `col` (both 0-based) from m.
//
// Errors:
//   - ErrNilMatrix  (m == nil).
//   - ErrOutOfRange (row or col outside m).
//   - ErrBadShape   (m has a single row or column; the minor would be empty).
//
// Complexity:
//   - Time O(r*c), Space O((r−1)*(c−1)).
func Minor(m *Dense, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, ErrOutOfRange))
	}
	if m.r < 2 || m.c < 2 {
		return nil, matrixErrorf(opMinor, fmt.Errorf("%dx%d: %w", m.r, m.c, ErrBadShape))
	}

	out := &Dense{r: m.r - 1, c: m.c - 1, data: make([]rational.Rational, 0, (m.r-1)*(m.c-1))}
	var i, j int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			out.data = append(out.data, m.data[i*m.c+j])
		}
	}

	return out, nil
}

// Transpose returns mᵀ (c×r).
// Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	out := &Dense{r: m.c, c: m.r, data: make([]rational.Rational, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// Scale returns alpha·m.
// Complexity: O(r*c).
func Scale(m *Dense, alpha rational.Rational) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	out := &Dense{r: m.r, c: m.c, data: make([]rational.Rational, len(m.data))}
	for idx, v := range m.data {
		out.data[idx] = alpha.Mul(v)
	}

	return out, nil
}

// Mul returns the product a×b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
// Complexity: O(r*k*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]rational.Rational, a.r*b.c)}
	var i, j, k int
	var sum rational.Rational
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			sum = rational.Zero()
			for k = 0; k < a.c; k++ {
				sum = sum.Add(a.data[i*a.c+k].Mul(b.data[k*b.c+j]))
			}
			out.data[i*b.c+j] = sum
		}
	}

	return out, nil
}

// DiagonalProduct returns ∏ m[i,i] for a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
func DiagonalProduct(m *Dense) (rational.Rational, error) {
	if err := ValidateSquare(m); err != nil {
		return rational.Rational{}, matrixErrorf(opDiagProd, err)
	}

	prod := rational.One()
	var i int
	for i = 0; i < m.r; i++ {
		prod = prod.Mul(m.data[i*m.c+i])
	}

	return prod, nil
}
