// SPDX-License-Identifier: MIT

package cofactor

import (
	"fmt"

	"github.com/katalvlaran/lintrace/matrix"
	"github.com/katalvlaran/lintrace/rational"
)

// Determinant returns det(m) by recursive cofactor expansion along row 0:
//
//	det([a])          = a
//	det([[a b][c d]]) = ad − bc
//	det(A)            = Σ_j (−1)^j · a_0j · det(M_0j),  n ≥ 3
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n!) time; the recursion is kept plain on purpose.
func Determinant(m *matrix.Dense) (rational.Rational, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return rational.Rational{}, fmt.Errorf("%s: %w", opDeterminant, err)
	}

	return detRows(m.ToRows()), nil
}

// Cofactor returns C_ij = (−1)^(i+j) · det(M_ij) for 0-based i, j.
// For a 1×1 matrix the minor is empty and C_00 = 1.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrOutOfRange.
func Cofactor(m *matrix.Dense, i, j int) (rational.Rational, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return rational.Rational{}, fmt.Errorf("%s: %w", opCofactor, err)
	}
	n := m.Rows()
	if i < 0 || i >= n || j < 0 || j >= n {
		return rational.Rational{}, fmt.Errorf("%s(%d,%d): %w", opCofactor, i, j, matrix.ErrOutOfRange)
	}

	return signed(i+j, detRows(minorRows(m.ToRows(), i, j))), nil
}

// CofactorMatrix returns the n×n matrix of cofactors C_ij.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func CofactorMatrix(m *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opCofactorMatrix, err)
	}

	rows := m.ToRows()
	n := len(rows)
	out := make([][]rational.Rational, n)
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = make([]rational.Rational, n)
		for j = 0; j < n; j++ {
			out[i][j] = signed(i+j, detRows(minorRows(rows, i, j)))
		}
	}

	c, err := matrix.FromRows(out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCofactorMatrix, err)
	}

	return c, nil
}

// Adjugate returns adj(m) = Cᵀ, the transpose of the cofactor matrix.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Adjugate(m *matrix.Dense) (*matrix.Dense, error) {
	c, err := CofactorMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAdjugate, err)
	}
	adj, err := matrix.Transpose(c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAdjugate, err)
	}

	return adj, nil
}

// detRows is the recursive kernel behind Determinant.
// rows must be square; the empty matrix has determinant 1.
func detRows(rows [][]rational.Rational) rational.Rational {
	switch n := len(rows); n {
	case 0:
		return rational.One()
	case 1:
		return rows[0][0]
	case 2:
		return rows[0][0].Mul(rows[1][1]).Sub(rows[0][1].Mul(rows[1][0]))
	default:
		total := rational.Zero()
		var j int
		for j = 0; j < n; j++ {
			term := rows[0][j].Mul(detRows(minorRows(rows, 0, j)))
			total = total.Add(signed(j, term))
		}

		return total
	}
}

// minorRows returns rows without row r and column c. Entries are shared by
// value, which is safe because rational.Rational is immutable.
func minorRows(rows [][]rational.Rational, r, c int) [][]rational.Rational {
	out := make([][]rational.Rational, 0, len(rows)-1)
	for i, row := range rows {
		if i == r {
			continue
		}
		next := make([]rational.Rational, 0, len(row)-1)
		next = append(next, row[:c]...)
		next = append(next, row[c+1:]...)
		out = append(out, next)
	}

	return out
}

// signed returns v when k is even and −v when k is odd.
func signed(k int, v rational.Rational) rational.Rational {
	if k%2 != 0 {
		return v.Neg()
	}

	return v
}
