// SPDX-License-Identifier: MIT
// Package matrix: constructors from nested slices.
//
// Purpose:
//   - Turn caller data (rows of rationals, integers or text) into a Dense.
//   - Reject empty and ragged input before anything is allocated.
//
// Every constructor copies its input; the caller's slices are never retained.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lintrace/rational"
)

const (
	opFromRows    = "FromRows"
	opFromInts    = "FromInts"
	opFromStrings = "FromStrings"
	opIdentity    = "Identity"
)

// rowShape validates that rows is non-empty and rectangular and returns (r, c).
func rowShape[T any](rows [][]T) (int, int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, 0, ErrBadShape
	}
	c := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != c {
			return 0, 0, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrRagged)
		}
	}

	return len(rows), c, nil
}

// FromRows builds a Dense from a rectangular slice of rows.
// Returns ErrBadShape for empty input and ErrRagged for rows of unequal length.
// Complexity: O(r*c).
func FromRows(rows [][]rational.Rational) (*Dense, error) {
	r, c, err := rowShape(rows)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	m := &Dense{r: r, c: c, data: make([]rational.Rational, 0, r*c)}
	for _, row := range rows {
		m.data = append(m.data, row...)
	}

	return m, nil
}

// FromInts builds a Dense from integer rows.
// Same shape rules as FromRows.
func FromInts(rows [][]int64) (*Dense, error) {
	r, c, err := rowShape(rows)
	if err != nil {
		return nil, matrixErrorf(opFromInts, err)
	}

	m := &Dense{r: r, c: c, data: make([]rational.Rational, 0, r*c)}
	for _, row := range rows {
		for _, v := range row {
			m.data = append(m.data, rational.FromInt(v))
		}
	}

	return m, nil
}

// FromStrings builds a Dense by parsing every entry with rational.Parse,
// so "3", "-1/2" and "0.25" are all accepted.
// Parse failures are reported with their (row, col) position.
func FromStrings(rows [][]string) (*Dense, error) {
	r, c, err := rowShape(rows)
	if err != nil {
		return nil, matrixErrorf(opFromStrings, err)
	}

	m := &Dense{r: r, c: c, data: make([]rational.Rational, 0, r*c)}
	var v rational.Rational
	for i, row := range rows {
		for j, s := range row {
			if v, err = rational.Parse(s); err != nil {
				return nil, matrixErrorf(opFromStrings, fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			m.data = append(m.data, v)
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
// Returns ErrBadShape if n <= 0.
func Identity(n int) (*Dense, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	one := rational.One()
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}
