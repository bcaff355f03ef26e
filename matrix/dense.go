// SPDX-License-Identifier: MIT
// Dense is the concrete row-major matrix of rational entries,
// storing elements in a flat slice.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lintrace/rational"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of rational values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int                 // number of rows and columns
	data []rational.Rational // flat backing storage, length == r*c
}

// New creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice (zero Rational is 0).
// Complexity: O(r*c) time and memory.
func New(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]rational.Rational, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int {
	return m.c
}

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool {
	return m.r == m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (rational.Rational, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return rational.Rational{}, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v rational.Rational) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]rational.Rational, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]rational.Rational, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SwapRows exchanges rows i and k in place. Swapping a row with itself is a no-op.
// Complexity: O(c).
func (m *Dense) SwapRows(i, k int) error {
	if i < 0 || i >= m.r || k < 0 || k >= m.r {
		return denseErrorf("SwapRows", i, k, ErrOutOfRange)
	}
	if i == k {
		return nil
	}
	var j int
	ri, rk := i*m.c, k*m.c
	for j = 0; j < m.c; j++ {
		m.data[ri+j], m.data[rk+j] = m.data[rk+j], m.data[ri+j]
	}

	return nil
}

// ToRows returns the entries as a freshly allocated slice of rows.
// Mutating the result never affects m.
func (m *Dense) ToRows() [][]rational.Rational {
	out := make([][]rational.Rational, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = make([]rational.Rational, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy of the Dense matrix.
// The clone shares no storage with m, so later Set/SwapRows on either side
// are invisible to the other.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	copyData := make([]rational.Rational, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Equal reports whether m and b have the same shape and identical entries.
// Two nil matrices are equal; a nil and a non-nil one are not.
func (m *Dense) Equal(b *Dense) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	for idx := range m.data {
		if !m.data[idx].Equal(b.data[idx]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging, one bracketed row per line:
//
//	[2, 1/2]
//	[0, -3]
//
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
