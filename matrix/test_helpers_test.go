// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for matrix tests.
//   • Keep boilerplate (error checks on construction) out of test bodies.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lintrace/matrix"
	"github.com/katalvlaran/lintrace/rational"
)

// MustInts builds a *Dense from integer rows or fails the test.
func MustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromInts(rows)
	require.NoError(t, err)

	return m
}

// MustStrings builds a *Dense from textual rows or fails the test.
func MustStrings(t *testing.T, rows [][]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromStrings(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) rational.Rational {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireEntries compares every entry of m against want, rendered via String.
func RequireEntries(t *testing.T, want [][]string, m *matrix.Dense) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	var i, j int
	for i = 0; i < len(want); i++ {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j = 0; j < len(want[i]); j++ {
			require.Equal(t, want[i][j], MustAt(t, m, i, j).String(), "entry [%d,%d]", i, j)
		}
	}
}
