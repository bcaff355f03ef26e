// SPDX-License-Identifier: MIT
package trace_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lintrace/matrix"
	"github.com/katalvlaran/lintrace/rational"
	"github.com/katalvlaran/lintrace/trace"
)

func TestLog_AppendOrder(t *testing.T) {
	var l trace.Log
	require.Equal(t, 0, l.Len())
	_, ok := l.Last()
	require.False(t, ok)

	require.Equal(t, 0, l.Append("first", nil, "a"))
	require.Equal(t, 1, l.Append("second", nil, "b"))
	require.Equal(t, 2, l.Append("third", nil, "c"))

	if diff := cmp.Diff([]string{"first", "second", "third"}, l.Descriptions()); diff != "" {
		t.Fatalf("descriptions mismatch (-want +got):\n%s", diff)
	}

	last, ok := l.Last()
	require.True(t, ok)
	require.Equal(t, "third", last.Description)
	require.Equal(t, "c", last.Content)
	require.Nil(t, last.Matrix)
}

func TestLog_SnapshotIsolatedFromSource(t *testing.T) {
	m, err := matrix.FromInts([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	l := trace.New()
	l.Append("snap", m, "")

	// mutate the working copy after recording
	require.NoError(t, m.Set(0, 0, rational.FromInt(100)))
	require.NoError(t, m.SwapRows(0, 1))

	st, err := l.At(0)
	require.NoError(t, err)
	want, err := matrix.FromInts([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.True(t, want.Equal(st.Matrix), "got:\n%s", st.Matrix)
}

func TestLog_AccessorsReturnCopies(t *testing.T) {
	m, err := matrix.FromInts([][]int64{{5}})
	require.NoError(t, err)

	l := trace.New()
	l.Append("only", m, "")

	st, err := l.At(0)
	require.NoError(t, err)
	require.NoError(t, st.Matrix.Set(0, 0, rational.FromInt(-1)))

	all := l.Steps()
	require.NoError(t, all[0].Matrix.Set(0, 0, rational.FromInt(-2)))
	all[0].Description = "changed"

	last, ok := l.Last()
	require.True(t, ok)
	require.Equal(t, "only", last.Description)
	v, err := last.Matrix.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, "5", v.String())
}

func TestLog_AtOutOfRange(t *testing.T) {
	l := trace.New()
	_, err := l.At(0)
	require.ErrorIs(t, err, trace.ErrOutOfRange)
	l.Append("x", nil, "")
	_, err = l.At(-1)
	require.ErrorIs(t, err, trace.ErrOutOfRange)
}
