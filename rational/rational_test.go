// SPDX-License-Identifier: MIT
// Package rational_test contains unit tests for exact fraction arithmetic.
package rational_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lintrace/rational"
)

func TestNew_NormalizesSignAndTerms(t *testing.T) {
	for _, tc := range []struct {
		num, den int64
		want     string
	}{
		{2, 4, "1/2"},
		{-2, 4, "-1/2"},
		{2, -4, "-1/2"},
		{-2, -4, "1/2"},
		{6, 3, "2"},
		{0, 7, "0"},
		{0, -7, "0"},
	} {
		v, err := rational.New(tc.num, tc.den)
		require.NoError(t, err)
		require.Equal(t, tc.want, v.String(), "New(%d,%d)", tc.num, tc.den)
	}
}

func TestNew_ZeroDenominator(t *testing.T) {
	_, err := rational.New(1, 0)
	require.ErrorIs(t, err, rational.ErrDivisionByZero)

	require.Panics(t, func() { rational.MustNew(3, 0) })
}

func TestZeroValueIsZero(t *testing.T) {
	var z rational.Rational
	require.True(t, z.IsZero())
	require.Equal(t, 0, z.Sign())
	require.Equal(t, "0", z.String())
	require.True(t, z.Equal(rational.Zero()))
	require.True(t, z.Add(rational.One()).Equal(rational.One()))
}

func TestArithmetic(t *testing.T) {
	half := rational.MustNew(1, 2)
	third := rational.MustNew(1, 3)

	require.Equal(t, "5/6", half.Add(third).String())
	require.Equal(t, "1/6", half.Sub(third).String())
	require.Equal(t, "1/6", half.Mul(third).String())
	require.Equal(t, "-1/2", half.Neg().String())

	q, err := half.Div(third)
	require.NoError(t, err)
	require.Equal(t, "3/2", q.String())

	inv, err := rational.MustNew(-2, 5).Inv()
	require.NoError(t, err)
	require.Equal(t, "-5/2", inv.String())
}

func TestArithmetic_OperandsUnchanged(t *testing.T) {
	a := rational.MustNew(3, 4)
	b := rational.MustNew(1, 4)
	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Mul(b)
	_, _ = a.Div(b)
	require.Equal(t, "3/4", a.String())
	require.Equal(t, "1/4", b.String())
}

func TestDiv_ByZero(t *testing.T) {
	_, err := rational.One().Div(rational.Zero())
	require.ErrorIs(t, err, rational.ErrDivisionByZero)

	_, err = rational.Zero().Inv()
	require.ErrorIs(t, err, rational.ErrDivisionByZero)
}

func TestCmpAndEqual(t *testing.T) {
	a := rational.MustNew(2, 6)
	b := rational.MustNew(1, 3)
	c := rational.MustNew(1, 2)

	require.True(t, a.Equal(b))
	require.Equal(t, 0, a.Cmp(b))
	require.Equal(t, -1, a.Cmp(c))
	require.Equal(t, 1, c.Cmp(a))
	require.Equal(t, -1, c.Neg().Sign())
}

func TestNumDenomAreCopies(t *testing.T) {
	a := rational.MustNew(-3, 9)
	n := a.Num()
	d := a.Denom()
	require.Equal(t, "-1", n.String())
	require.Equal(t, "3", d.String())

	n.SetInt64(100)
	d.SetInt64(100)
	require.Equal(t, "-1/3", a.String())
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"7", "7"},
		{" -7 ", "-7"},
		{"3/4", "3/4"},
		{"6/8", "3/4"},
		{"-3/-4", "3/4"},
		{"3/-4", "-3/4"},
		{"0.125", "1/8"},
		{"-2.5", "-5/2"},
	} {
		v, err := rational.Parse(tc.in)
		require.NoError(t, err, "Parse(%q)", tc.in)
		require.Equal(t, tc.want, v.String(), "Parse(%q)", tc.in)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := rational.Parse("1/0")
	require.ErrorIs(t, err, rational.ErrDivisionByZero)

	for _, in := range []string{"", "abc", "1/x", "x/2", "1/2/3"} {
		_, err = rational.Parse(in)
		require.ErrorIs(t, err, rational.ErrSyntax, "Parse(%q)", in)
	}
}

func TestTextRoundTrip(t *testing.T) {
	v := rational.MustNew(-7, 3)
	b, err := v.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "-7/3", string(b))

	var got rational.Rational
	require.NoError(t, got.UnmarshalText(b))
	require.True(t, got.Equal(v))
}

func TestYAML(t *testing.T) {
	var got []rational.Rational
	require.NoError(t, yaml.Unmarshal([]byte(`[1, "-2/4", 0.75]`), &got))
	require.Len(t, got, 3)
	require.Equal(t, "1", got[0].String())
	require.Equal(t, "-1/2", got[1].String())
	require.Equal(t, "3/4", got[2].String())

	out, err := yaml.Marshal([]rational.Rational{rational.FromInt(4), rational.MustNew(1, 3)})
	require.NoError(t, err)
	var back []rational.Rational
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.Len(t, back, 2)
	require.Equal(t, "4", back[0].String())
	require.Equal(t, "1/3", back[1].String())

	var bad []rational.Rational
	err = yaml.Unmarshal([]byte(`[[1, 2]]`), &bad)
	require.ErrorIs(t, err, rational.ErrSyntax)
}
