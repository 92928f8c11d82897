// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the algebraic kernels:
// product, transpose, trace, determinant, inverse and power.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestMul_Rectangular(t *testing.T) {
	a := MustReal(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	b := MustReal(t,
		[]float64{1, 2, 3, 4},
		[]float64{5, 6, 7, 8},
		[]float64{9, 10, 11, 12},
	)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireEqual(t, MustReal(t, []float64{38, 44, 50, 56}, []float64{83, 98, 113, 128}), got)

	alias, err := matrix.Product(a, b)
	require.NoError(t, err)
	RequireEqual(t, got, alias)
}

func TestMul_Square(t *testing.T) {
	a := MustReal(t, []float64{1, 2}, []float64{3, 4})
	b := MustReal(t, []float64{5, 6}, []float64{7, 8})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	RequireEqual(t, MustReal(t, []float64{19, 22}, []float64{43, 50}), got)
}

func TestMul_Errors(t *testing.T) {
	a := MustReal(t, []float64{1, 2, 3}, []float64{4, 5, 6})

	_, err := matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_IdentityLaw(t *testing.T) {
	t.Run("real", func(t *testing.T) {
		a := MustReal(t, []float64{1.5, -2, 3}, []float64{0, 4, -0.25})
		left, err := matrix.Mul(MustIdentity[scalar.Real](t, 2), a)
		require.NoError(t, err)
		RequireEqual(t, a, left)
		right, err := matrix.Mul(a, MustIdentity[scalar.Real](t, 3))
		require.NoError(t, err)
		RequireEqual(t, a, right)
	})
	t.Run("complex", func(t *testing.T) {
		a := MustComplex(t,
			[]scalar.Complex{c(1, 2), c(0, -1)},
			[]scalar.Complex{c(3, 0), c(-2, 5)},
		)
		I := MustIdentity[scalar.Complex](t, 2)
		left, err := matrix.Mul(I, a)
		require.NoError(t, err)
		RequireEqual(t, a, left)
		right, err := matrix.Mul(a, I)
		require.NoError(t, err)
		RequireEqual(t, a, right)
	})
}

func TestTranspose(t *testing.T) {
	a := MustReal(t, []float64{1, 2, 3}, []float64{4, 5, 6})

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	RequireEqual(t, MustReal(t, []float64{1, 4}, []float64{2, 5}, []float64{3, 6}), at)

	back, err := matrix.Transpose(at)
	require.NoError(t, err)
	RequireEqual(t, a, back)

	_, err = matrix.Transpose[scalar.Real](nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTrace(t *testing.T) {
	a := MustReal(t, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9})
	tr, err := matrix.Trace(a)
	require.NoError(t, err)
	assert.Equal(t, scalar.Real(15), tr)

	z := MustComplex(t,
		[]scalar.Complex{c(1, 1), c(9, 9)},
		[]scalar.Complex{c(9, 9), c(2, -3)},
	)
	trz, err := matrix.Trace(z)
	require.NoError(t, err)
	assert.Equal(t, c(3, -2), trz)

	_, err = matrix.Trace(MustReal(t, []float64{1, 2}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDet_BaseCases(t *testing.T) {
	one, err := matrix.Det(MustReal(t, []float64{-7}))
	require.NoError(t, err)
	assert.Equal(t, scalar.Real(-7), one)

	two, err := matrix.Det(MustReal(t, []float64{3, 8}, []float64{4, 6}))
	require.NoError(t, err)
	assert.Equal(t, scalar.Real(-14), two)

	z, err := matrix.Det(MustComplex(t,
		[]scalar.Complex{c(1, 1), c(2, 0)},
		[]scalar.Complex{c(3, 0), c(0, 1)},
	))
	require.NoError(t, err)
	assert.Equal(t, c(-7, 1), z)
}

func TestDet_Laplace(t *testing.T) {
	for _, tc := range []struct {
		name string
		a    *matrix.Dense[scalar.Real]
		want scalar.Real
	}{
		{"singular3", MustReal(t, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9}), 0},
		{"general3", MustReal(t, []float64{6, 1, 1}, []float64{4, -2, 5}, []float64{2, 8, 7}), -306},
		{"triangular4", MustReal(t,
			[]float64{2, 1, 0, 3},
			[]float64{0, 3, 4, 1},
			[]float64{0, 0, 1, 5},
			[]float64{0, 0, 0, 2},
		), 12},
		{"identity5", MustIdentity[scalar.Real](t, 5), 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Det(tc.a)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDet_Errors(t *testing.T) {
	_, err := matrix.Det(MustReal(t, []float64{1, 2, 3}, []float64{4, 5, 6}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Det[scalar.Real](nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.DetElimination(MustReal(t, []float64{1, 2}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDetElimination_MatchesLaplace(t *testing.T) {
	t.Run("real", func(t *testing.T) {
		a := MustReal(t,
			[]float64{0, 2, -1, 3},
			[]float64{1, 0.5, 4, -2},
			[]float64{3, -1, 0, 1},
			[]float64{2, 2, 2, 0.25},
		)
		want, err := matrix.Det(a)
		require.NoError(t, err)
		got, err := matrix.DetElimination(a)
		require.NoError(t, err)
		assert.InDelta(t, float64(want), float64(got), tol)
	})
	t.Run("complex", func(t *testing.T) {
		a := MustComplex(t,
			[]scalar.Complex{c(1, 1), c(2, 0), c(0, -1), c(3, 2)},
			[]scalar.Complex{c(0, 0), c(1, -1), c(4, 0), c(0, 1)},
			[]scalar.Complex{c(2, 3), c(-1, 0), c(1, 1), c(0, 0)},
			[]scalar.Complex{c(0, 2), c(5, 0), c(-2, 1), c(1, 0)},
		)
		want, err := matrix.Det(a)
		require.NoError(t, err)
		got, err := matrix.DetElimination(a)
		require.NoError(t, err)
		assert.LessOrEqual(t, want.Sub(got).Abs(), tol)
	})
	t.Run("singular", func(t *testing.T) {
		got, err := matrix.DetElimination(MustReal(t, []float64{1, 2}, []float64{2, 4}))
		require.NoError(t, err)
		assert.Equal(t, scalar.Real(0), got)
	})
}

func TestIsInvertible(t *testing.T) {
	ok, err := matrix.IsInvertible(MustReal(t, []float64{4, 7}, []float64{2, 6}))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.IsInvertible(MustReal(t, []float64{1, 2}, []float64{2, 4}))
	require.NoError(t, err)
	assert.False(t, ok)

	// threshold is inclusive
	ok, err = matrix.IsInvertible(MustReal(t, []float64{0.5}))
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = matrix.IsInvertible(MustReal(t, []float64{0.5}), matrix.WithInvertibleEpsilon(0.5))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = matrix.IsInvertible(MustReal(t, []float64{1, 2}))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestInverse_Real(t *testing.T) {
	a := MustReal(t, []float64{4, 7}, []float64{2, 6})

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	RequireAllClose(t, MustReal(t, []float64{0.6, -0.7}, []float64{-0.2, 0.4}), inv, tol)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	RequireAllClose(t, MustIdentity[scalar.Real](t, 2), prod, tol)

	alias, err := matrix.InverseOf(a)
	require.NoError(t, err)
	RequireEqual(t, inv, alias)
}

func TestInverse_Complex(t *testing.T) {
	a := MustComplex(t,
		[]scalar.Complex{c(2, 1), c(3, 0)},
		[]scalar.Complex{c(2, 0), c(2, 0)},
	)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	for _, prod := range []func() (*matrix.Dense[scalar.Complex], error){
		func() (*matrix.Dense[scalar.Complex], error) { return matrix.Mul(a, inv) },
		func() (*matrix.Dense[scalar.Complex], error) { return matrix.Mul(inv, a) },
	} {
		got, err := prod()
		require.NoError(t, err)
		RequireAllClose(t, MustIdentity[scalar.Complex](t, 2), got, tol)
	}
}

func TestInverse_NotInvertible(t *testing.T) {
	_, err := matrix.Inverse(MustReal(t, []float64{1, 2}, []float64{2, 4}))
	assert.ErrorIs(t, err, matrix.ErrNotInvertible)

	_, err = matrix.Inverse(MustReal(t, []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{7, 8, 9}))
	assert.ErrorIs(t, err, matrix.ErrNotInvertible)

	// below the default threshold
	_, err = matrix.Inverse(MustReal(t, []float64{0.0005}))
	assert.ErrorIs(t, err, matrix.ErrNotInvertible)
}

func TestInverse_ZeroPivot(t *testing.T) {
	// det = -1 passes the gate, but elimination without row swaps hits 0 at (0,0).
	_, err := matrix.Inverse(MustReal(t, []float64{0, 1}, []float64{1, 0}))
	require.Error(t, err)
	assert.ErrorIs(t, err, matrix.ErrNotInvertible)
	assert.ErrorIs(t, err, scalar.ErrDivisionByZero)
}

func TestPow_Zero(t *testing.T) {
	a := MustReal(t, []float64{2, 3}, []float64{5, 7})
	got, err := matrix.Pow(a, 0)
	require.NoError(t, err)
	RequireEqual(t, MustIdentity[scalar.Real](t, 2), got)

	// singular base is fine for non-negative exponents
	s := MustReal(t, []float64{1, 2}, []float64{2, 4})
	got, err = matrix.Pow(s, 0)
	require.NoError(t, err)
	RequireEqual(t, MustIdentity[scalar.Real](t, 2), got)
}

func TestPow_Fibonacci(t *testing.T) {
	fib := MustReal(t, []float64{1, 1}, []float64{1, 0})
	for _, tc := range []struct {
		n    int
		want *matrix.Dense[scalar.Real]
	}{
		{1, MustReal(t, []float64{1, 1}, []float64{1, 0})},
		{2, MustReal(t, []float64{2, 1}, []float64{1, 1})},
		{5, MustReal(t, []float64{8, 5}, []float64{5, 3})},
		{10, MustReal(t, []float64{89, 55}, []float64{55, 34})},
	} {
		t.Run(fmt.Sprintf("n=%d", tc.n), func(t *testing.T) {
			got, err := matrix.Pow(fib, tc.n)
			require.NoError(t, err)
			RequireEqual(t, tc.want, got)
		})
	}
}

func TestPow_MatchesRepeatedProduct(t *testing.T) {
	a := MustReal(t, []float64{1, -2, 0}, []float64{3, 1, 1}, []float64{0, 2, -1})
	want := a.Clone()
	for n := 1; n <= 9; n++ {
		if n > 1 {
			var err error
			want, err = matrix.Mul(want, a)
			require.NoError(t, err)
		}
		got, err := matrix.Pow(a, n)
		require.NoError(t, err)
		RequireEqual(t, want, got)
	}
}

func TestPow_ExponentLaw(t *testing.T) {
	a := MustReal(t, []float64{1, 2}, []float64{3, 4})
	a2, err := matrix.Pow(a, 2)
	require.NoError(t, err)
	a3, err := matrix.Pow(a, 3)
	require.NoError(t, err)
	a5, err := matrix.Pow(a, 5)
	require.NoError(t, err)

	prod, err := matrix.Mul(a2, a3)
	require.NoError(t, err)
	RequireEqual(t, a5, prod)
}

func TestPow_Negative(t *testing.T) {
	a := MustReal(t, []float64{4, 7}, []float64{2, 6})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	m1, err := matrix.Pow(a, -1)
	require.NoError(t, err)
	RequireEqual(t, inv, m1)

	m2, err := matrix.Pow(a, -2)
	require.NoError(t, err)
	inv2, err := matrix.Mul(inv, inv)
	require.NoError(t, err)
	RequireEqual(t, inv2, m2)

	I3 := MustIdentity[scalar.Real](t, 3)
	got, err := matrix.Pow(I3, -2)
	require.NoError(t, err)
	RequireEqual(t, I3, got)
}

func TestPow_ScalarMultipleOfIdentity(t *testing.T) {
	a := MustReal(t, []float64{2, 0, 0}, []float64{0, 2, 0}, []float64{0, 0, 2})

	got, err := matrix.Pow(a, 9)
	require.NoError(t, err)
	want, err := matrix.Scale(MustIdentity[scalar.Real](t, 3), 512)
	require.NoError(t, err)
	RequireEqual(t, want, got)

	got, err = matrix.Pow(a, -2)
	require.NoError(t, err)
	want, err = matrix.Scale(MustIdentity[scalar.Real](t, 3), 0.25)
	require.NoError(t, err)
	RequireEqual(t, want, got)
}

func TestPow_Complex(t *testing.T) {
	a := MustComplex(t,
		[]scalar.Complex{c(0, 1), c(0, 0)},
		[]scalar.Complex{c(0, 0), c(0, 1)},
	)
	got, err := matrix.Pow(a, 4)
	require.NoError(t, err)
	RequireEqual(t, MustIdentity[scalar.Complex](t, 2), got)
}

func TestPow_Errors(t *testing.T) {
	_, err := matrix.Pow(MustReal(t, []float64{1, 2}), 2)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Pow(MustReal(t, []float64{1, 2}, []float64{2, 4}), -1)
	assert.ErrorIs(t, err, matrix.ErrNotInvertible)

	_, err = matrix.Pow(MustReal(t, []float64{0}), math.MinInt)
	assert.ErrorIs(t, err, matrix.ErrNotInvertible)
}
