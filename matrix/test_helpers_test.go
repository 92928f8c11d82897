// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for real and complex matrices.
//   • Keep tolerance comparisons in one place.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/stretchr/testify/require"
)

// c is a short complex literal.
func c(r, i float64) scalar.Complex { return scalar.NewComplex(r, i) }

// MustReal builds a real matrix from float rows or fails the test.
func MustReal(t testing.TB, rows ...[]float64) *matrix.Dense[scalar.Real] {
	t.Helper()
	vals := make([][]scalar.Real, len(rows))
	for i, row := range rows {
		vals[i] = make([]scalar.Real, len(row))
		for j, v := range row {
			vals[i][j] = scalar.Real(v)
		}
	}
	m, err := matrix.New(vals)
	require.NoError(t, err)

	return m
}

// MustComplex builds a complex matrix or fails the test.
func MustComplex(t testing.TB, rows ...[]scalar.Complex) *matrix.Dense[scalar.Complex] {
	t.Helper()
	m, err := matrix.New(rows)
	require.NoError(t, err)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity[T scalar.Scalar[T]](t testing.TB, n int) *matrix.Dense[T] {
	t.Helper()
	I, err := matrix.Identity[T](n)
	require.NoError(t, err)

	return I
}

// RequireEqual asserts exact matrix equality with a readable diff.
func RequireEqual[T scalar.Scalar[T]](t testing.TB, want, got *matrix.Dense[T]) {
	t.Helper()
	ok, err := matrix.Equal(want, got)
	require.NoError(t, err)
	require.Truef(t, ok, "want:\n%s\ngot:\n%s", want, got)
}

// RequireAllClose asserts equal shapes and |want-got| ≤ tol cell by cell.
func RequireAllClose[T scalar.Scalar[T]](t testing.TB, want, got *matrix.Dense[T], tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, err := want.At(i, j)
			require.NoError(t, err)
			g, err := got.At(i, j)
			require.NoError(t, err)
			require.LessOrEqualf(t, w.Sub(g).Abs(), tol, "cell (%d,%d): want %s got %s", i, j, w, g)
		}
	}
}
