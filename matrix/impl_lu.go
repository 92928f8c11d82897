// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvalg/scalar"
)

const opLU = "LU"

// LU performs Doolittle LU decomposition on a square matrix A = L·U.
// It returns L (unit lower triangular) and U (upper triangular).
// Implementation:
//   - Stage 1: Validate A (not nil, square).
//   - Stage 2: L = I_n, U = 0.
//   - Stage 3: for each pivot row i:
//     U[i][j] = A[i][j] − Σ_{k<i} L[i][k]·U[k][j]   for j ≥ i;
//     L[j][i] = (A[j][i] − Σ_{k<i} L[j][k]·U[k][i]) / U[i][i]   for j > i.
//
// Behavior highlights:
//   - No pivoting: a zero U[i][i] with rows still to eliminate fails with
//     scalar.ErrDivisionByZero even when A is invertible (e.g. [[0,1],[1,0]]).
//     DetElimination pivots and is the robust way to a determinant.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, scalar.ErrDivisionByZero.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for L and U.
func LU[T scalar.Scalar[T]](m *Dense[T]) (*Dense[T], *Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	n := m.p
	L := newZeros[T](n, n)
	U := newZeros[T](n, n)
	one := scalar.One[T]()
	for i := 0; i < n; i++ {
		L.vals[i][i] = one
	}

	var (
		i, j, k int
		sum     T
		err     error
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			sum = scalar.Zero[T]()
			for k = 0; k < i; k++ {
				sum = sum.Add(L.vals[i][k].Mul(U.vals[k][j]))
			}
			U.vals[i][j] = m.vals[i][j].Sub(sum)
		}
		for j = i + 1; j < n; j++ {
			sum = scalar.Zero[T]()
			for k = 0; k < i; k++ {
				sum = sum.Add(L.vals[j][k].Mul(U.vals[k][i]))
			}
			if L.vals[j][i], err = m.vals[j][i].Sub(sum).Div(U.vals[i][i]); err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("zero pivot at row %d: %w", i, err))
			}
		}
	}
	log.Debugw("lu factorization", "order", n)

	return L, U, nil
}
