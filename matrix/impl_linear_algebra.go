// SPDX-License-Identifier: MIT
// This file provides the algebraic kernels over any scalar kind:
// matrix product, transpose, trace, determinant, invertibility, inverse and
// integer power. All functions perform strict fail-fast validation and return
// wrapped sentinels on misuse.
//
// Purpose:
//   - Define the canonical kernels and the operation tags used in error wrapping.
//   - Keep the reference algorithms (Laplace determinant, naive Gauss–Jordan,
//     exponentiation by squaring) exactly as documented; faster variants are
//     separate named operations, never silent substitutes.

package matrix

import (
	"fmt"
	"math/bits"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lvalg/scalar"
)

var log = logging.Logger("matrix")

// Operation name constants for unified error wrapping.
const (
	opNew            = "New"
	opZeros          = "Zeros"
	opIdentity       = "Identity"
	opNegate         = "Negate"
	opAdd            = "Add"
	opSub            = "Sub"
	opScale          = "Scale"
	opMul            = "Mul"
	opEqual          = "Equal"
	opTranspose      = "Transpose"
	opTrace          = "Trace"
	opDet            = "Det"
	opDetElimination = "DetElimination"
	opIsInvertible   = "IsInvertible"
	opInverse        = "Inverse"
	opPow            = "Pow"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop accumulating Σ_k A[i][k]·B[k][j] from zero.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(p*n*q), Space O(p*q).
func Mul[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mul(a, b), nil
}

// mul is the unchecked product kernel shared by Mul and Pow.
func mul[T scalar.Scalar[T]](a, b *Dense[T]) *Dense[T] {
	zero := scalar.Zero[T]()
	out := make([][]T, a.p)
	var i, j, k int
	for i = 0; i < a.p; i++ {
		row := make([]T, b.q)
		for j = 0; j < b.q; j++ {
			acc := zero
			for k = 0; k < a.q; k++ {
				acc = acc.Add(a.vals[i][k].Mul(b.vals[k][j]))
			}
			row[j] = acc
		}
		out[i] = row
	}

	return &Dense[T]{p: a.p, q: b.q, vals: out}
}

// Transpose returns a new q×p matrix with T[j][i] = A[i][j].
// Errors: ErrNilMatrix. Complexity: O(p*q).
func Transpose[T scalar.Scalar[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := make([][]T, m.q)
	for j := 0; j < m.q; j++ {
		row := make([]T, m.p)
		for i := 0; i < m.p; i++ {
			row[i] = m.vals[i][j]
		}
		out[j] = row
	}

	return &Dense[T]{p: m.q, q: m.p, vals: out}, nil
}

// Trace returns Σ A[i][i].
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(n).
func Trace[T scalar.Scalar[T]](m *Dense[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		var zero T
		return zero, matrixErrorf(opTrace, err)
	}
	acc := scalar.Zero[T]()
	for i := 0; i < m.p; i++ {
		acc = acc.Add(m.vals[i][i])
	}

	return acc, nil
}

// Det computes the determinant by Laplace expansion along the first row.
// Implementation:
//   - n == 1: the single element.
//   - n == 2: a·d − b·c directly.
//   - otherwise: Σ_i sign_i · A[0][i] · det(minor(0,i)), sign starting at +1
//     for column 0 and alternating.
//
// Behavior highlights:
//   - Exact reference algorithm; results on singular/near-singular complex
//     matrices are part of the contract, which is why it is not replaced by
//     elimination. Use DetElimination for large inputs.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level. Callers must bound n.
func Det[T scalar.Scalar[T]](m *Dense[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		var zero T
		return zero, matrixErrorf(opDet, err)
	}
	log.Debugw("laplace determinant", "order", m.p)

	return laplace(m.vals), nil
}

// laplace expands rows (n×n, n ≥ 1) along its first row.
func laplace[T scalar.Scalar[T]](rows [][]T) T {
	n := len(rows)
	switch n {
	case 1:
		return rows[0][0]
	case 2:
		return rows[0][0].Mul(rows[1][1]).Sub(rows[0][1].Mul(rows[1][0]))
	}

	acc := scalar.Zero[T]()
	sign := 1.0
	minor := make([][]T, n-1)
	for i, e := range rows[0] {
		// minor(0,i): drop row 0 and column i.
		for r := 1; r < n; r++ {
			row := make([]T, 0, n-1)
			row = append(row, rows[r][:i]...)
			minor[r-1] = append(row, rows[r][i+1:]...)
		}
		acc = acc.Add(e.MulFloat(sign).Mul(laplace(minor)))
		sign = -sign
	}

	return acc
}

// DetElimination computes the determinant by Gaussian elimination with
// partial pivoting on |·|. It is the O(n^3) alternative to Det and is never
// used implicitly; its rounding differs from the Laplace expansion.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func DetElimination[T scalar.Scalar[T]](m *Dense[T]) (T, error) {
	var zero T
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf(opDetElimination, err)
	}

	n := m.p
	work := copyRows(m.vals)
	det := scalar.One[T]()
	var (
		col, r, j, pivot int
		best, mag        float64
	)
	for col = 0; col < n; col++ {
		pivot, best = col, work[col][col].Abs()
		for r = col + 1; r < n; r++ {
			if mag = work[r][col].Abs(); mag > best {
				pivot, best = r, mag
			}
		}
		if best == 0 {
			return scalar.Zero[T](), nil
		}
		if pivot != col {
			work[pivot], work[col] = work[col], work[pivot]
			det = det.Neg()
		}
		det = det.Mul(work[col][col])
		for r = col + 1; r < n; r++ {
			factor, err := work[r][col].Div(work[col][col])
			if err != nil {
				return zero, matrixErrorf(opDetElimination, err)
			}
			for j = col; j < n; j++ {
				work[r][j] = work[r][j].Sub(factor.Mul(work[col][j]))
			}
		}
	}

	return det, nil
}

// IsInvertible reports |det(A)| ≥ eps, where eps is DefaultInvertibleEpsilon
// unless overridden with WithInvertibleEpsilon.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - That of Det, O(n!).
func IsInvertible[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (bool, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return false, matrixErrorf(opIsInvertible, err)
	}
	o := gatherOptions(opts...)
	det, err := Det(m)
	if err != nil {
		return false, matrixErrorf(opIsInvertible, err)
	}

	return det.Abs() >= o.invertibleEps, nil
}

// Inverse computes A^{-1} by naive Gauss–Jordan elimination.
// Implementation:
//   - Stage 1: IsInvertible gate (|det| ≥ eps); ErrNotInvertible otherwise.
//   - Stage 2: work = copy(A), R = I_n.
//   - Stage 3: for each pivot row i = 0..n-1:
//     divide work[i] and R[i] by work[i][i];
//     for every other row i2, subtract work[i2][i] × (row i) from work[i2] and R[i2].
//   - Stage 4: R now holds the inverse.
//
// Behavior highlights:
//   - No row swapping and no pivot search: a matrix that passes the
//     determinant gate can still meet a zero pivot (e.g. [[0,1],[1,0]]);
//     that case is reported as ErrNotInvertible wrapping
//     scalar.ErrDivisionByZero rather than returning NaNs.
//   - Ill-conditioned inputs just above the threshold are inverted as-is,
//     with whatever rounding the naive scheme produces.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotInvertible.
//
// Complexity:
//   - Time O(n!) for the gate + O(n^3) elimination, Space O(n^2).
func Inverse[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (*Dense[T], error) {
	ok, err := IsInvertible(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if !ok {
		return nil, matrixErrorf(opInverse, ErrNotInvertible)
	}

	n := m.p
	work := copyRows(m.vals)
	res := newZeros[T](n, n)
	one := scalar.One[T]()
	for i := 0; i < n; i++ {
		res.vals[i][i] = one
	}

	var i, i2, j int
	for i = 0; i < n; i++ {
		div := work[i][i]
		log.Debugw("gauss-jordan pivot", "row", i, "pivot", div.String())
		for j = 0; j < n; j++ {
			if work[i][j], err = work[i][j].Div(div); err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("%w: zero pivot at row %d: %w", ErrNotInvertible, i, err))
			}
			if res.vals[i][j], err = res.vals[i][j].Div(div); err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("%w: zero pivot at row %d: %w", ErrNotInvertible, i, err))
			}
		}

		for i2 = 0; i2 < n; i2++ {
			if i2 == i {
				continue
			}
			sub := work[i2][i]
			for j = 0; j < n; j++ {
				work[i2][j] = work[i2][j].Sub(work[i][j].Mul(sub))
				res.vals[i2][j] = res.vals[i2][j].Sub(res.vals[i][j].Mul(sub))
			}
		}
	}

	return res, nil
}

// Pow raises a square matrix to an integer power.
// Implementation:
//   - n == 0: I_p.
//   - n > 0: acc = copy(A); square acc ⌊log2 n⌋ times; then multiply by A
//     another n − 2^⌊log2 n⌋ times.
//   - n < 0: base = Inverse(A), then the same schedule with |n|.
//
// Behavior highlights:
//   - Equals A^n; for integer-valued entries the result is identical to
//     repeated multiplication, for fractional entries rounding may differ.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotInvertible (negative n only).
//
// Complexity:
//   - Time O(n^3 · (log|k| + |k| − 2^⌊log2|k|⌋)) for exponent k.
func Pow[T scalar.Scalar[T]](m *Dense[T], n int, opts ...Option) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if n == 0 {
		return Identity[T](m.p)
	}

	base := m
	e := uint(n)
	if n < 0 {
		inv, err := Inverse(m, opts...)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
		base = inv
		e = uint(-(n + 1)) + 1 // |n| without overflowing at math.MinInt
	}

	log2n := bits.Len(e) - 1
	rest := e - uint(1)<<uint(log2n)
	log.Debugw("power schedule", "exponent", n, "squarings", log2n, "extra", rest)

	acc := base.Clone()
	for k := 0; k < log2n; k++ {
		acc = mul(acc, acc)
	}
	for k := uint(0); k < rest; k++ {
		acc = mul(acc, base)
	}

	return acc, nil
}
