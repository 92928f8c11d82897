// SPDX-License-Identifier: MIT
// Package matrix: element-wise kernels and comparison.
//
// Purpose:
//   - Negate, Add, Sub, Scale, ScaleBy: shape-preserving maps producing fresh matrices.
//   - Equal / EqualValue: exact comparison with typed and dynamic entry points.
//
// Determinism:
//   - Fixed i→j loops; inputs are never mutated.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvalg/scalar"
)

// ewMap applies f to every element of m into a new matrix.
func ewMap[T scalar.Scalar[T]](m *Dense[T], f func(v T) T) *Dense[T] {
	out := make([][]T, m.p)
	for i := 0; i < m.p; i++ {
		row := make([]T, m.q)
		for j := 0; j < m.q; j++ {
			row[j] = f(m.vals[i][j])
		}
		out[i] = row
	}

	return &Dense[T]{p: m.p, q: m.q, vals: out}
}

// ewZip combines a and b cell by cell. Shapes must already be validated.
func ewZip[T scalar.Scalar[T]](a, b *Dense[T], f func(x, y T) T) *Dense[T] {
	out := make([][]T, a.p)
	for i := 0; i < a.p; i++ {
		row := make([]T, a.q)
		for j := 0; j < a.q; j++ {
			row[j] = f(a.vals[i][j], b.vals[i][j])
		}
		out[i] = row
	}

	return &Dense[T]{p: a.p, q: a.q, vals: out}
}

// Negate returns -A element-wise; shape preserved.
// Errors: ErrNilMatrix. Complexity: O(p*q).
func Negate[T scalar.Scalar[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	return ewMap(m, func(v T) T { return v.Neg() }), nil
}

// Add computes the element-wise sum C = A + B into a fresh matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(p*q), Space O(p*q).
func Add[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return ewZip(a, b, func(x, y T) T { return x.Add(y) }), nil
}

// Sub computes the element-wise difference C = A - B into a fresh matrix.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return ewZip(a, b, func(x, y T) T { return x.Sub(y) }), nil
}

// Scale returns k·A for a bare real number k.
// k·A and A·k are the same operation; there is a single entry point.
// Errors: ErrNilMatrix. Complexity: O(p*q).
func Scale[T scalar.Scalar[T]](m *Dense[T], k float64) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return ewMap(m, func(v T) T { return v.MulFloat(k) }), nil
}

// ScaleBy returns k·A for a scalar k of the matrix's own kind
// (e.g. multiplying a complex matrix by i).
func ScaleBy[T scalar.Scalar[T]](m *Dense[T], k T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return ewMap(m, func(v T) T { return k.Mul(v) }), nil
}

// Equal reports whether a and b have the same shape and exactly equal
// elements. Equality has no epsilon: for floating scalars two results that
// differ in the last bit compare unequal.
//
// Behavior highlights:
//   - Different shapes → (false, nil), not an error.
//   - A nil side is not a matrix → ErrTypeMismatch.
//
// Complexity: O(p*q) worst case; stops at the first difference.
func Equal[T scalar.Scalar[T]](a, b *Dense[T]) (bool, error) {
	if a == nil || b == nil {
		return false, matrixErrorf(opEqual, ErrTypeMismatch)
	}
	if a.p != b.p || a.q != b.q {
		return false, nil
	}
	for i := 0; i < a.p; i++ {
		for j := 0; j < a.q; j++ {
			if !a.vals[i][j].Equal(b.vals[i][j]) {
				return false, nil
			}
		}
	}

	return true, nil
}

// EqualValue compares a against an operand of unknown kind, for callers
// that hold values as `any` (interpreters, CLI stacks). Only *Dense[T] and
// Dense[T] are comparable; anything else is ErrTypeMismatch.
func EqualValue[T scalar.Scalar[T]](a *Dense[T], v any) (bool, error) {
	switch b := v.(type) {
	case *Dense[T]:
		return Equal(a, b)
	case Dense[T]:
		return Equal(a, &b)
	default:
		return false, matrixErrorf(opEqual, fmt.Errorf("%w: got %T", ErrTypeMismatch, v))
	}
}
