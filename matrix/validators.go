// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure and O(1), except ValidateRows which is O(p).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvalg/scalar"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRows checks that vals is a well-formed matrix literal:
// at least one row, a non-empty first row, and every row of the same length.
//
// Errors: ErrInvalidShape (with the offending row index for ragged input).
// Complexity: O(p).
func ValidateRows[T any](vals [][]T) error {
	if len(vals) < 1 {
		return validatorErrorf("ValidateRows", fmt.Errorf("%w: need at least one row", ErrInvalidShape))
	}
	q := len(vals[0])
	if q < 1 {
		return validatorErrorf("ValidateRows", fmt.Errorf("%w: need at least one column", ErrInvalidShape))
	}
	for i, row := range vals {
		if len(row) != q {
			return validatorErrorf("ValidateRows",
				fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidShape, i, len(row), q))
		}
	}

	return nil
}

// ValidateDims checks that p and q are both positive.
// Errors: ErrInvalidShape.
func ValidateDims(p, q int) error {
	if p < 1 || q < 1 {
		return validatorErrorf("ValidateDims", fmt.Errorf("%w: %dx%d", ErrInvalidShape, p, q))
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Errors: ErrNilMatrix.
func ValidateNotNil[T scalar.Scalar[T]](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Errors: ErrDimensionMismatch.
func ValidateSameShape[T scalar.Scalar[T]](a, b *Dense[T]) error {
	if a.p != b.p {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.q != b.q {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Errors: ErrNonSquare.
func ValidateSquare[T scalar.Scalar[T]](m *Dense[T]) error {
	if m.p != m.q {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%w: %dx%d", ErrNonSquare, m.p, m.q))
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape[T scalar.Scalar[T]](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
func ValidateSquareNonNil[T scalar.Scalar[T]](m *Dense[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible[T scalar.Scalar[T]](a, b *Dense[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.q != b.p {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%w: %dx%d × %dx%d", ErrDimensionMismatch, a.p, a.q, b.p, b.q))
	}

	return nil
}
