// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Kernels wrap with matrixErrorf(op, ErrX) so the message reads
// "Inverse: matrix: matrix is not invertible"; callers still use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> square -> invertibility.

var (
	// ErrInvalidShape is returned when a literal or factory would produce a
	// matrix with p<1, q<1 or ragged rows.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub of different shapes, or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't
	// (trace, determinant, inverse, power).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotInvertible is returned by Inverse (and negative Pow) when
	// |det| is below the invertibility epsilon, or when a zero pivot shows up
	// during Gauss–Jordan elimination.
	ErrNotInvertible = errors.New("matrix: matrix is not invertible")

	// ErrTypeMismatch signals a comparison or operation against an operand
	// that is not a matrix of the same scalar kind.
	ErrTypeMismatch = errors.New("matrix: operand is not a matrix of the same kind")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this, they never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
