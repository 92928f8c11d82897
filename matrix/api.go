// SPDX-License-Identifier: MIT
// Package matrix: factories and public API facades.
//
// Purpose:
//   - Provide the shape-checked factories (Zeros, Identity) every kernel builds on.
//   - Offer thin, intention-revealing aliases for the canonical kernels.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.

package matrix

import "github.com/katalvlaran/lvalg/scalar"

// ---------- Constructors & Utilities ----------

// Zeros returns a p×q matrix of additive identities.
// Every row is allocated independently; writing through Set on one row never
// shows up in another.
//
// Errors: ErrInvalidShape when p<1 or q<1.
// Complexity: O(p*q).
func Zeros[T scalar.Scalar[T]](p, q int) (*Dense[T], error) {
	if err := ValidateDims(p, q); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return newZeros[T](p, q), nil
}

// ZerosSquare returns the n×n zero matrix (Zeros with q defaulting to p).
func ZerosSquare[T scalar.Scalar[T]](n int) (*Dense[T], error) {
	return Zeros[T](n, n)
}

// Identity returns I_n: multiplicative identities on the diagonal, additive
// identities elsewhere.
//
// Errors: ErrInvalidShape when n<1.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T scalar.Scalar[T]](n int) (*Dense[T], error) {
	if err := ValidateDims(n, n); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	I := newZeros[T](n, n)
	one := scalar.One[T]()
	for i := 0; i < n; i++ { // fixed i order
		I.vals[i][i] = one
	}

	return I, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike[T scalar.Scalar[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opZeros, err)
	}

	return newZeros[T](m.p, m.q), nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike[T scalar.Scalar[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return Identity[T](m.p)
}

// ---------- Aliases (map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T scalar.Scalar[T]](a, b *Dense[T]) (*Dense[T], error) { return Mul(a, b) }

// InverseOf is an alias for Inverse (Gauss–Jordan, no pivoting).
func InverseOf[T scalar.Scalar[T]](m *Dense[T], opts ...Option) (*Dense[T], error) {
	return Inverse(m, opts...)
}
