// Package echelon reduces matrices to reduced row-echelon form.
//
// Reduce is a free function over *matrix.Dense[T]; it does not depend on the
// matrix arithmetic operators and works on a private copy of its input.
// The algorithm is Gauss–Jordan elimination with trivial pivoting: the first
// non-zero entry found scanning down the current column becomes the pivot,
// regardless of magnitude. Zero tests are exact (Scalar.IsZero).
//
// IsReduced checks the reduced row-echelon shape and Rank counts the
// non-zero rows of the reduced form.
package echelon
