// Package matrix implements a dense matrix generic over a pluggable scalar
// (scalar.Real or scalar.Complex).
//
// The matrix package provides:
//
//   - Dense[T]: a p×q grid stored as independently allocated rows, with
//     bounds-checked At/Set/Row accessors and column-aligned rendering.
//   - Factories: New (from a literal), Zeros, ZerosSquare, Identity.
//   - Element-wise kernels: Negate, Add, Sub, Scale (bare number),
//     ScaleBy (scalar of the same kind), Equal, EqualValue.
//   - Algebra: Mul, Transpose, Trace, Det (Laplace, O(n!)),
//     DetElimination (O(n³), opt-in), IsInvertible, Inverse (naive
//     Gauss–Jordan) and Pow (exponentiation by squaring, negative powers via
//     the inverse), LU (Doolittle, no pivoting).
//
// Every operator is a pure function returning a freshly allocated matrix;
// operands are never mutated and results never alias them. Failures are
// reported through wrapped sentinels (ErrInvalidShape, ErrDimensionMismatch,
// ErrNonSquare, ErrNotInvertible, ErrTypeMismatch, ErrOutOfRange,
// ErrNilMatrix) matched with errors.Is.
//
// Numeric policy: equality is exact; invertibility uses |det| ≥ 0.001 by
// default (WithInvertibleEpsilon); there is no pivoting in Inverse.
//
// Row-echelon reduction lives in the sibling package echelon.
package matrix
