// Package lvalg is a small linear-algebra engine over real and complex
// numbers: a dense matrix generic over its scalar kind, with the classic
// textbook algorithms kept exactly as written.
//
// What is in the box?
//
//	scalar/  Real and Complex element types behind one Scalar[T] constraint,
//	           plus literal parsers ("2.5", "1 - i3", "-2i")
//	matrix/  Dense[T]: construction, element-wise arithmetic, product,
//	           transpose, trace, Laplace determinant, Gauss–Jordan inverse,
//	           integer powers by squaring, LU
//	echelon/ reduced row-echelon form and rank
//
// The command-line front end lives in cmd/lvalg (one sub-command per
// operation plus an interactive menu), reading matrices from YAML documents
// and its policy (log level, invertibility threshold, largest determinant
// order) from a TOML file.
//
// Quick start:
//
//	a, _ := matrix.New([][]scalar.Real{{4, 7}, {2, 6}})
//	inv, err := matrix.Inverse(a)   // |det| must be ≥ 0.001
//	sq, _ := matrix.Pow(a, 2)
//	r, _ := echelon.Reduce(a)
//
// Everything returns fresh values; nothing aliases its operands. Failures
// are wrapped sentinels (matrix.ErrNotInvertible, matrix.ErrNonSquare, …)
// for errors.Is.
//
// Non-goals: eigen-decomposition, arbitrary precision, sparse storage and
// any numerical-stability guarantee beyond naive Gaussian elimination.
package lvalg
