// Package session runs the interactive matrix menu.
//
// A Session reads the dimensions and entries of a starting matrix, then
// loops over a one-letter menu:
//
//	S  Sum              P  Product          E  Exponentiation
//	T  Transpose        TR Trace            D  Determinant
//	I  Inverse          R  Row Echelon Form Q  Quit
//
// Sum, Product, Exponentiation, Inverse and Row Echelon Form replace the
// current matrix with their result; Transpose, Trace and Determinant only
// display theirs. A failed operation prints the error and keeps the current
// matrix. Invalid input re-prompts; end of input quits.
//
// The session works over any io.Reader / io.Writer pair and is generic over
// the scalar kind; the caller supplies the cell parser.
package session
