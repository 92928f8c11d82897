package scalar

import (
	"fmt"
	"strconv"
)

// Scalar is the capability set the matrix engine requires from its element
// type. T is the implementing type itself (F-bounded), so Real satisfies
// Scalar[Real] and Complex satisfies Scalar[Complex].
//
// All methods are pure: receivers and arguments are never mutated.
type Scalar[T any] interface {
	// Add returns x + y.
	Add(y T) T
	// Sub returns x - y.
	Sub(y T) T
	// Neg returns -x.
	Neg() T
	// Mul returns x · y.
	Mul(y T) T
	// Div returns x / y, or ErrDivisionByZero when y is zero.
	Div(y T) (T, error)
	// MulFloat returns x · k for a bare real number k.
	MulFloat(k float64) T
	// DivFloat returns x / k, or ErrDivisionByZero when k == 0.
	DivFloat(k float64) (T, error)
	// Abs returns the magnitude |x|.
	Abs() float64
	// Equal reports exact component-wise equality.
	Equal(y T) bool
	// IsZero reports whether x is the additive identity.
	IsZero() bool
	// Zero returns the additive identity; the receiver value is ignored.
	Zero() T
	// One returns the multiplicative identity; the receiver value is ignored.
	One() T

	fmt.Stringer
}

// Zero returns the additive identity of T.
func Zero[T Scalar[T]]() T {
	var z T
	return z.Zero()
}

// One returns the multiplicative identity of T.
func One[T Scalar[T]]() T {
	var z T
	return z.One()
}

// Scale returns k · x with the bare number on the left.
// Multiplication is commutative, so Scale(k, x) == x.MulFloat(k).
func Scale[T Scalar[T]](k float64, x T) T {
	return x.MulFloat(k)
}

// Quo returns k / x with the bare number on the left.
func Quo[T Scalar[T]](k float64, x T) (T, error) {
	return One[T]().MulFloat(k).Div(x)
}

// Sum folds xs with Add starting from the additive identity.
func Sum[T Scalar[T]](xs ...T) T {
	acc := Zero[T]()
	for _, x := range xs {
		acc = acc.Add(x)
	}

	return acc
}

// formatFloat renders v as the shortest decimal that round-trips.
// Negative zero renders as "0".
func formatFloat(v float64) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'g', -1, 64)
}
