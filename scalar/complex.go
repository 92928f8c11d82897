package scalar

import "math"

// Complex is R + iC with float64 components.
// The zero value is 0+0i.
type Complex struct {
	R float64 // real part
	C float64 // imaginary part
}

var _ Scalar[Complex] = Complex{}

// NewComplex returns r + ic.
func NewComplex(r, c float64) Complex { return Complex{R: r, C: c} }

// FromReal lifts r onto the real axis.
func FromReal(r float64) Complex { return Complex{R: r} }

// Add returns x + y component-wise.
func (x Complex) Add(y Complex) Complex { return Complex{R: x.R + y.R, C: x.C + y.C} }

// Sub returns x - y component-wise.
func (x Complex) Sub(y Complex) Complex { return Complex{R: x.R - y.R, C: x.C - y.C} }

// Neg returns -x.
func (x Complex) Neg() Complex { return Complex{R: -x.R, C: -x.C} }

// Mul returns (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (x Complex) Mul(y Complex) Complex {
	return Complex{
		R: x.R*y.R - x.C*y.C,
		C: x.R*y.C + x.C*y.R,
	}
}

// Div multiplies x by the conjugate of y over |y|².
// Division by 0+0i returns ErrDivisionByZero.
func (x Complex) Div(y Complex) (Complex, error) {
	den := y.R*y.R + y.C*y.C
	if den == 0 {
		return Complex{}, ErrDivisionByZero
	}

	return Complex{
		R: (x.R*y.R + x.C*y.C) / den,
		C: (x.C*y.R - x.R*y.C) / den,
	}, nil
}

// MulFloat scales both components by k.
func (x Complex) MulFloat(k float64) Complex { return Complex{R: x.R * k, C: x.C * k} }

// DivFloat divides both components by k.
func (x Complex) DivFloat(k float64) (Complex, error) {
	if k == 0 {
		return Complex{}, ErrDivisionByZero
	}

	return Complex{R: x.R / k, C: x.C / k}, nil
}

// Abs returns sqrt(r² + c²).
func (x Complex) Abs() float64 { return math.Sqrt(x.R*x.R + x.C*x.C) }

// Conj returns r - ic.
func (x Complex) Conj() Complex { return Complex{R: x.R, C: -x.C} }

// Equal reports exact equality of both components.
func (x Complex) Equal(y Complex) bool { return x.R == y.R && x.C == y.C }

// IsZero reports x == 0+0i.
func (x Complex) IsZero() bool { return x.R == 0 && x.C == 0 }

// Zero returns 0+0i.
func (Complex) Zero() Complex { return Complex{} }

// One returns 1+0i.
func (Complex) One() Complex { return Complex{R: 1} }

// Complex128 converts x to the builtin complex type.
func (x Complex) Complex128() complex128 { return complex(x.R, x.C) }

// String renders x with the imaginary unit written before its coefficient:
//
//	c == 0          → "r"
//	r == 0          → "i", "-i" or "i{c}"
//	c == 1 / c == -1 → "r + i" / "r - i"
//	c < 0           → "r - i{-c}"
//	otherwise       → "r + i{c}"
func (x Complex) String() string {
	switch {
	case x.C == 0:
		return formatFloat(x.R)
	case x.R == 0:
		switch x.C {
		case 1:
			return "i"
		case -1:
			return "-i"
		default:
			return "i" + formatFloat(x.C)
		}
	case x.C == 1:
		return formatFloat(x.R) + " + i"
	case x.C == -1:
		return formatFloat(x.R) + " - i"
	case x.C < 0:
		return formatFloat(x.R) + " - i" + formatFloat(-x.C)
	default:
		return formatFloat(x.R) + " + i" + formatFloat(x.C)
	}
}
