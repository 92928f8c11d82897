package scalar

import "math"

// Real is a real scalar backed by float64.
type Real float64

var _ Scalar[Real] = Real(0)

// Add returns x + y.
func (x Real) Add(y Real) Real { return x + y }

// Sub returns x - y.
func (x Real) Sub(y Real) Real { return x - y }

// Neg returns -x.
func (x Real) Neg() Real { return -x }

// Mul returns x · y.
func (x Real) Mul(y Real) Real { return x * y }

// Div returns x / y. A zero divisor is an error rather than ±Inf.
func (x Real) Div(y Real) (Real, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}

	return x / y, nil
}

// MulFloat returns x · k.
func (x Real) MulFloat(k float64) Real { return x * Real(k) }

// DivFloat returns x / k.
func (x Real) DivFloat(k float64) (Real, error) { return x.Div(Real(k)) }

// Abs returns |x|.
func (x Real) Abs() float64 { return math.Abs(float64(x)) }

// Equal reports x == y exactly.
func (x Real) Equal(y Real) bool { return x == y }

// IsZero reports x == 0.
func (x Real) IsZero() bool { return x == 0 }

// Zero returns 0.
func (Real) Zero() Real { return 0 }

// One returns 1.
func (Real) One() Real { return 1 }

// Float64 returns x as a float64.
func (x Real) Float64() float64 { return float64(x) }

// String renders x as the shortest round-trip decimal ("4", "0.5", "-1e-07").
func (x Real) String() string { return formatFloat(float64(x)) }
