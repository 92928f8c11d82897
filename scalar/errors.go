package scalar

import "errors"

var (
	// ErrDivisionByZero is returned by Div/DivFloat/Quo when the divisor is
	// the additive identity (0 for Real, 0+0i for Complex).
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrSyntax is returned by the literal parsers on malformed input.
	ErrSyntax = errors.New("scalar: invalid literal")
)
