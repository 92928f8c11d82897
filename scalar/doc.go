// Package scalar defines the numeric element types the matrix engine is
// generic over.
//
// What is a Scalar?
//
//	A value type closed under +, -, ×, ÷ that also knows its additive and
//	multiplicative identities, its magnitude and a canonical rendering.
//	The matrix package never looks inside a scalar; it only calls the
//	methods of the Scalar[T] constraint.
//
// Variants:
//   - Real:    a single float64 component.
//   - Complex: a pair (R, C) of float64 components, R + iC.
//
// Division policy:
//
//	Div/DivFloat never produce ±Inf or NaN. A zero divisor yields
//	ErrDivisionByZero for both variants, so a bad pivot surfaces as an error
//	at the point of detection instead of poisoning later results.
//
// Parsing:
//
//	ParseReal and ParseComplex turn user literals ("2", "1 - i3", "-2.5i")
//	into values. They are used by the CLI and the YAML loader only.
//
// Equality is exact (no epsilon). Comparing floating results of long
// computations should go through Abs of the difference instead.
package scalar
