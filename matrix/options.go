// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultInvertibleEpsilon is the |det| threshold at or above which a square
// matrix counts as invertible. It is a tunable policy, not a property of the
// algorithm; override per call with WithInvertibleEpsilon.
const DefaultInvertibleEpsilon = 0.001

const panicEpsilonInvalid = "matrix: WithInvertibleEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	invertibleEps float64 // >= 0; DefaultInvertibleEpsilon
}

// WithInvertibleEpsilon sets the determinant-magnitude threshold used by
// IsInvertible, Inverse and negative Pow.
//
// Behavior highlights:
//   - Panics with a stable message when eps is NaN, ±Inf or negative.
//   - eps == 0 lets every square matrix through the gate; a singular one
//     may then fail inside Inverse at a zero pivot.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithInvertibleEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.invertibleEps = eps }
}

// NewOptions resolves opts on top of the defaults.
// Exposed so callers (CLI, tests) can inspect the effective policy.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// InvertibleEpsilon returns the effective invertibility threshold.
func (o Options) InvertibleEpsilon() float64 { return o.invertibleEps }

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		invertibleEps: DefaultInvertibleEpsilon,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
