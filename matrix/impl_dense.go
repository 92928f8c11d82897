// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row slices) & safe accessors.
//
// Purpose:
//   - Hold a p×q grid of scalars as p independently allocated rows.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Render the grid in the column-aligned "[ a b ]" layout.
//
// Invariants:
//   - p ≥ 1, q ≥ 1, len(vals) == p, len(vals[i]) == q for every i.
//   - No two rows share a backing array, and no Dense shares storage with
//     another Dense or with the caller's literal.
//
// Complexity quicksheet:
//   - New: O(p*q) copy; At/Set: O(1); Clone/Data: O(p*q); String: O(p*q).

package matrix

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/lvalg/scalar"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "[ "
	_fmtRowClose = "]"
	_fmtSep      = " "
	_fmtRowBreak = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a p×q matrix over the scalar type T.
//   - p,q hold dimensions (rows, cols).
//   - vals holds p rows of exactly q scalars; row and column order carry
//     the matrix semantics.
//
// All package operators treat Dense as an immutable value and allocate fresh
// results. Set is the one deliberate escape hatch for trusted in-place edits;
// there is no cached state for it to invalidate, but it must not race with
// concurrent readers.
type Dense[T scalar.Scalar[T]] struct {
	p, q int   // row and column counts (both ≥ 1)
	vals [][]T // p independently allocated rows of length q
}

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Dense[scalar.Real])(nil)
	_ fmt.Stringer = (*Dense[scalar.Complex])(nil)
)

// New builds a matrix from a row-major literal.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: ValidateRows (p ≥ 1, q ≥ 1 from the first row, no ragged rows).
//   - Stage 2: copy every row into a freshly allocated slice.
//
// Behavior highlights:
//   - The caller's slices are not retained; editing vals afterwards does not
//     affect the matrix.
//
// Errors:
//   - ErrInvalidShape (empty, zero-width or ragged literal).
//
// Complexity:
//   - Time O(p*q), Space O(p*q).
func New[T scalar.Scalar[T]](vals [][]T) (*Dense[T], error) {
	if err := ValidateRows(vals); err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Dense[T]{p: len(vals), q: len(vals[0]), vals: copyRows(vals)}, nil
}

// newZeros allocates a p×q matrix of additive identities without validation.
// Each row gets its own backing array.
func newZeros[T scalar.Scalar[T]](p, q int) *Dense[T] {
	zero := scalar.Zero[T]()
	vals := make([][]T, p)
	for i := 0; i < p; i++ {
		row := make([]T, q) // fresh row per iteration; never shared
		for j := range row {
			row[j] = zero
		}
		vals[i] = row
	}

	return &Dense[T]{p: p, q: q, vals: vals}
}

// copyRows deep-copies a row-major grid, one allocation per row.
func copyRows[T any](src [][]T) [][]T {
	dst := make([][]T, len(src))
	for i, row := range src {
		dst[i] = append(make([]T, 0, len(row)), row...)
	}

	return dst
}

// Rows returns the row count p. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.p }

// Cols returns the column count q. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.q }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.p, m.q }

// IsSquare reports p == q.
func (m *Dense[T]) IsSquare() bool { return m.p == m.q }

// checkIndex bounds-checks (row, col).
func (m *Dense[T]) checkIndex(row, col int) error {
	if row < 0 || row >= m.p || col < 0 || col >= m.q {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	if err := m.checkIndex(row, col); err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.vals[row][col], nil
}

// Set stores v at (row, col) in place.
// This is the escape hatch for trusted callers (editors, loaders); it keeps
// the shape invariant because only existing cells can be written.
//
// Errors:
//   - ErrOutOfRange for invalid indices.
//
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	if err := m.checkIndex(row, col); err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.vals[row][col] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange. Complexity: O(q).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.p {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return append(make([]T, 0, m.q), m.vals[i]...), nil
}

// Data returns a deep copy of the grid in row-major order.
// Complexity: O(p*q).
func (m *Dense[T]) Data() [][]T { return copyRows(m.vals) }

// Clone returns a deep copy: new rows, same values.
// Complexity: O(p*q).
func (m *Dense[T]) Clone() *Dense[T] {
	return &Dense[T]{p: m.p, q: m.q, vals: copyRows(m.vals)}
}

// String renders one line per row as "[ e1 e2 ... en ]".
// Implementation:
//   - Stage 1: render every element once and record the widest string per column.
//   - Stage 2: write rows, right-aligning each element to its column width.
//
// Behavior highlights:
//   - Rows are separated by "\n"; there is no trailing newline.
//   - Width is measured in runes.
//
// Complexity:
//   - Time O(p*q), Space O(p*q) for the rendered cells.
func (m *Dense[T]) String() string {
	if m == nil {
		return "<nil>"
	}

	cells := make([][]string, m.p)
	widths := make([]int, m.q)
	var i, j, w int
	for i = 0; i < m.p; i++ {
		cells[i] = make([]string, m.q)
		for j = 0; j < m.q; j++ {
			cells[i][j] = m.vals[i][j].String()
			if w = utf8.RuneCountInString(cells[i][j]); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	for i = 0; i < m.p; i++ {
		if i > 0 {
			b.WriteString(_fmtRowBreak)
		}
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.q; j++ {
			b.WriteString(strings.Repeat(" ", widths[j]-utf8.RuneCountInString(cells[i][j])))
			b.WriteString(cells[i][j])
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
