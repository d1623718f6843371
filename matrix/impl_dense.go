// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a generic row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/SwapRows/SetMatrix return
//     errors instead of panicking.
//   - Keep value semantics: Clone, Cut and Transpose never alias storage.
//
// Complexity quicksheet:
//   - New/NewFill: O(r*c); At/Set: O(1); Clone/Transpose: O(r*c); SwapRows: O(c).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mm/element"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"
	ctxSet       = "Set"
	ctxSwapRows  = "SwapRows"
	ctxSetMatrix = "SetMatrix"
	ctxFromRows  = "FromRows"
	ctxIdentity  = "IsIdentity"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Shape: "Dense.<method>(row,col): <err>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rectangular row-major grid of T.
//   - r,c hold dimensions (rows, cols); c == 0 whenever r == 0.
//   - data is a flat buffer of length r*c (offset = i*c + j).
//   - ops is the element contract every arithmetic kernel goes through.
//
// A Dense exclusively owns its buffer; no two matrices share storage.
type Dense[T any] struct {
	r, c int
	data []T
	ops  element.Arithmetic[T]
}

// Compile-time assertions for interface & fmt conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
	_ fmt.Formatter   = (*Dense[float64])(nil)
)

// New creates a rows×cols matrix holding T's zero value in every cell.
// MAIN DESCRIPTION:
//   - "Pre-sized empty" constructor; callers fill it with Set/SetMatrix.
//
// Implementation:
//   - Stage 1: validate ops != nil and rows, cols >= 0.
//   - Stage 2: normalize width to 0 for a height-0 matrix.
//   - Stage 3: allocate the flat buffer.
//
// Errors:
//   - ErrNilOps, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](ops element.Arithmetic[T], rows, cols int) (*Dense[T], error) {
	if ops == nil {
		return nil, ErrNilOps
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// Width is derived from the first row; without rows there is no width.
	if rows == 0 {
		cols = 0
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), ops: ops}, nil
}

// NewFill creates a rows×cols matrix with every cell set to value.
// Zero dimensions are legal and produce an empty or degenerate matrix.
//
// Errors:
//   - ErrNilOps, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFill[T any](ops element.Arithmetic[T], rows, cols int, value T) (*Dense[T], error) {
	m, err := New(ops, rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = value
	}

	return m, nil
}

// FromRows builds a matrix from literal rows, copying every element.
// MAIN DESCRIPTION:
//   - rows[i][j] becomes element (i, j); the input slices are not retained.
//
// Errors:
//   - ErrNilOps.
//   - ErrBadShape when rows are ragged (message names the offending row).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T any](ops element.Arithmetic[T], rows [][]T) (*Dense[T], error) {
	h, w := len(rows), 0
	if h > 0 {
		w = len(rows[0])
	}
	m, err := New(ops, h, w)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w", ctxFromRows, i, len(row), w, ErrBadShape)
		}
		copy(m.data[i*w:(i+1)*w], row)
	}

	return m, nil
}

// Identity returns the n×n identity under the given contract: One() on the
// diagonal, Zero() elsewhere.
//
// Errors:
//   - ErrNilOps, ErrInvalidDimensions (n < 0).
func Identity[T any](ops element.Identity[T], n int) (*Dense[T], error) {
	if ops == nil {
		return nil, ErrNilOps
	}
	m, err := NewFill[T](ops, n, n, ops.Zero())
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = ops.One()
	}

	return m, nil
}

// FromNumbers is FromRows with the built-in Numeric contract for T.
func FromNumbers[T element.Number](rows [][]T) (*Dense[T], error) {
	return FromRows[T](element.Numeric[T]{}, rows)
}

// FillNumbers is NewFill with the built-in Numeric contract for T.
func FillNumbers[T element.Number](rows, cols int, value T) (*Dense[T], error) {
	return NewFill[T](element.Numeric[T]{}, rows, cols, value)
}

// IdentityOf is Identity with the built-in Numeric contract for T.
func IdentityOf[T element.Number](n int) (*Dense[T], error) {
	return Identity[T](element.Numeric[T]{}, n)
}

// FromSymbols builds a symbolic string matrix (see element.Symbolic).
func FromSymbols(rows [][]string) (*Dense[string], error) {
	return FromRows[string](element.Symbols, rows)
}

// Rows returns the row count (height). Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count (width). Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix has no rows.
func (m *Dense[T]) IsEmpty() bool { return m.r == 0 }

// Ops returns the element contract the matrix was built with.
func (m *Dense[T]) Ops() element.Arithmetic[T] { return m.ops }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns a copy of the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy sharing nothing but the element contract.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, ops: m.ops}
}

// row returns the live slice backing row i (no bounds check; internal only).
func (m *Dense[T]) row(i int) []T { return m.data[i*m.c : (i+1)*m.c] }

// SwapRows exchanges rows i and j in place. i == j is a no-op.
//
// Errors:
//   - ErrOutOfRange when either index is outside [0, Rows()).
//
// Complexity: O(c).
func (m *Dense[T]) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	ri, rj := m.row(i), m.row(j)
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}

	return nil
}

// SetMatrix writes src into m with its top-left corner at (r0, c0),
// overwriting in place.
// MAIN DESCRIPTION:
//   - Block insertion used by QR (embedding reflectors) and Inverse (columns).
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrOutOfRange when the block does not fit inside m.
//
// Complexity:
//   - Time O(src.r*src.c), Space O(1).
func (m *Dense[T]) SetMatrix(src *Dense[T], r0, c0 int) error {
	if src == nil {
		return denseErrorf(ctxSetMatrix, r0, c0, ErrNilMatrix)
	}
	if r0 < 0 || c0 < 0 || r0+src.r > m.r || c0+src.c > m.c {
		return fmt.Errorf("Dense.%s(%d,%d): %dx%d block does not fit %dx%d: %w",
			ctxSetMatrix, r0, c0, src.r, src.c, m.r, m.c, ErrOutOfRange)
	}
	for i := 0; i < src.r; i++ {
		copy(m.data[(r0+i)*m.c+c0:(r0+i)*m.c+c0+src.c], src.row(i))
	}

	return nil
}

// Transpose returns a new matrix with rows and columns exchanged.
// The result owns fresh storage. Complexity: O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	res := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data)), ops: m.ops}
	if m.c == 0 {
		// An h×0 matrix transposes to 0 rows, which carries no width.
		res.c = 0
		res.data = res.data[:0]

		return res
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res
}

// IsIdentity reports whether m is square with One() on the diagonal and
// Zero() elsewhere. The element contract must implement element.Identity.
//
// Errors:
//   - ErrNoIdentity when m's contract has no zero/one.
func (m *Dense[T]) IsIdentity() (bool, error) {
	id, ok := m.ops.(element.Identity[T])
	if !ok {
		return false, fmt.Errorf("%s: %w", ctxIdentity, ErrNoIdentity)
	}
	if m.r != m.c {
		return false, nil
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			if i == j && !id.IsOne(v) {
				return false, nil
			}
			if i != j && !id.IsZero(v) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major order.
// Typical use: caller-side cleanup such as snapping |v| < eps to zero.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
