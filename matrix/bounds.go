// SPDX-License-Identifier: MIT

// Package matrix - sub-block extraction with half-open/closed/unbounded ranges.
//
// A Range pairs a start and an end Bound. Each bound is Included, Excluded or
// Unbounded and is resolved against the axis length n:
//
//	start: Included(x) → x,  Excluded(x) → x+1,  Unbounded → 0
//	end:   Included(x) → x,  Excluded(x) → x-1,  Unbounded → n-1
//
// The resolved pair is inclusive on both ends. Shorthands mirror the usual
// range literals:
//
//	All()              ..
//	From(a)            a..
//	To(b)              ..b
//	ToInclusive(b)     ..=b
//	Span(a, b)         a..b
//	SpanInclusive(a,b) a..=b

package matrix

import "fmt"

const ctxCut = "Cut"

// BoundKind tells how a Bound's value is interpreted.
type BoundKind int

const (
	// Unbounded extends the range to the edge of the axis.
	Unbounded BoundKind = iota

	// Included keeps the bound's index in the range.
	Included

	// Excluded drops the bound's index from the range.
	Excluded
)

// Bound is one end of a Range.
type Bound struct {
	Kind  BoundKind
	Value int // ignored for Unbounded
}

// Range selects a contiguous span of rows or columns.
type Range struct {
	Start Bound
	End   Bound
}

// NewRange assembles a Range from explicit bounds.
func NewRange(start, end Bound) Range { return Range{Start: start, End: end} }

// IncludedBound returns an inclusive bound at x.
func IncludedBound(x int) Bound { return Bound{Kind: Included, Value: x} }

// ExcludedBound returns an exclusive bound at x.
func ExcludedBound(x int) Bound { return Bound{Kind: Excluded, Value: x} }

// UnboundedBound returns a bound reaching the edge of the axis.
func UnboundedBound() Bound { return Bound{Kind: Unbounded} }

// All selects the whole axis.
func All() Range { return Range{} }

// From selects [start, n).
func From(start int) Range { return Range{Start: IncludedBound(start)} }

// To selects [0, end).
func To(end int) Range { return Range{End: ExcludedBound(end)} }

// ToInclusive selects [0, end].
func ToInclusive(end int) Range { return Range{End: IncludedBound(end)} }

// Span selects [start, end).
func Span(start, end int) Range {
	return Range{Start: IncludedBound(start), End: ExcludedBound(end)}
}

// SpanInclusive selects [start, end].
func SpanInclusive(start, end int) Range {
	return Range{Start: IncludedBound(start), End: IncludedBound(end)}
}

// Resolve maps the range onto an axis of length n and returns the inclusive
// [start, end] pair. No validation happens here; see Cut.
func (r Range) Resolve(n int) (start, end int) {
	switch r.Start.Kind {
	case Included:
		start = r.Start.Value
	case Excluded:
		start = r.Start.Value + 1
	default:
		start = 0
	}
	switch r.End.Kind {
	case Included:
		end = r.End.Value
	case Excluded:
		end = r.End.Value - 1
	default:
		end = n - 1
	}

	return start, end
}

// Cut extracts a fresh sub-matrix of the rows and columns selected by the
// two ranges, re-indexed from 0.
// MAIN DESCRIPTION:
//   - Copy-based sub-block extraction (no aliasing with m).
//
// Implementation:
//   - Stage 1: resolve both ranges against Rows()/Cols().
//   - Stage 2: validate rows, then columns: start and end inside the axis and
//     start <= end.
//   - Stage 3: copy the block row by row.
//
// Errors:
//   - ErrOutOfRange with the resolved bounds and the valid range, e.g.
//     "Cut: column index out of bounds: [3, 1] / [0, 2]".
//
// Complexity:
//   - Time O(h*w) of the result, Space O(h*w).
func (m *Dense[T]) Cut(rows, cols Range) (*Dense[T], error) {
	rs, re := rows.Resolve(m.r)
	cs, ce := cols.Resolve(m.c)

	if rs < 0 || rs >= m.r || re < 0 || re >= m.r || re < rs {
		return nil, fmt.Errorf("%s: row index out of bounds: [%d, %d] / [0, %d]: %w", ctxCut, rs, re, m.r-1, ErrOutOfRange)
	}
	if cs < 0 || cs >= m.c || ce < 0 || ce >= m.c || ce < cs {
		return nil, fmt.Errorf("%s: column index out of bounds: [%d, %d] / [0, %d]: %w", ctxCut, cs, ce, m.c-1, ErrOutOfRange)
	}

	h, w := re-rs+1, ce-cs+1
	res := &Dense[T]{r: h, c: w, data: make([]T, h*w), ops: m.ops}
	for i := 0; i < h; i++ {
		copy(res.data[i*w:(i+1)*w], m.data[(rs+i)*m.c+cs:(rs+i)*m.c+ce+1])
	}

	return res, nil
}
