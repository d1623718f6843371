// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise and product kernels written once against element.Arithmetic.
//   - Products accumulate from the first term (a[i,0]*b[0,j]) instead of a
//     zero, so element types without an additive identity (Symbolic) still
//     multiply.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 for element-wise, i→j→k for products).
//   - One allocation for the result; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAdd   = "Add"
	opSub   = "Sub"
	opMul   = "Mul"
	opScale = "Scale"
	opDot   = "Dot"
	opNorm  = "Norm"
)

// NormZero is the additive identity for norm accumulation.
const NormZero = 0.0

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zip applies f pairwise to two same-shaped matrices into a fresh result.
func zip[T any](a, b *Dense[T], f func(x, y T) T, opTag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape[T](a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense[T]{r: a.r, c: a.c, data: make([]T, len(a.data)), ops: a.ops}
	for idx := range a.data {
		res.data[idx] = f(a.data[idx], b.data[idx])
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch ("Add: A.height (2) != B.height (3)").
//
// Complexity: O(r*c).
func Add[T any](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil[T](a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return zip(a, b, a.ops.Add, opAdd)
}

// Sub computes the element-wise difference C = A - B.
// For symbolic elements this cancels terms textually (see element.Symbolic).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func Sub[T any](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil[T](a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return zip(a, b, a.ops.Sub, opSub)
}

// Scale broadcasts Mul(m[i,j], v) over every element; the scalar is the
// right operand.
//
// Errors:
//   - ErrNilMatrix.
func Scale[T any](m *Dense[T], v T) (*Dense[T], error) {
	if err := ValidateNotNil[T](m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data)), ops: m.ops}
	for idx, x := range m.data {
		res.data[idx] = m.ops.Mul(x, v)
	}

	return res, nil
}

// Mul performs the matrix product C = A × B.
// MAIN DESCRIPTION:
//   - C[i,j] = A[i,0]*B[0,j] + A[i,1]*B[1,j] + ... accumulated left to right,
//     seeded with the first term.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop on the flat buffers.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch: "Mul: A.width (5) != B.height (6)".
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T any](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible[T](a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := a.r, a.c, b.c
	res := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), ops: a.ops}
	if inner == 0 {
		// b has no rows, hence no width: nothing to accumulate.
		return res, nil
	}

	ops := a.ops
	var (
		i, j, k    int
		rowA       []T
		acc        T
		baseResult int
	)
	for i = 0; i < rows; i++ {
		rowA = a.row(i)
		baseResult = i * cols
		for j = 0; j < cols; j++ {
			acc = ops.Mul(rowA[0], b.data[j])
			for k = 1; k < inner; k++ {
				acc = ops.Add(acc, ops.Mul(rowA[k], b.data[k*cols+j]))
			}
			res.data[baseResult+j] = acc
		}
	}

	return res, nil
}

// Dot returns the inner product of two single-row matrices of equal width,
// accumulated from the first term.
//
// Errors:
//   - ErrNotVector: "Dot: A has dim=2, B has dim=2".
//   - ErrDimensionMismatch: "Dot: vector A length=3, vector B length=2".
//   - ErrBadShape for zero-length vectors (no first term to seed from).
func Dot[T any](a, b *Dense[T]) (T, error) {
	var zero T
	if err := ValidateRowVectors[T](a, b); err != nil {
		return zero, matrixErrorf(opDot, err)
	}
	if a.c == 0 {
		return zero, matrixErrorf(opDot, fmt.Errorf("empty vectors: %w", ErrBadShape))
	}

	acc := a.ops.Mul(a.data[0], b.data[0])
	for k := 1; k < a.c; k++ {
		acc = a.ops.Add(acc, a.ops.Mul(a.data[k], b.data[k]))
	}

	return acc, nil
}

// Norm returns the Frobenius norm sqrt(Σ x²) with every element converted
// through the contract's Float64. For a single row or column this is the
// Euclidean vector norm.
//
// Errors:
//   - element.ErrNotNumeric (wrapped) for non-numeric element types.
//
// Complexity: O(r*c).
func (m *Dense[T]) Norm() (float64, error) {
	sum := NormZero
	for idx, x := range m.data {
		f, err := m.ops.Float64(x)
		if err != nil {
			return 0, matrixErrorf(opNorm, fmt.Errorf("element %d: %w", idx, err))
		}
		sum += f * f
	}

	return math.Sqrt(sum), nil
}
