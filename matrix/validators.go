// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating nil/shape/vector checks here.
//  - Return sentinel errors carrying the offending dimensions; kernels wrap
//    them with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on failure.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf formats a dimension diagnostic around a sentinel.
func validatorErrorf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden behind the interface.
// Complexity: O(1).
func ValidateNotNil[T any](m Matrix[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense[T]); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b have equal height, then equal width.
// Assumes non-nil operands.
// Complexity: O(1).
func ValidateSameShape[T any](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf(ErrDimensionMismatch, "A.height (%d) != B.height (%d)", a.Rows(), b.Rows())
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf(ErrDimensionMismatch, "A.width (%d) != B.width (%d)", a.Cols(), b.Cols())
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape[T any](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
func ValidateMulCompatible[T any](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(ErrDimensionMismatch, "A.width (%d) != B.height (%d)", a.Cols(), b.Rows())
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
func ValidateSquare[T any](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(ErrNonSquare, "A=[%d,%d]", m.Rows(), m.Cols())
	}

	return nil
}

// ValidateRowVectors checks that a and b are single-row matrices of equal
// width, in that order.
func ValidateRowVectors[T any](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != 1 || b.Rows() != 1 {
		return validatorErrorf(ErrNotVector, "A has dim=%d, B has dim=%d", a.Rows(), b.Rows())
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf(ErrDimensionMismatch, "vector A length=%d, vector B length=%d", a.Cols(), b.Cols())
	}

	return nil
}

// ValidateColumnVector checks that b is a non-nil single-column matrix.
func ValidateColumnVector[T any](b Matrix[T]) error {
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if b.Cols() != 1 {
		return validatorErrorf(ErrNotVector, "b must be a column vector, b=[%d,%d]", b.Rows(), b.Cols())
	}

	return nil
}
