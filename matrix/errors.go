// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every public operation returns these sentinels (possibly wrapped
// with an operation tag) and tests check them via errors.Is. No operation
// panics on a caller-triggered precondition violation; option constructors
// are the only exception (programmer error, see options.go).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Operations
// wrap these with fmt.Errorf("<Op>: <detail>: %w", ErrX) so the detail text
// names the offending dimensions or bounds while errors.Is still matches.

var (
	// ErrInvalidDimensions is returned when a constructor gets negative sizes.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when literal rows are ragged, or when an
	// operation needs a non-empty operand and got an empty one.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index or a resolved Cut bound lies
	// outside the matrix, or that a Cut range is reversed.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes: Add/Sub with
	// different shapes, Mul with A.Cols != B.Rows, Dot with different lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required (Inverse, Solve).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotVector signals a vector-shaped operand was required: a single row
	// for Dot, a single column for Solve.
	ErrNotVector = errors.New("matrix: operand is not a vector")

	// ErrNoIdentity is returned when an operation needs Zero/One but the
	// matrix element contract does not implement element.Identity.
	ErrNoIdentity = errors.New("matrix: element type has no zero/one")

	// ErrEmptyReflectors is returned by QFromReflectors for an empty sequence.
	ErrEmptyReflectors = errors.New("matrix: empty reflector sequence")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilOps is returned by constructors given a nil element contract.
	ErrNilOps = errors.New("matrix: nil element contract")
)
