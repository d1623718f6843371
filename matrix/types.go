// SPDX-License-Identifier: MIT

// Package matrix: domain types.
// This file holds the read-only Matrix view interface and the plain result
// aggregates returned by the factorizations. Errors and options live in
// dedicated files (errors.go, options.go).
package matrix

// Matrix is the read-only view shared by every grid in this package.
// Validators and adapters (package convert) accept it so that they do not
// depend on the concrete storage.
//
// Complexity: all methods are expected O(1).
type Matrix[T any] interface {
	// Rows returns the number of rows (height).
	Rows() int

	// Cols returns the number of columns (width); 0 when Rows() == 0.
	Cols() int

	// At retrieves the element at (i, j) or returns ErrOutOfRange.
	At(i, j int) (T, error)
}

// LUResult is the outcome of LU: P·A = L·U.
//   - L: unit lower-triangular, Rows(A)×Rows(A).
//   - U: upper-triangular (echelon), same shape as A.
//   - P: Rows(A)×Rows(A) 0/1 permutation matrix (identity when unpivoted).
//
// The fields are exported so callers may assemble a result by hand and feed
// it to Solve.
type LUResult struct {
	L *Dense[float64]
	U *Dense[float64]
	P *Dense[float64]
}

// QRResult is the outcome of QR.
//   - R: upper-trapezoidal, same shape as A.
//   - H: one full-size (Rows(A)×Rows(A)) Householder reflector per
//     eliminated column, in generation order: H[n-1]···H[0]·A = R.
type QRResult struct {
	R *Dense[float64]
	H []*Dense[float64]
}
