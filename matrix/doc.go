// Package matrix is a generic dense matrix container and the linear-algebra
// routines built on it.
//
// The matrix package provides:
//
//   - Dense[T], a row-major grid whose arithmetic goes through an
//     element.Arithmetic[T] contract, so the same Add/Sub/Mul/Scale/Dot code
//     serves float64, int and symbolic string elements.
//   - Cut with Range bounds (All, From, To, ToInclusive, Span, SpanInclusive)
//     for copy-based sub-blocks, SetMatrix for block writes, SwapRows.
//   - LU with partial pivoting (P·A = L·U), Solve and Inverse.
//   - Householder, QR and QFromReflectors.
//   - RREF and Rank.
//
// Every precondition violation is a returned error wrapping one of the
// sentinels in errors.go; test with errors.Is. Factorizations accept
// functional options (WithEpsilon, WithPivoting, WithLogger).
//
// Printing follows fmt verbs: %v prints comma-separated rows separated by
// newlines, and %.Nv fixes N decimals for floating-point elements.
//
// See the examples in this package for usage patterns.
package matrix
