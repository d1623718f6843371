// SPDX-License-Identifier: MIT

// Package element: the capability interfaces.
// Kernels in package matrix are written once against Arithmetic[T]; only the
// routines that need neutral elements ask for Identity[T].
package element

import "golang.org/x/exp/constraints"

// Number is the set of built-in types Numeric[T] can serve.
type Number interface {
	constraints.Integer | constraints.Float
}

// Arithmetic is the minimal contract a matrix element type must provide.
//
// Implementations must be stateless value types: matrices keep a copy of the
// Arithmetic they were built with and share it across clones.
type Arithmetic[T any] interface {
	// Add returns a + b.
	Add(a, b T) T

	// Sub returns a - b.
	Sub(a, b T) T

	// Mul returns a * b. Operand order matters for non-commutative types.
	Mul(a, b T) T

	// Float64 converts a to float64. Non-numeric types return ErrNotNumeric.
	Float64(a T) (float64, error)
}

// Identity extends Arithmetic with additive and multiplicative identities.
// Required by identity construction and IsIdentity checks.
type Identity[T any] interface {
	Arithmetic[T]

	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// IsZero reports whether a equals Zero().
	IsZero(a T) bool

	// IsOne reports whether a equals One().
	IsOne(a T) bool
}
