// Package element defines the capability contract every matrix element type
// must supply, plus ready-made instances for Go's built-in numbers and an
// illustrative symbolic string algebra.
//
// What is an element contract?
//
//	Go cannot attach methods to int or float64, so the operations a matrix
//	needs are carried by a separate value implementing Arithmetic[T]:
//	  • Add, Sub, Mul: the ring-like operations used by matrix kernels
//	  • Float64      : conversion used by norms (may fail, see Symbolic)
//	Operations that need neutral elements (identity matrices, is-identity
//	checks) require the wider Identity[T] contract (Zero, One, IsZero, IsOne).
//
// Built-in instances:
//
//	element.Float64, element.Int, ...: Numeric[T] for every integer/float
//	element.Symbols                 : Symbolic, strings as formulas
//
// Symbolic algebra is a demonstration aid: "a"+"b" renders "a+b", "a"*"b"
// renders "ab", and Sub textually undoes a previous addition. It has no
// zero or one and Float64 always fails with ErrNotNumeric.
package element
