// SPDX-License-Identifier: MIT

package element

// Numeric implements Identity[T] for Go's built-in integer and float types
// using the native operators. Integer overflow wraps as in plain Go.
type Numeric[T Number] struct{}

// Compile-time conformance.
var _ Identity[float64] = Numeric[float64]{}

// Ready-made instances for the common element types.
var (
	Float64 = Numeric[float64]{}
	Float32 = Numeric[float32]{}
	Int     = Numeric[int]{}
	Int8    = Numeric[int8]{}
	Int16   = Numeric[int16]{}
	Int32   = Numeric[int32]{}
	Int64   = Numeric[int64]{}
	Uint    = Numeric[uint]{}
	Uint8   = Numeric[uint8]{}
	Uint16  = Numeric[uint16]{}
	Uint32  = Numeric[uint32]{}
	Uint64  = Numeric[uint64]{}
)

func (Numeric[T]) Add(a, b T) T { return a + b }

func (Numeric[T]) Sub(a, b T) T { return a - b }

func (Numeric[T]) Mul(a, b T) T { return a * b }

// Float64 never fails for numeric types.
func (Numeric[T]) Float64(a T) (float64, error) { return float64(a), nil }

func (Numeric[T]) Zero() T { return 0 }

func (Numeric[T]) One() T { return 1 }

func (Numeric[T]) IsZero(a T) bool { return a == 0 }

func (Numeric[T]) IsOne(a T) bool { return a == 1 }
