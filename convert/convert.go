// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mm/element"
	"github.com/katalvlaran/mm/matrix"
)

// ErrEmpty is returned by ToGonum for a matrix with no rows or no columns;
// gonum cannot represent zero-sized dense matrices.
var ErrEmpty = errors.New("convert: empty matrix")

// ToGonum copies m into a freshly allocated *mat.Dense.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmpty.
func ToGonum(m *matrix.Dense[float64]) (*mat.Dense, error) {
	if err := matrix.ValidateNotNil[float64](m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	r, c := m.Shape()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("ToGonum: %dx%d: %w", r, c, ErrEmpty)
	}

	out := mat.NewDense(r, c, nil)
	m.Do(func(i, j int, v float64) bool {
		out.Set(i, j, v)
		return true
	})

	return out, nil
}

// FromGonum copies any gonum matrix into a float64 Dense.
//
// Errors:
//   - matrix.ErrNilMatrix when src is nil.
func FromGonum(src mat.Matrix) (*matrix.Dense[float64], error) {
	if src == nil {
		return nil, fmt.Errorf("FromGonum: %w", matrix.ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := matrix.New[float64](element.Float64, r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	out.Apply(func(i, j int, _ float64) float64 { return src.At(i, j) })

	return out, nil
}

// ToFloat converts every element of m through its contract's Float64, so
// integer matrices can enter the float64-only factorizations.
//
// Errors:
//   - matrix.ErrNilMatrix.
//   - element.ErrNotNumeric (wrapped with the failing position) for
//     non-numeric contracts such as element.Symbolic.
func ToFloat[T any](m *matrix.Dense[T]) (*matrix.Dense[float64], error) {
	if err := matrix.ValidateNotNil[T](m); err != nil {
		return nil, fmt.Errorf("ToFloat: %w", err)
	}
	r, c := m.Shape()
	out, err := matrix.New[float64](element.Float64, r, c)
	if err != nil {
		return nil, fmt.Errorf("ToFloat: %w", err)
	}

	ops := m.Ops()
	var convErr error
	m.Do(func(i, j int, v T) bool {
		f, err := ops.Float64(v)
		if err != nil {
			convErr = fmt.Errorf("ToFloat: element (%d,%d): %w", i, j, err)
			return false
		}
		_ = out.Set(i, j, f)
		return true
	})
	if convErr != nil {
		return nil, convErr
	}

	return out, nil
}
