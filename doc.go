// Package mm is a small dense-matrix toolkit: a generic row-major container,
// element-wise algebra, matrix products and three classical eliminations.
//
// What is inside?
//
//	element/: the element capability contract (add, sub, mul, to-float,
//	           zero/one) with built-in numeric and symbolic instances
//	matrix/:  Dense[T] container, arithmetic, formatting, and the
//	           algorithms built on it:
//	             • LU with partial pivoting (P·A = L·U), Solve, Inverse
//	             • Householder QR (reflectors + R), QFromReflectors
//	             • reduced row-echelon form and rank
//	convert/: adapters to gonum's mat.Dense and element-type conversion
//
// Why mm?
//
//   - Generic: arithmetic is written once against element.Arithmetic[T]; a
//     symbolic string element shows products like "ae+bg" verbatim.
//   - Predictable: fixed loop orders, first-maximum pivot tie-break, explicit
//     epsilon policy via functional options.
//   - Safe surface: shape and index violations come back as sentinel errors
//     (errors.Is), never as silently clamped results.
//
// Quick example:
//
//	a, _ := matrix.FromNumbers([][]float64{{2, 1}, {8, 12}})
//	lu, _ := matrix.LU(a)
//	fmt.Printf("%.2v\n", lu.U) // 8.00,12.00\n0.00,-2.00
//
//	go get github.com/katalvlaran/mm
package mm
