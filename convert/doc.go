// Package convert provides two-way adapters between matrix.Dense and
// gonum's mat package, plus element-type conversion into float64:
//   - ToGonum / FromGonum: copy to and from *mat.Dense (any mat.Matrix in).
//   - ToFloat: re-type any Dense through its element contract's Float64.
//
// Use convert to hand data to gonum routines this module does not offer
// (SVD, eigen decomposition) or to cross-check results against them.
package convert
