// SPDX-License-Identifier: MIT
// Package matrix: LU factorization with partial pivoting, triangular solve,
// and inversion built on top of them.
//
// Purpose:
//   - LU produces P·A = L·U for any rectangular A.
//   - Solve reuses one factorization per right-hand side.
//   - Inverse solves A·x = e_col for every unit column.
//
// Determinism & Numerics:
//   - Pivot search is strict (>): among equal magnitudes the first row wins.
//   - A column whose best candidate is <= eps is skipped and the pivot row
//     advances anyway, so rank-deficient inputs yield a U that is not in
//     row-echelon form.
//   - No singularity checks: zero pivots in Solve divide through to ±Inf/NaN.

package matrix

import (
	"math"

	"github.com/katalvlaran/mm/element"
)

const (
	opLU      = "LU"
	opSolve   = "Solve"
	opInverse = "Inverse"
)

// LU factorizes A (h×w) into P·A = L·U.
// MAIN DESCRIPTION:
//   - Gaussian elimination over min(h, w) columns, exchanging rows to put the
//     largest-magnitude candidate on the diagonal.
//
// Implementation:
//   - Stage 1: L = 0 (h×h), U = clone(A), P = I (h×h).
//   - Stage 2: for k in [0, min(h,w)):
//     pick the pivot row r >= k maximizing |U[r,k]| (row k with pivoting off);
//     skip the column when |U[r,k]| <= eps; otherwise swap rows k and r in
//     U, P and L, then for every r > k set q = U[r,k]/U[k,k], L[r,k] = q and
//     U[r,c] -= q·U[k,c] for c >= k.
//   - Stage 3: L = I + L.
//
// Options:
//   - WithEpsilon (default DefaultPivotEpsilon), WithPivoting, WithLogger.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(h·w·min(h,w)), Space O(h² + h·w).
func LU(a *Dense[float64], opts ...Option) (LUResult, error) {
	if err := ValidateNotNil[float64](a); err != nil {
		return LUResult{}, matrixErrorf(opLU, err)
	}
	o := gatherOptions(DefaultPivotEpsilon, opts...)

	h, w := a.r, a.c
	l := &Dense[float64]{r: h, c: h, data: make([]float64, h*h), ops: element.Float64}
	u := a.Clone()
	u.ops = element.Float64
	p, _ := IdentityOf[float64](h) // h >= 0 always holds here

	var (
		k, r, c      int
		best, absVal float64
		bestRow      int
		q            float64
		rowK, rowR   []float64
	)
	steps := min(h, w)
	for k = 0; k < steps; k++ {
		// Stage 2a: pivot selection.
		if o.pivoting {
			bestRow, best = k, 0.0
			for r = k; r < h; r++ {
				absVal = math.Abs(u.data[r*w+k])
				if absVal > best {
					bestRow, best = r, absVal
				}
			}
		} else {
			bestRow, best = k, math.Abs(u.data[k*w+k])
		}
		if best <= o.eps {
			o.logger.Debug("lu: column skipped", "col", k, "max", best, "eps", o.eps)
			continue
		}

		// Stage 2b: bring the pivot row up in every factor.
		if bestRow != k {
			o.logger.Debug("lu: row swap", "col", k, "from", bestRow, "to", k)
			_ = u.SwapRows(k, bestRow)
			_ = p.SwapRows(k, bestRow)
			_ = l.SwapRows(k, bestRow)
		}

		// Stage 2c: eliminate below the pivot.
		rowK = u.row(k)
		for r = k + 1; r < h; r++ {
			rowR = u.row(r)
			q = rowR[k] / rowK[k]
			l.data[r*h+k] = q
			for c = k; c < w; c++ {
				rowR[c] -= q * rowK[c]
			}
		}
	}

	// Stage 3: unit diagonal.
	for k = 0; k < h; k++ {
		l.data[k*h+k] += 1.0
	}

	return LUResult{L: l, U: u, P: p}, nil
}

// Solve returns x with A·x = b, given lu = LU(A) and a column vector b.
// MAIN DESCRIPTION:
//   - Forward substitution on L·y = P·b (unit diagonal, no division), then
//     backward substitution on U·x = y dividing by U[i,i].
//
// Errors:
//   - ErrNilMatrix when any factor or b is nil.
//   - ErrNotVector: "Solve: b must be a column vector, b=[3,2]".
//   - ErrNonSquare when U is not square.
//   - ErrDimensionMismatch when b, L or P do not match U's size.
//
// Notes:
//   - A zero on U's diagonal is not detected; the result then holds ±Inf/NaN.
//
// Complexity:
//   - Time O(n²), Space O(n).
func Solve(lu LUResult, b *Dense[float64]) (*Dense[float64], error) {
	for _, f := range []*Dense[float64]{lu.L, lu.U, lu.P} {
		if err := ValidateNotNil[float64](f); err != nil {
			return nil, matrixErrorf(opSolve, err)
		}
	}
	if err := ValidateColumnVector[float64](b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateSquare[float64](lu.U); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := lu.U.r
	if b.r != n {
		return nil, matrixErrorf(opSolve, validatorErrorf(ErrDimensionMismatch, "U=[%d,%d], b=[%d,%d]", n, n, b.r, b.c))
	}
	if lu.L.r != n || lu.L.c != n || lu.P.r != n || lu.P.c != n {
		return nil, matrixErrorf(opSolve, validatorErrorf(ErrDimensionMismatch,
			"L=[%d,%d], P=[%d,%d], want [%d,%d]", lu.L.r, lu.L.c, lu.P.r, lu.P.c, n, n))
	}

	pb, err := Mul(lu.P, b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	var i, j int
	var acc float64

	// L·y = P·b
	y := make([]float64, n)
	for i = 0; i < n; i++ {
		acc = pb.data[i]
		for j = 0; j < i; j++ {
			acc -= lu.L.data[i*n+j] * y[j]
		}
		y[i] = acc
	}

	// U·x = y
	x := &Dense[float64]{r: n, c: 1, data: make([]float64, n), ops: element.Float64}
	for i = n - 1; i >= 0; i-- {
		acc = y[i]
		for j = n - 1; j > i; j-- {
			acc -= lu.U.data[i*n+j] * x.data[j]
		}
		x.data[i] = acc / lu.U.data[i*n+i]
	}

	return x, nil
}

// Inverse returns A⁻¹ for a square A using a single LU factorization.
// Implementation:
//   - Stage 1: ValidateSquare; lu = LU(A, opts...).
//   - Stage 2: res = I; for each col, res[:, col] = Solve(lu, res[:, col]).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare ("Inverse: A=[2,3]").
//
// Notes:
//   - Singular input is not rejected; the result then holds ±Inf/NaN.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(a *Dense[float64], opts ...Option) (*Dense[float64], error) {
	if err := ValidateSquare[float64](a); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	lu, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := a.r
	res, _ := IdentityOf[float64](n)
	var col int
	var unit, x *Dense[float64]
	for col = 0; col < n; col++ {
		if unit, err = res.Cut(All(), Span(col, col+1)); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		if x, err = Solve(lu, unit); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		if err = res.SetMatrix(x, 0, col); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
	}

	return res, nil
}
