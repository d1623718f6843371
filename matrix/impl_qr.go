// SPDX-License-Identifier: MIT
// Package matrix: Householder reflectors and QR factorization.
//
// Notes:
//   - The reflector sign follows the first element (y0 >= 0 → +‖y‖) so that
//     w = y + sign(y0)·‖y‖·e1 never cancels.
//   - A zero first column makes ‖w‖ = 0; the reflector then holds NaN. No
//     guard is applied.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/mm/element"
)

const (
	opHouseholder     = "Householder"
	opQR              = "QR"
	opQFromReflectors = "QFromReflectors"
)

// Householder returns the h×h reflector H = I - 2·v·vᵀ that maps the first
// column y of a onto a multiple of e1, where h = a.Rows().
// Implementation:
//   - Stage 1: y = a[:, 0]; s = +1 when y0 >= 0, else -1.
//   - Stage 2: w = y with w0 = y0 + s·‖y‖; v = w/‖w‖.
//   - Stage 3: H[i,j] = δij - 2·v_i·v_j.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrOutOfRange when a has no rows or no columns (from Cut).
//
// Complexity:
//   - Time O(h²), Space O(h²).
func Householder(a *Dense[float64]) (*Dense[float64], error) {
	if err := ValidateNotNil[float64](a); err != nil {
		return nil, matrixErrorf(opHouseholder, err)
	}
	y, err := a.Cut(All(), To(1))
	if err != nil {
		return nil, matrixErrorf(opHouseholder, err)
	}

	y0 := y.data[0]
	sign := 1.0
	if y0 < 0 {
		sign = -1.0
	}
	yNorm, _ := y.Norm() // float64 elements always convert
	w := y.data
	w[0] = y0 + sign*yNorm
	wNorm, _ := y.Norm()

	n := len(w)
	v := make([]float64, n)
	for i := range w {
		v[i] = w[i] / wNorm
	}

	res := &Dense[float64]{r: n, c: n, data: make([]float64, n*n), ops: element.Float64}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			res.data[i*n+j] = -2 * v[i] * v[j]
		}
		res.data[i*n+i] += 1
	}

	return res, nil
}

// QR factorizes A (h×w) with Householder reflections.
// MAIN DESCRIPTION:
//   - For k in [0, min(h,w)) a reflector zeroes column k below the diagonal.
//   - Returns R (upper-trapezoidal, h×w) and the full-size reflectors in
//     generation order, so H[n-1]···H[0]·A = R and A = QFromReflectors(H)·R.
//
// Implementation:
//   - Stage 1: R = clone(A).
//   - Stage 2: for each k: sub = R[k:, k:]; hk = Householder(sub);
//     embed hk into I(h) at (k, k) and record it; R[k:, k:] = hk·sub.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(min(h,w)·h²·w), Space O(min(h,w)·h²).
func QR(a *Dense[float64]) (QRResult, error) {
	if err := ValidateNotNil[float64](a); err != nil {
		return QRResult{}, matrixErrorf(opQR, err)
	}

	r := a.Clone()
	r.ops = element.Float64
	steps := min(r.r, r.c)
	hs := make([]*Dense[float64], 0, steps)

	var (
		sub, hk, full, part *Dense[float64]
		err                 error
	)
	for k := 0; k < steps; k++ {
		if sub, err = r.Cut(From(k), From(k)); err != nil {
			return QRResult{}, matrixErrorf(opQR, err)
		}
		if hk, err = Householder(sub); err != nil {
			return QRResult{}, matrixErrorf(opQR, fmt.Errorf("column %d: %w", k, err))
		}

		full, _ = IdentityOf[float64](r.r)
		if err = full.SetMatrix(hk, k, k); err != nil {
			return QRResult{}, matrixErrorf(opQR, err)
		}
		hs = append(hs, full)

		if part, err = Mul(hk, sub); err != nil {
			return QRResult{}, matrixErrorf(opQR, err)
		}
		if err = r.SetMatrix(part, k, k); err != nil {
			return QRResult{}, matrixErrorf(opQR, err)
		}
	}

	return QRResult{R: r, H: hs}, nil
}

// QFromReflectors returns Q = H[0]·H[1]···H[n-1].
// Each reflector is symmetric and orthogonal, so for hs = QR(A).H the result
// satisfies A = Q·R.
//
// Errors:
//   - ErrEmptyReflectors for an empty slice.
//   - ErrNilMatrix, ErrDimensionMismatch from Mul on malformed input.
func QFromReflectors(hs []*Dense[float64]) (*Dense[float64], error) {
	if len(hs) == 0 {
		return nil, matrixErrorf(opQFromReflectors, ErrEmptyReflectors)
	}
	if err := ValidateNotNil[float64](hs[0]); err != nil {
		return nil, matrixErrorf(opQFromReflectors, err)
	}

	res := hs[0].Clone()
	var err error
	for i := 1; i < len(hs); i++ {
		if res, err = Mul(res, hs[i]); err != nil {
			return nil, matrixErrorf(opQFromReflectors, fmt.Errorf("reflector %d: %w", i, err))
		}
	}

	return res, nil
}
