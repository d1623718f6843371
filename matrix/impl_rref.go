// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/katalvlaran/mm/element"
)

const (
	opRREF = "RREF"
	opRank = "Rank"
)

// RREF returns the reduced row-echelon form of A (same shape, fresh storage).
// Implementation:
//   - Stage 1: R = clone(A); row = 0.
//   - Stage 2: for each column: pick the row in [row, h) with the largest
//     |R[i,col]|; skip the column when it is <= eps. Otherwise swap it up,
//     scale the pivot row to 1 (unless already within eps of 1), clear the
//     column in every other row and advance row.
//
// Options:
//   - WithEpsilon (default DefaultRankEpsilon), WithLogger.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(h·w·min(h,w)), Space O(h·w).
func RREF(a *Dense[float64], opts ...Option) (*Dense[float64], error) {
	if err := ValidateNotNil[float64](a); err != nil {
		return nil, matrixErrorf(opRREF, err)
	}
	o := gatherOptions(DefaultRankEpsilon, opts...)

	r := a.Clone()
	r.ops = element.Float64
	h, w := r.r, r.c

	var (
		row, col, i, c int
		bestRow        int
		best, absVal   float64
		pivot, q       float64
		pivotRow, cur  []float64
	)
	for col = 0; col < w; col++ {
		bestRow, best = row, 0.0
		for i = row; i < h; i++ {
			absVal = math.Abs(r.data[i*w+col])
			if absVal > best {
				bestRow, best = i, absVal
			}
		}
		if best <= o.eps {
			o.logger.Debug("rref: column skipped", "col", col, "max", best, "eps", o.eps)
			continue
		}

		if bestRow != row {
			o.logger.Debug("rref: row swap", "col", col, "from", bestRow, "to", row)
			_ = r.SwapRows(row, bestRow)
		}

		pivotRow = r.row(row)
		pivot = pivotRow[col]
		if math.Abs(pivot-1) > o.eps {
			for c = col; c < w; c++ {
				pivotRow[c] /= pivot
			}
		}

		for i = 0; i < h; i++ {
			if i == row {
				continue
			}
			cur = r.row(i)
			q = cur[col]
			for c = col; c < w; c++ {
				cur[c] -= q * pivotRow[c]
			}
		}

		row++
	}

	return r, nil
}

// Rank approximates the rank of A from its reduced row-echelon form: walking
// the columns, the counter advances whenever R[rank, col] >= eps, stopping
// once every row holds a pivot.
//
// Options:
//   - WithEpsilon (default DefaultRankEpsilon), WithLogger.
//
// Errors:
//   - ErrNilMatrix.
func Rank(a *Dense[float64], opts ...Option) (int, error) {
	reduced, err := RREF(a, opts...)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(DefaultRankEpsilon, opts...)

	rank := 0
	for col := 0; col < reduced.c && rank < reduced.r; col++ {
		if reduced.data[rank*reduced.c+col] < o.eps {
			continue
		}
		rank++
	}

	return rank, nil
}
