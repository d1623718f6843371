// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Build fixtures from literal rows and fail fast on constructor errors.
//   • Compare float matrices element-wise with a tolerance.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mm/matrix"
)

// tol is the comparison tolerance for hand-computed expectations, which are
// mostly rounded to three decimals.
const tol = 1e-3

// exact is the tolerance for results that should be exact up to rounding.
const exact = 1e-9

// mustF builds a float64 matrix from literal rows or fails the test.
func mustF(t testing.TB, rows [][]float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.FromNumbers(rows)
	require.NoError(t, err)

	return m
}

// mustI builds an int matrix from literal rows or fails the test.
func mustI(t testing.TB, rows [][]int) *matrix.Dense[int] {
	t.Helper()
	m, err := matrix.FromNumbers(rows)
	require.NoError(t, err)

	return m
}

// mustS builds a symbolic matrix from literal rows or fails the test.
func mustS(t testing.TB, rows [][]string) *matrix.Dense[string] {
	t.Helper()
	m, err := matrix.FromSymbols(rows)
	require.NoError(t, err)

	return m
}

// column builds an n×1 float64 matrix.
func column(t testing.TB, vals ...float64) *matrix.Dense[float64] {
	t.Helper()
	rows := make([][]float64, len(vals))
	for i, v := range vals {
		rows[i] = []float64{v}
	}

	return mustF(t, rows)
}

// requireAllClose asserts got has want's shape and every |got-want| <= eps.
func requireAllClose(t testing.TB, want [][]float64, got *matrix.Dense[float64], eps float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, len(want), got.Rows(), "rows")
	if len(want) == 0 {
		return
	}
	require.Equal(t, len(want[0]), got.Cols(), "cols")
	got.Do(func(i, j int, v float64) bool {
		require.InDeltaf(t, want[i][j], v, eps, "element (%d,%d)\n%v", i, j, got)
		return true
	})
}

// requireSameClose compares two computed matrices of equal shape.
func requireSameClose(t testing.TB, want, got *matrix.Dense[float64], eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	want.Do(func(i, j int, w float64) bool {
		v, err := got.At(i, j)
		require.NoError(t, err)
		require.InDeltaf(t, w, v, eps, "element (%d,%d)", i, j)
		return true
	})
}

// fixZeros snaps values within 1e-10 of zero to +0 so printed fixtures do
// not show "-0.00".
func fixZeros(m *matrix.Dense[float64]) *matrix.Dense[float64] {
	m.Apply(func(_, _ int, v float64) float64 {
		if math.Abs(v) < 1e-10 {
			return 0
		}
		return v
	})

	return m
}
