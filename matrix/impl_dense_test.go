// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense container.

package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mm/element"
	"github.com/katalvlaran/mm/matrix"
)

func TestNew_ZeroFilledAndShape(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ rows, cols, wantCols int }{
		{3, 3, 3},
		{2, 5, 5},
		{4, 0, 0},
		{0, 7, 0}, // no rows means no width
	} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			t.Parallel()
			m, err := matrix.New[float64](element.Float64, tc.rows, tc.cols)
			require.NoError(t, err)
			r, c := m.Shape()
			require.Equal(t, tc.rows, r)
			require.Equal(t, tc.wantCols, c)
			m.Do(func(i, j int, v float64) bool {
				require.Zerof(t, v, "(%d,%d)", i, j)
				return true
			})
		})
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.New[int](nil, 2, 2)
	require.ErrorIs(t, err, matrix.ErrNilOps)

	_, err = matrix.New[int](element.Int, -1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewFill[int](element.Int, 2, -3, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromRows_CopiesAndRejectsRagged(t *testing.T) {
	t.Parallel()

	src := [][]int{{1, 2, 3}, {4, 5, 6}}
	m := mustI(t, src)
	src[0][0] = 100 // the matrix must not alias the literal
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, "1,2,3\n4,5,6", m.String())

	_, err = matrix.FromNumbers([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.Contains(t, err.Error(), "row 1 has 1 elements, want 2")

	empty := mustI(t, nil)
	require.True(t, empty.IsEmpty())
	require.Equal(t, 0, empty.Cols())
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.IdentityOf[int](3)
	require.NoError(t, err)
	require.Equal(t, "1,0,0\n0,1,0\n0,0,1", id.String())

	_, err = matrix.Identity[int](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilOps)

	_, err = matrix.IdentityOf[int](-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAtSet_Bounds(t *testing.T) {
	t.Parallel()

	m, err := matrix.FillNumbers(2, 3, 0.0)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 5.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5.5, v)

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err = m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		err = m.Set(idx[0], idx[1], 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
	}
	_, err = m.At(2, 0)
	require.EqualError(t, err, "Dense.At(2,0): matrix: index out of range")
}

// TestSet mirrors the classic element-by-element overwrite of a 3x4.
func TestSet(t *testing.T) {
	t.Parallel()

	m := mustI(t, [][]int{
		{-4, -3, -2, -1},
		{-1, 0, 1, 2},
		{2, 3, 4, 5},
	})
	require.NoError(t, m.Set(0, 0, 10))
	require.NoError(t, m.Set(2, 3, 20))
	require.Equal(t, "10,-3,-2,-1\n-1,0,1,2\n2,3,4,20", m.String())
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	a := mustF(t, [][]float64{{1, 2}, {3, 4}})
	b := a.Clone()
	require.NoError(t, b.Set(0, 0, 9))

	v, _ := a.At(0, 0)
	require.Equal(t, 1.0, v)
	require.Equal(t, a.Ops(), b.Ops())
}

func TestSwapRows(t *testing.T) {
	t.Parallel()

	m := mustI(t, [][]int{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, m.SwapRows(0, 2))
	require.Equal(t, "5,6\n3,4\n1,2", m.String())

	require.NoError(t, m.SwapRows(1, 1))
	require.Equal(t, "5,6\n3,4\n1,2", m.String())

	require.ErrorIs(t, m.SwapRows(0, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SwapRows(-1, 0), matrix.ErrOutOfRange)
}

func TestSetMatrix(t *testing.T) {
	t.Parallel()

	m := mustI(t, [][]int{
		{-4, -3, -2, -1},
		{-1, 0, 1, 2},
		{2, 3, 4, 5},
	})
	block := mustI(t, [][]int{{9, 8}, {17, 12}})

	require.NoError(t, m.SetMatrix(block, 1, 2))
	require.Equal(t, "-4,-3,-2,-1\n-1,0,9,8\n2,3,17,12", m.String())

	err := m.SetMatrix(block, 2, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "2x2 block does not fit 3x4")

	require.ErrorIs(t, m.SetMatrix(nil, 0, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, m.SetMatrix(block, -1, 0), matrix.ErrOutOfRange)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]int
		want string
	}{
		{"square", [][]int{{1, 2}, {3, 4}}, "1,3\n2,4"},
		{"row to column", [][]int{{1, 2, 3}}, "1\n2\n3"},
		{"wide", [][]int{{1, 2, 3}, {4, 5, 6}}, "1,4\n2,5\n3,6"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := mustI(t, tc.in)
			tr := m.Transpose()
			require.Equal(t, tc.want, tr.String())
			require.Equal(t, m.String(), tr.Transpose().String())
		})
	}

	// h×0 has no width, so its transpose is fully empty.
	m, err := matrix.New[int](element.Int, 3, 0)
	require.NoError(t, err)
	r, c := m.Transpose().Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 0, c)
}

// TestTranspose_ProductLaw checks (A·B)ᵀ = Bᵀ·Aᵀ on a non-square pair.
func TestTranspose_ProductLaw(t *testing.T) {
	t.Parallel()

	a := mustI(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := mustI(t, [][]int{{7, 8}, {9, 10}, {11, 12}})

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	btat, err := matrix.Mul(b.Transpose(), a.Transpose())
	require.NoError(t, err)
	require.Equal(t, ab.Transpose().String(), btat.String())
}

func TestIsIdentity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   [][]float64
		want bool
	}{
		{"identity 3", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, true},
		{"identity 1", [][]float64{{1}}, true},
		{"off-diagonal", [][]float64{{1, 0}, {0.5, 1}}, false},
		{"diagonal 2", [][]float64{{1, 0}, {0, 2}}, false},
		{"not square", [][]float64{{1, 0, 0}, {0, 1, 0}}, false},
		{"empty", nil, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ok, err := mustF(t, tc.in).IsIdentity()
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}

	_, err := mustS(t, [][]string{{"a"}}).IsIdentity()
	require.ErrorIs(t, err, matrix.ErrNoIdentity)
}

func TestDoApply(t *testing.T) {
	t.Parallel()

	m := mustI(t, [][]int{{1, 2}, {3, 4}})
	visited := 0
	m.Do(func(i, j int, v int) bool {
		visited++
		return v < 2 // stop after the second element
	})
	require.Equal(t, 2, visited)

	m.Apply(func(i, j int, v int) int { return v*10 + i + j })
	require.Equal(t, "10,21\n31,42", m.String())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	m := mustF(t, [][]float64{{1, 4.0 / 3}, {-2.5, 0}})
	require.Equal(t, "1,1.3333333333333333\n-2.5,0", m.String())
	require.Equal(t, m.String(), fmt.Sprintf("%v", m))
	require.Equal(t, "1.0000,1.3333\n-2.5000,0.0000", fmt.Sprintf("%.4v", m))
	require.Equal(t, "1.33", fmt.Sprintf("%.2v", mustF(t, [][]float64{{4.0 / 3}})))

	// precision is ignored for non-float elements
	require.Equal(t, "1,2", fmt.Sprintf("%.3v", mustI(t, [][]int{{1, 2}})))
	require.Equal(t, "a,b\nc,d", fmt.Sprintf("%.3v", mustS(t, [][]string{{"a", "b"}, {"c", "d"}})))

	require.Equal(t, "", mustF(t, nil).String())

	// no exponent notation at either end of the range
	wide := mustF(t, [][]float64{{1e21, 1e-7, 0.5, 1e8}})
	require.Equal(t, "1000000000000000000000,0.0000001,0.5,100000000", wide.String())
	single, err := matrix.FromRows(element.Float32, [][]float32{{1e8, 2.5e-6}})
	require.NoError(t, err)
	require.Equal(t, "100000000,0.0000025", single.String())
}
