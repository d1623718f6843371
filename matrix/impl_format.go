// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep     = ","
	_fmtRowSep  = "\n"
	_fmtBitSize = 64
)

// String renders rows as comma-separated values separated by newlines, with
// no trailing newline:
//
//	1,2,3
//	4,5,6
func (m *Dense[T]) String() string { return m.Text(-1) }

// Text renders like String; when prec >= 0, floating-point elements are
// printed with exactly prec decimals. Other element types ignore prec.
func (m *Dense[T]) Text(prec int) string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(formatElem(m.data[base+j], prec))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		if i+1 < m.r {
			b.WriteString(_fmtRowSep)
		}
	}

	return b.String()
}

// Format implements fmt.Formatter so precision flows through the usual
// verbs: fmt.Sprintf("%.2v", m) prints every float with two decimals.
func (m *Dense[T]) Format(f fmt.State, verb rune) {
	prec, ok := f.Precision()
	if !ok {
		prec = -1
	}
	switch verb {
	case 'v', 's':
		_, _ = f.Write([]byte(m.Text(prec)))
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(matrix.Dense=%s)", verb, m.Text(prec))
	}
}

// formatElem prints one element; fixed decimals apply to floats only.
func formatElem[T any](v T, prec int) string {
	switch x := any(v).(type) {
	case float64:
		if prec >= 0 {
			return strconv.FormatFloat(x, 'f', prec, _fmtBitSize)
		}
		return strconv.FormatFloat(x, 'f', -1, _fmtBitSize)
	case float32:
		if prec >= 0 {
			return strconv.FormatFloat(float64(x), 'f', prec, 32)
		}
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case string:
		return x
	default:
		return fmt.Sprint(v)
	}
}
