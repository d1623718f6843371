// SPDX-License-Identifier: MIT

package element

import "strings"

const (
	symPlus  = "+"
	symMinus = "-"
	symZero  = "0" // rendered when a subtraction cancels every term
)

// Symbolic treats strings as unevaluated formulas.
//
//	Add("a", "b") = "a+b"
//	Mul("a", "b") = "ab"
//	Sub("a+e", "e") = "a"    // textual cancellation of a previous Add
//	Sub("c", "d")   = "c-d"  // no matching term
//
// Symbolic deliberately has no Zero/One and cannot be converted to float64.
type Symbolic struct{}

// Symbols is the shared Symbolic instance.
var Symbols = Symbolic{}

var _ Arithmetic[string] = Symbolic{}

func (Symbolic) Add(a, b string) string { return a + symPlus + b }

func (Symbolic) Mul(a, b string) string { return a + b }

// Sub removes the first run of "+"-separated terms of a that spells out b,
// matching on term boundaries only. When no run matches it falls back to the
// explicit "a-b" notation.
func (Symbolic) Sub(a, b string) string {
	terms := strings.Split(a, symPlus)
	want := strings.Split(b, symPlus)
	for i := 0; i+len(want) <= len(terms); i++ {
		if !sameTerms(terms[i:i+len(want)], want) {
			continue
		}
		rest := append(terms[:i:i], terms[i+len(want):]...)
		if len(rest) == 0 {
			return symZero
		}

		return strings.Join(rest, symPlus)
	}

	return a + symMinus + b
}

func sameTerms(x, y []string) bool {
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}

// Float64 always fails: formulas have no numeric value.
func (Symbolic) Float64(string) (float64, error) { return 0, ErrNotNumeric }
