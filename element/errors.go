// SPDX-License-Identifier: MIT

package element

import "errors"

// ErrNotNumeric is returned by Float64 for element types that have no
// numeric interpretation (e.g. Symbolic).
var ErrNotNumeric = errors.New("element: value is not numeric")
