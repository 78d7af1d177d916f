// SPDX-License-Identifier: MIT

package dual

import (
	"fmt"
	"strconv"
)

// String returns the primal value in its shortest round-trip form.
// Derivatives are not printed.
func (d Dual[T, D]) String() string { return formatScalar(d.value) }

// Format forwards verb, flags, width and precision to the primal value, so
// fmt.Sprintf("%.3f", d) formats like fmt.Sprintf("%.3f", d.Value()).
func (d Dual[T, D]) Format(f fmt.State, verb rune) { formatValue(f, verb, d.value) }

// String returns the primal value in its shortest round-trip form.
func (h HyperDual[T, D]) String() string { return formatScalar(h.value) }

// Format forwards formatting to the primal value.
func (h HyperDual[T, D]) Format(f fmt.State, verb rune) { formatValue(f, verb, h.value) }

func formatScalar[T Scalar](v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, bitSize[T]())
}

func formatValue[T Scalar](f fmt.State, verb rune, v T) {
	if verb == 's' {
		verb = 'v'
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), v)
}
