// internal/parabola/format.go
package parabola

import "fmt"

// FormatValue renders v with two decimals, wrapping strictly negative values
// in parentheses so that "x - (-1.00)" reads unambiguously.
func FormatValue(v float64) string {
	if v == 0 {
		// drop the sign of negative zero
		v = 0
	}
	s := fmt.Sprintf("%.2f", v)
	if v < 0 {
		return "(" + s + ")"
	}
	return s
}

// Format renders p in vertex form, e.g. "y = 0.80(x - (-1.00))^2 + 1.00".
func Format(p Params) string {
	return fmt.Sprintf("y = %s(x - %s)^2 + %s", FormatValue(p.A), FormatValue(p.H), FormatValue(p.K))
}

// String implements fmt.Stringer using the vertex-form rendering.
func (p Params) String() string {
	return Format(p)
}
