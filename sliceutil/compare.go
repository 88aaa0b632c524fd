package sliceutil

import "cmp"

// Compare performs a three-way comparison of two ordered values: -1 if a < b,
// +1 if a > b, and 0 otherwise. A floating-point NaN is neither less than nor
// greater than anything, so Compare reports 0 when either operand is NaN.
func Compare[T cmp.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	default:
		return 0
	}
}
