// pkg/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CeilDiv divides a by b rounding up, for non-negative a and positive b.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}
