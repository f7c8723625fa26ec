//go:build !fastmath

package effects

import "math"

// mathSqrt computes sqrt(x) using standard library math.
func mathSqrt(x float64) float64 {
	return math.Sqrt(x)
}

// mathDist computes the Euclidean length of (dx, dy) using standard
// library math.
func mathDist(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}
