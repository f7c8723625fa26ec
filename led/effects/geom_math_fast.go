//go:build fastmath

package effects

import (
	"github.com/meko-christian/algo-approx"
)

// mathSqrt computes sqrt(x) using fast approximation.
func mathSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}

// mathDist computes the Euclidean length of (dx, dy) using fast
// approximation. Distances here are small screen-space magnitudes, so the
// overflow protection of math.Hypot is not needed.
func mathDist(dx, dy float64) float64 {
	return approx.FastSqrt(dx*dx + dy*dy)
}
