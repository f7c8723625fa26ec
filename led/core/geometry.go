package core

import "fmt"

// Default matrix dimensions (Scroll pHAT HD shape).
const (
	DefaultWidth  = 17
	DefaultHeight = 7
)

// Geometry describes the logical dimensions of a matrix display. It is an
// explicit configuration value passed to effects at construction; effects
// never read process-wide display state.
type Geometry struct {
	Width  int
	Height int
}

// DefaultGeometry returns the default 17x7 matrix geometry.
func DefaultGeometry() Geometry {
	return Geometry{Width: DefaultWidth, Height: DefaultHeight}
}

// Validate reports an error when either dimension is not positive.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("geometry dimensions must be > 0: %dx%d", g.Width, g.Height)
	}
	return nil
}

// Contains reports whether (x, y) lies inside the matrix bounds.
func (g Geometry) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Cells returns the total number of matrix cells.
func (g Geometry) Cells() int {
	return g.Width * g.Height
}
