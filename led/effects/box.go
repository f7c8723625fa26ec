package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-led/led/core"
)

const defaultBoxSpeed = 0.5

// ExpandingBoxOption mutates expanding box construction parameters.
type ExpandingBoxOption func(*boxConfig) error

type boxConfig struct {
	speed     float64
	maxRadius float64
}

// WithBoxSpeed sets expansion in pixels per frame.
func WithBoxSpeed(speed float64) ExpandingBoxOption {
	return func(cfg *boxConfig) error {
		if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
			return fmt.Errorf("box speed must be > 0 and finite: %f", speed)
		}
		cfg.speed = speed
		return nil
	}
}

// WithBoxMaxRadius caps the half-extent; the default is the matrix
// diagonal.
func WithBoxMaxRadius(radius float64) ExpandingBoxOption {
	return func(cfg *boxConfig) error {
		if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
			return fmt.Errorf("box max radius must be > 0 and finite: %f", radius)
		}
		cfg.maxRadius = radius
		return nil
	}
}

// ExpandingBox draws a growing rectangular outline centered on a point,
// restarting once the outline exceeds its maximum half-extent. The effect
// is continuous.
type ExpandingBox struct {
	geom      core.Geometry
	cx        int
	cy        int
	speed     float64
	maxRadius float64

	radius float64
}

// NewExpandingBox creates an expanding box centered at (cx, cy).
func NewExpandingBox(geom core.Geometry, cx, cy int, opts ...ExpandingBoxOption) (*ExpandingBox, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := boxConfig{speed: defaultBoxSpeed}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.maxRadius == 0 {
		cfg.maxRadius = mathDist(float64(geom.Width), float64(geom.Height))
	}

	b := &ExpandingBox{
		geom:      geom,
		cx:        cx,
		cy:        cy,
		speed:     cfg.speed,
		maxRadius: cfg.maxRadius,
	}
	b.Reset()
	return b, nil
}

// Reset rewinds the outline to radius zero.
func (b *ExpandingBox) Reset() {
	b.radius = 0
}

// Step returns the outline pixels at the current half-extent and grows it.
func (b *ExpandingBox) Step() core.Frame {
	r := int(math.Round(b.radius))

	var frame core.Frame
	for x := 0; x < b.geom.Width; x++ {
		for y := 0; y < b.geom.Height; y++ {
			dx := x - b.cx
			dy := y - b.cy
			if dx < 0 {
				dx = -dx
			}
			if dy < 0 {
				dy = -dy
			}

			onVertical := dx == r && dy <= r
			onHorizontal := dy == r && dx <= r
			if onVertical || onHorizontal {
				frame = append(frame, core.Pixel{X: x, Y: y, B: 1})
			}
		}
	}

	b.radius += b.speed
	if math.Round(b.radius) > math.Round(b.maxRadius) {
		b.radius = 0
	}

	return frame
}

// Done always reports false; the box restarts at its maximum extent.
func (b *ExpandingBox) Done() bool {
	return false
}

// Looping reports true.
func (b *ExpandingBox) Looping() bool {
	return true
}
