package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-led/led/core"
)

const (
	defaultCometDX         = 1.0
	defaultCometDY         = 0.0
	defaultCometTailLength = 6
	minCometTailBrightness = 0.05
)

// CometBoundary selects what happens when the comet head reaches a matrix
// edge. The policy is fixed at construction.
type CometBoundary int

const (
	// CometBounce reflects the velocity component that hit the edge.
	CometBounce CometBoundary = iota
	// CometWrap moves the head to the opposite edge.
	CometWrap
)

// CometOption mutates comet construction parameters.
type CometOption func(*cometConfig) error

type cometConfig struct {
	dx         float64
	dy         float64
	tailLength int
	boundary   CometBoundary
}

// WithCometVelocity sets the per-frame movement vector.
func WithCometVelocity(dx, dy float64) CometOption {
	return func(cfg *cometConfig) error {
		if dx == 0 && dy == 0 {
			return fmt.Errorf("comet velocity must be non-zero")
		}
		cfg.dx = dx
		cfg.dy = dy
		return nil
	}
}

// WithCometTailLength sets the trail capacity in pixels.
func WithCometTailLength(n int) CometOption {
	return func(cfg *cometConfig) error {
		if n <= 0 {
			return fmt.Errorf("comet tail length must be > 0: %d", n)
		}
		cfg.tailLength = n
		return nil
	}
}

// WithCometBoundary sets the edge policy.
func WithCometBoundary(boundary CometBoundary) CometOption {
	return func(cfg *cometConfig) error {
		if boundary != CometBounce && boundary != CometWrap {
			return fmt.Errorf("unknown comet boundary policy: %d", boundary)
		}
		cfg.boundary = boundary
		return nil
	}
}

// Comet is a moving point with a fading tail. The head advances by a
// subpixel velocity each frame; the tail is a fixed-capacity ring whose
// entries dim quadratically with age. The effect is continuous.
type Comet struct {
	geom       core.Geometry
	startX     float64
	startY     float64
	startDX    float64
	startDY    float64
	boundary   CometBoundary
	tailLength int

	x        float64
	y        float64
	dx       float64
	dy       float64
	tail     *pointRing
	distance float64
}

// NewComet creates a comet starting at (x, y) on the given geometry.
func NewComet(geom core.Geometry, x, y float64, opts ...CometOption) (*Comet, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := cometConfig{
		dx:         defaultCometDX,
		dy:         defaultCometDY,
		tailLength: defaultCometTailLength,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	c := &Comet{
		geom:       geom,
		startX:     x,
		startY:     y,
		startDX:    cfg.dx,
		startDY:    cfg.dy,
		boundary:   cfg.boundary,
		tailLength: cfg.tailLength,
		tail:       newPointRing(cfg.tailLength),
	}
	c.Reset()
	return c, nil
}

// Reset restores position, velocity, and an empty tail.
func (c *Comet) Reset() {
	c.x = c.startX
	c.y = c.startY
	c.dx = c.startDX
	c.dy = c.startDY
	c.tail.Clear()
	c.distance = 0
}

// Step advances the head one frame and returns the head plus tail pixels.
func (c *Comet) Step() core.Frame {
	w := float64(c.geom.Width)
	h := float64(c.geom.Height)

	nx := c.x + c.dx
	ny := c.y + c.dy

	switch c.boundary {
	case CometBounce:
		if nx < 0 || nx >= w {
			c.dx = -c.dx
			nx = c.x + c.dx
		}
		if ny < 0 || ny >= h {
			c.dy = -c.dy
			ny = c.y + c.dy
		}
	case CometWrap:
		nx = math.Mod(nx, w)
		if nx < 0 {
			nx += w
		}
		ny = math.Mod(ny, h)
		if ny < 0 {
			ny += h
		}
	}

	c.x, c.y = nx, ny
	c.tail.Push(int(math.Round(c.x)), int(math.Round(c.y)))
	c.distance += mathDist(c.dx, c.dy)

	n := c.tail.Len()
	frame := make(core.Frame, 0, n)
	for i := 0; i < n; i++ {
		x, y := c.tail.At(i)
		fade := 1 - float64(i)/float64(n)
		brightness := math.Max(minCometTailBrightness, fade*fade)
		frame = append(frame, core.Pixel{X: x, Y: y, B: brightness})
	}
	return frame
}

// Done always reports false; the comet travels indefinitely.
func (c *Comet) Done() bool {
	return false
}

// Looping reports true.
func (c *Comet) Looping() bool {
	return true
}
