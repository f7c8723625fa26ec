package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-led/led/core"
)

const (
	defaultZigZagSpeed = 1
	defaultZigZagTrail = 6
)

// ZigZagSweepOption mutates zigzag construction parameters.
type ZigZagSweepOption func(*zigzagConfig) error

type zigzagConfig struct {
	speed       int
	trailLength int
	clip        bool
}

// WithZigZagSpeed sets horizontal movement in pixels per frame.
func WithZigZagSpeed(speed int) ZigZagSweepOption {
	return func(cfg *zigzagConfig) error {
		if speed <= 0 {
			return fmt.Errorf("zigzag speed must be > 0: %d", speed)
		}
		cfg.speed = speed
		return nil
	}
}

// WithZigZagTrailLength sets the trail capacity.
func WithZigZagTrailLength(n int) ZigZagSweepOption {
	return func(cfg *zigzagConfig) error {
		if n <= 0 {
			return fmt.Errorf("zigzag trail length must be > 0: %d", n)
		}
		cfg.trailLength = n
		return nil
	}
}

// WithZigZagClip finishes the sweep at the top/bottom edge instead of
// reversing, making the effect finite.
func WithZigZagClip() ZigZagSweepOption {
	return func(cfg *zigzagConfig) error {
		cfg.clip = true
		return nil
	}
}

// ZigZagSweep moves a point boustrophedon across the matrix: left to right
// along a row, drop to the next row, then right to left, with a fading
// trail. At the vertical edge it either reverses (bounce, continuous) or
// completes (clip, finite).
type ZigZagSweep struct {
	geom        core.Geometry
	speed       int
	trailLength int
	clip        bool

	row   int
	col   int
	dirX  int
	dirY  int
	trail *pointRing
	done  bool
}

// NewZigZagSweep creates a zigzag sweep on the given geometry.
func NewZigZagSweep(geom core.Geometry, opts ...ZigZagSweepOption) (*ZigZagSweep, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := zigzagConfig{
		speed:       defaultZigZagSpeed,
		trailLength: defaultZigZagTrail,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	z := &ZigZagSweep{
		geom:        geom,
		speed:       cfg.speed,
		trailLength: cfg.trailLength,
		clip:        cfg.clip,
		trail:       newPointRing(cfg.trailLength),
	}
	z.Reset()
	return z, nil
}

// Reset moves the point to the top-left corner with an empty trail.
func (z *ZigZagSweep) Reset() {
	z.row = 0
	z.col = 0
	z.dirX = 1
	z.dirY = 1
	z.trail.Clear()
	z.done = false
}

// Step advances the point and returns it plus its trail.
func (z *ZigZagSweep) Step() core.Frame {
	if z.done {
		return nil
	}

	z.col += z.dirX * z.speed

	if z.col < 0 || z.col >= z.geom.Width {
		z.col = clampInt(z.col, 0, z.geom.Width-1)
		z.row += z.dirY
		z.dirX = -z.dirX

		if z.row < 0 || z.row >= z.geom.Height {
			if z.clip {
				z.done = true
				return nil
			}
			z.row = clampInt(z.row, 0, z.geom.Height-1)
			z.dirY = -z.dirY
		}
	}

	z.trail.Push(z.col, z.row)

	var frame core.Frame
	for i := 0; i < z.trail.Len(); i++ {
		x, y := z.trail.At(i)
		fade := 1 - float64(i)/float64(z.trailLength)
		brightness := math.Max(minTrailBrightness, fade*fade)
		frame = append(frame, core.Pixel{X: x, Y: y, B: brightness})
	}
	return frame
}

// Done reports true once a clip-policy sweep has run off the matrix.
func (z *ZigZagSweep) Done() bool {
	return z.done
}

// Looping reports true for the bounce policy.
func (z *ZigZagSweep) Looping() bool {
	return !z.clip
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
