package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-led/led/core"
)

const (
	defaultSpiralSpeed  = 0.2
	spiralRadiusPerTurn = 0.1
)

// SpiralSweepOption mutates spiral construction parameters.
type SpiralSweepOption func(*spiralConfig) error

type spiralConfig struct {
	speed float64
	loop  bool
}

// WithSpiralSpeed sets angular speed in radians per frame; the radius grows
// proportionally.
func WithSpiralSpeed(speed float64) SpiralSweepOption {
	return func(cfg *spiralConfig) error {
		if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
			return fmt.Errorf("spiral speed must be > 0 and finite: %f", speed)
		}
		cfg.speed = speed
		return nil
	}
}

// WithSpiralLoop restarts the spiral from the center once it leaves the
// matrix instead of completing.
func WithSpiralLoop() SpiralSweepOption {
	return func(cfg *spiralConfig) error {
		cfg.loop = true
		return nil
	}
}

// SpiralSweep traces a point along an expanding spiral from a center.
// By default the effect completes once the spiral exceeds the matrix
// diagonal; the looping variant restarts from the center instead.
type SpiralSweep struct {
	geom      core.Geometry
	cx        float64
	cy        float64
	speed     float64
	loop      bool
	maxRadius float64

	angle  float64
	radius float64
	done   bool
}

// NewSpiralSweep creates a spiral centered at (cx, cy).
func NewSpiralSweep(geom core.Geometry, cx, cy float64, opts ...SpiralSweepOption) (*SpiralSweep, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := spiralConfig{speed: defaultSpiralSpeed}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	s := &SpiralSweep{
		geom:      geom,
		cx:        cx,
		cy:        cy,
		speed:     cfg.speed,
		loop:      cfg.loop,
		maxRadius: mathDist(float64(geom.Width), float64(geom.Height)),
	}
	s.Reset()
	return s, nil
}

// Reset rewinds the spiral to the center.
func (s *SpiralSweep) Reset() {
	s.angle = 0
	s.radius = 0
	s.done = false
}

// Step returns the current spiral point, when it lies inside the matrix.
func (s *SpiralSweep) Step() core.Frame {
	if s.done {
		return nil
	}

	x := int(math.Round(s.cx + math.Cos(s.angle)*s.radius))
	y := int(math.Round(s.cy + math.Sin(s.angle)*s.radius))

	s.angle += s.speed
	s.radius += s.speed * spiralRadiusPerTurn

	if s.radius > s.maxRadius {
		if s.loop {
			s.angle = 0
			s.radius = 0
		} else {
			s.done = true
		}
	}

	if !s.geom.Contains(x, y) {
		return nil
	}
	return core.Frame{{X: x, Y: y, B: 1}}
}

// Done reports true once a non-looping spiral has left the matrix.
func (s *SpiralSweep) Done() bool {
	return s.done
}

// Looping reports whether the spiral restarts from the center.
func (s *SpiralSweep) Looping() bool {
	return s.loop
}
