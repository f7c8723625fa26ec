package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-led/led/core"
)

const (
	defaultRippleSpeed = 0.5
	rippleFrontWidth   = 1.0
)

// WaveRippleOption mutates wave ripple construction parameters.
type WaveRippleOption func(*rippleConfig) error

type rippleConfig struct {
	speed     float64
	maxRadius float64
}

// WithRippleSpeed sets radial growth in pixels per frame.
func WithRippleSpeed(speed float64) WaveRippleOption {
	return func(cfg *rippleConfig) error {
		if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
			return fmt.Errorf("ripple speed must be > 0 and finite: %f", speed)
		}
		cfg.speed = speed
		return nil
	}
}

// WithRippleMaxRadius caps the wavefront radius; the default is the matrix
// diagonal.
func WithRippleMaxRadius(radius float64) WaveRippleOption {
	return func(cfg *rippleConfig) error {
		if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
			return fmt.Errorf("ripple max radius must be > 0 and finite: %f", radius)
		}
		cfg.maxRadius = radius
		return nil
	}
}

// WaveRipple is an expanding circular wavefront radiating from a center
// point. Pixels near the current radius light with a cosine bell profile
// and the wave dims as it grows; at the maximum radius it restarts. The
// effect is continuous.
type WaveRipple struct {
	geom      core.Geometry
	cx        float64
	cy        float64
	speed     float64
	maxRadius float64

	radius float64
}

// NewWaveRipple creates a ripple centered at (cx, cy).
func NewWaveRipple(geom core.Geometry, cx, cy float64, opts ...WaveRippleOption) (*WaveRipple, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := rippleConfig{speed: defaultRippleSpeed}
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

	r := &WaveRipple{
		geom:      geom,
		cx:        cx,
		cy:        cy,
		speed:     cfg.speed,
		maxRadius: cfg.maxRadius,
	}
	r.Reset()
	return r, nil
}

// Reset rewinds the wavefront to radius zero.
func (r *WaveRipple) Reset() {
	r.radius = 0
}

// Step returns the pixels along the current wavefront and grows the radius.
func (r *WaveRipple) Step() core.Frame {
	var frame core.Frame
	decay := math.Max(0, 1-math.Round(r.radius)/math.Round(r.maxRadius))

	for x := 0; x < r.geom.Width; x++ {
		for y := 0; y < r.geom.Height; y++ {
			dist := mathDist(float64(x)-r.cx, float64(y)-r.cy)
			delta := math.Abs(dist - r.radius)
			if delta >= rippleFrontWidth {
				continue
			}

			brightness := math.Cos(delta*math.Pi/2) * decay
			if brightness > 0 {
				frame = append(frame, core.Pixel{X: x, Y: y, B: brightness})
			}
		}
	}

	r.radius += r.speed
	if math.Round(r.radius) > math.Round(r.maxRadius) {
		r.radius = 0
	}

	return frame
}

// Done always reports false; the ripple restarts at its maximum radius.
func (r *WaveRipple) Done() bool {
	return false
}

// Looping reports true.
func (r *WaveRipple) Looping() bool {
	return true
}
