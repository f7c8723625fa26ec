package effects

import (
	"fmt"
	"math"
	"math/rand"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-led/led/core"
)

const (
	defaultPlasmaPeriod     = 256
	defaultPlasmaComponents = 4
	defaultPlasmaScale      = 0.7
	defaultPlasmaSeed       = 1
	minPlasmaPeriod         = 8
)

// PlasmaOption mutates plasma construction parameters.
type PlasmaOption func(*plasmaConfig) error

type plasmaConfig struct {
	period     int
	components int
	scale      float64
	seed       int64
}

// WithPlasmaPeriod sets the loop length in frames. Must be a power of two
// of at least 8 so the FFT plan can be built.
func WithPlasmaPeriod(period int) PlasmaOption {
	return func(cfg *plasmaConfig) error {
		if period < minPlasmaPeriod || period&(period-1) != 0 {
			return fmt.Errorf("plasma period must be a power of two >= %d: %d", minPlasmaPeriod, period)
		}
		cfg.period = period
		return nil
	}
}

// WithPlasmaComponents sets how many low-frequency spectrum bins drive the
// drift signal.
func WithPlasmaComponents(n int) PlasmaOption {
	return func(cfg *plasmaConfig) error {
		if n <= 0 {
			return fmt.Errorf("plasma components must be > 0: %d", n)
		}
		cfg.components = n
		return nil
	}
}

// WithPlasmaScale sets the spatial frequency in radians per pixel.
func WithPlasmaScale(scale float64) PlasmaOption {
	return func(cfg *plasmaConfig) error {
		if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
			return fmt.Errorf("plasma scale must be > 0 and finite: %f", scale)
		}
		cfg.scale = scale
		return nil
	}
}

// WithPlasmaSeed sets the RNG seed for the synthesized drift signal.
func WithPlasmaSeed(seed int64) PlasmaOption {
	return func(cfg *plasmaConfig) error {
		cfg.seed = seed
		return nil
	}
}

// Plasma renders a smooth drifting interference pattern. Reset synthesizes
// a band-limited periodic drift signal from a seeded random low-frequency
// spectrum via inverse FFT; Step only indexes the precomputed loop, so the
// animation is exactly periodic and fully reproducible. The effect is
// continuous.
type Plasma struct {
	geom       core.Geometry
	period     int
	components int
	scale      float64
	seed       int64
	rng        *rand.Rand

	plan      *algofft.Plan[complex128]
	spectrum  []complex128
	timeFrame []complex128
	drift     []float64
	offsetX   float64
	offsetY   float64
	index     int
}

// NewPlasma creates a plasma effect over the given geometry.
func NewPlasma(geom core.Geometry, opts ...PlasmaOption) (*Plasma, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := plasmaConfig{
		period:     defaultPlasmaPeriod,
		components: defaultPlasmaComponents,
		scale:      defaultPlasmaScale,
		seed:       defaultPlasmaSeed,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if cfg.components >= cfg.period/2 {
		return nil, fmt.Errorf("plasma components must be < period/2: %d >= %d",
			cfg.components, cfg.period/2)
	}

	plan, err := algofft.NewPlan64(cfg.period)
	if err != nil {
		return nil, fmt.Errorf("plasma: failed to create FFT plan: %w", err)
	}

	p := &Plasma{
		geom:       geom,
		period:     cfg.period,
		components: cfg.components,
		scale:      cfg.scale,
		seed:       cfg.seed,
		rng:        rand.New(rand.NewSource(cfg.seed)),
		plan:       plan,
		spectrum:   make([]complex128, cfg.period),
		timeFrame:  make([]complex128, cfg.period),
		drift:      make([]float64, cfg.period),
	}
	p.Reset()
	return p, nil
}

// Reset rewinds the RNG, resynthesizes the drift loop, and rewinds the
// frame index.
func (p *Plasma) Reset() {
	p.rng.Seed(p.seed)

	for i := range p.spectrum {
		p.spectrum[i] = 0
	}
	for k := 1; k <= p.components; k++ {
		amp := 1 / float64(k)
		phase := p.rng.Float64() * 2 * math.Pi
		v := complex(amp*math.Cos(phase), amp*math.Sin(phase))
		p.spectrum[k] = v
		p.spectrum[p.period-k] = complex(real(v), -imag(v))
	}

	p.offsetX = p.rng.Float64() * 2 * math.Pi
	p.offsetY = p.rng.Float64() * 2 * math.Pi
	p.index = 0

	if err := p.plan.Inverse(p.timeFrame, p.spectrum); err != nil {
		// Plan and buffer sizes are fixed at construction; if synthesis
		// still fails the drift loop stays flat.
		for i := range p.drift {
			p.drift[i] = 0
		}
		return
	}

	maxAbs := 0.0
	for i := range p.timeFrame {
		p.drift[i] = real(p.timeFrame[i])
		if a := math.Abs(p.drift[i]); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs > 0 {
		for i := range p.drift {
			p.drift[i] /= maxAbs
		}
	}
}

// Step returns the full interference pattern for the current loop position.
func (p *Plasma) Step() core.Frame {
	t := p.drift[p.index]
	p.index = (p.index + 1) % p.period

	var frame core.Frame
	for y := 0; y < p.geom.Height; y++ {
		for x := 0; x < p.geom.Width; x++ {
			wave := math.Sin(p.scale*float64(x)+p.offsetX+t*math.Pi) *
				math.Cos(p.scale*float64(y)+p.offsetY+t*math.Pi/2)
			brightness := 0.5 + 0.5*wave
			if brightness > 0 {
				frame = append(frame, core.Pixel{X: x, Y: y, B: brightness})
			}
		}
	}
	return frame
}

// Done always reports false; the pattern loops with its synthesis period.
func (p *Plasma) Done() bool {
	return false
}

// Looping reports true.
func (p *Plasma) Looping() bool {
	return true
}
