package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-led/led/core"
)

const defaultPulseSpeed = 0.05

// PulseFadeOption mutates pulse construction parameters.
type PulseFadeOption func(*pulseConfig) error

type pulseConfig struct {
	speed  float64
	single bool
}

// WithPulseSpeed sets phase advance per frame in radians.
func WithPulseSpeed(speed float64) PulseFadeOption {
	return func(cfg *pulseConfig) error {
		if speed <= 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
			return fmt.Errorf("pulse speed must be > 0 and finite: %f", speed)
		}
		cfg.speed = speed
		return nil
	}
}

// WithPulseSingle completes the effect after one full pulse instead of
// repeating.
func WithPulseSingle() PulseFadeOption {
	return func(cfg *pulseConfig) error {
		cfg.single = true
		return nil
	}
}

// PulseFade breathes the whole matrix through a sine brightness cycle.
// By default it repeats forever; the single variant completes after one
// full period.
type PulseFade struct {
	geom   core.Geometry
	speed  float64
	single bool

	phase float64
	done  bool
	buf   *core.Buffer
}

// NewPulseFade creates a pulse over the given geometry.
func NewPulseFade(geom core.Geometry, opts ...PulseFadeOption) (*PulseFade, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := pulseConfig{speed: defaultPulseSpeed}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	buf, err := core.NewBuffer(geom)
	if err != nil {
		return nil, err
	}

	p := &PulseFade{
		geom:   geom,
		speed:  cfg.speed,
		single: cfg.single,
		buf:    buf,
	}
	p.Reset()
	return p, nil
}

// Reset rewinds the pulse phase.
func (p *PulseFade) Reset() {
	p.phase = 0
	p.done = false
}

// Step returns every matrix cell at the current pulse brightness.
func (p *PulseFade) Step() core.Frame {
	if p.done {
		return nil
	}

	brightness := (math.Sin(p.phase) + 1) / 2

	p.phase += p.speed
	if p.phase >= 2*math.Pi {
		if p.single {
			p.done = true
		} else {
			p.phase = 0
		}
	}

	p.buf.Fill(1)
	p.buf.Scale(brightness)
	return p.buf.Sparse(nil)
}

// Done reports true once a single-shot pulse has finished its period.
func (p *PulseFade) Done() bool {
	return p.done
}

// Looping reports true for the repeating variant.
func (p *PulseFade) Looping() bool {
	return !p.single
}
