package effects

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-led/led/core"
)

const (
	defaultSparkleSeed     = 1
	defaultSparkleMinSpeed = 10
	defaultSparkleMaxSpeed = 50
)

// SparkleOption mutates sparkle construction parameters.
type SparkleOption func(*sparkleConfig) error

type sparkleConfig struct {
	speed int
	phase int
	seed  int64
}

// WithSparkleSpeed fixes the cycle length in frames instead of drawing a
// random one at reset.
func WithSparkleSpeed(speed int) SparkleOption {
	return func(cfg *sparkleConfig) error {
		if speed <= 0 {
			return fmt.Errorf("sparkle speed must be > 0: %d", speed)
		}
		cfg.speed = speed
		return nil
	}
}

// WithSparklePhase fixes the starting phase in frames instead of drawing a
// random one at reset.
func WithSparklePhase(phase int) SparkleOption {
	return func(cfg *sparkleConfig) error {
		if phase < 0 {
			return fmt.Errorf("sparkle phase must be >= 0: %d", phase)
		}
		cfg.phase = phase
		return nil
	}
}

// WithSparkleSeed sets the RNG seed used when speed or phase are drawn at
// reset.
func WithSparkleSeed(seed int64) SparkleOption {
	return func(cfg *sparkleConfig) error {
		cfg.seed = seed
		return nil
	}
}

// Sparkle is one pixel that brightens and fades on a sine cycle. The cycle
// length and starting phase are drawn once at reset (unless fixed) and the
// cycle then repeats indefinitely; the effect never completes.
type Sparkle struct {
	x          int
	y          int
	fixedSpeed int
	fixedPhase int
	hasPhase   bool
	seed       int64
	rng        *rand.Rand

	stepCount int
	maxSteps  int
}

// NewSparkle creates a sparkle at (x, y) with optional overrides.
func NewSparkle(x, y int, opts ...SparkleOption) (*Sparkle, error) {
	cfg := sparkleConfig{phase: -1, seed: defaultSparkleSeed}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	s := &Sparkle{
		x:          x,
		y:          y,
		fixedSpeed: cfg.speed,
		fixedPhase: cfg.phase,
		hasPhase:   cfg.phase >= 0,
		seed:       cfg.seed,
		rng:        rand.New(rand.NewSource(cfg.seed)),
	}
	s.Reset()
	return s, nil
}

// Reset rewinds the RNG and redraws cycle speed and phase.
func (s *Sparkle) Reset() {
	s.rng.Seed(s.seed)

	if s.fixedSpeed > 0 {
		s.maxSteps = s.fixedSpeed
	} else {
		s.maxSteps = defaultSparkleMinSpeed +
			s.rng.Intn(defaultSparkleMaxSpeed-defaultSparkleMinSpeed+1)
	}

	if s.hasPhase {
		s.stepCount = s.fixedPhase % (s.maxSteps + 1)
	} else {
		s.stepCount = s.rng.Intn(s.maxSteps + 1)
	}
}

// Step advances one frame and returns the single pixel.
func (s *Sparkle) Step() core.Frame {
	t := float64(s.stepCount) / float64(s.maxSteps)
	brightness := math.Sin(t * math.Pi)

	s.stepCount++
	if s.stepCount > s.maxSteps {
		s.stepCount = 0
	}

	return core.Frame{{X: s.x, Y: s.y, B: brightness}}
}

// Done always reports false; the sparkle loops internally.
func (s *Sparkle) Done() bool {
	return false
}

// Looping reports true; sparkles restart their cycle instead of finishing.
func (s *Sparkle) Looping() bool {
	return true
}
