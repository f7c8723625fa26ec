package effects

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-led/led/core"
)

const (
	defaultFieldDensity  = 30
	defaultFieldMinSpeed = 10
	defaultFieldMaxSpeed = 50
	defaultFieldSeed     = 1
)

// SparkleFieldOption mutates sparkle field construction parameters.
type SparkleFieldOption func(*sparkleFieldConfig) error

type sparkleFieldConfig struct {
	density  int
	minSpeed int
	maxSpeed int
	seed     int64
}

// WithFieldDensity sets the maximum number of simultaneously active
// sparkles.
func WithFieldDensity(density int) SparkleFieldOption {
	return func(cfg *sparkleFieldConfig) error {
		if density <= 0 {
			return fmt.Errorf("sparkle field density must be > 0: %d", density)
		}
		cfg.density = density
		return nil
	}
}

// WithFieldSpeedRange sets the inclusive range of cycle lengths assigned to
// sparkles.
func WithFieldSpeedRange(minSpeed, maxSpeed int) SparkleFieldOption {
	return func(cfg *sparkleFieldConfig) error {
		if minSpeed <= 0 || maxSpeed < minSpeed {
			return fmt.Errorf("sparkle field speed range must satisfy 0 < min <= max: [%d, %d]",
				minSpeed, maxSpeed)
		}
		cfg.minSpeed = minSpeed
		cfg.maxSpeed = maxSpeed
		return nil
	}
}

// WithFieldSeed sets the RNG seed for the activation order and assigned
// speeds.
func WithFieldSeed(seed int64) SparkleFieldOption {
	return func(cfg *sparkleFieldConfig) error {
		cfg.seed = seed
		return nil
	}
}

type fieldEntry struct {
	x     int
	y     int
	speed int
	phase int
}

// SparkleField twinkles many pixels across the matrix. Reset pre-generates
// a shuffled activation pool with pre-assigned speeds and phases, so the
// apparent randomness is fully reproducible; Step only consumes the pool.
// The field is continuous and never completes.
type SparkleField struct {
	geom     core.Geometry
	density  int
	minSpeed int
	maxSpeed int
	seed     int64
	rng      *rand.Rand

	pool      []fieldEntry
	poolIndex int
	active    []*Sparkle
}

// NewSparkleField creates a sparkle field covering the given geometry.
func NewSparkleField(geom core.Geometry, opts ...SparkleFieldOption) (*SparkleField, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := sparkleFieldConfig{
		density:  defaultFieldDensity,
		minSpeed: defaultFieldMinSpeed,
		maxSpeed: defaultFieldMaxSpeed,
		seed:     defaultFieldSeed,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	f := &SparkleField{
		geom:     geom,
		density:  cfg.density,
		minSpeed: cfg.minSpeed,
		maxSpeed: cfg.maxSpeed,
		seed:     cfg.seed,
		rng:      rand.New(rand.NewSource(cfg.seed)),
	}
	f.Reset()
	return f, nil
}

// Reset rebuilds the deterministic activation pool and clears all active
// sparkles.
func (f *SparkleField) Reset() {
	f.rng.Seed(f.seed)

	cells := f.geom.Cells()
	f.pool = f.pool[:0]
	for y := 0; y < f.geom.Height; y++ {
		for x := 0; x < f.geom.Width; x++ {
			f.pool = append(f.pool, fieldEntry{x: x, y: y})
		}
	}

	f.rng.Shuffle(cells, func(i, j int) {
		f.pool[i], f.pool[j] = f.pool[j], f.pool[i]
	})

	for i := range f.pool {
		speed := f.minSpeed + f.rng.Intn(f.maxSpeed-f.minSpeed+1)
		f.pool[i].speed = speed
		f.pool[i].phase = f.rng.Intn(speed + 1)
	}

	f.poolIndex = 0
	f.active = f.active[:0]
}

// Step activates pool entries up to the density limit and advances every
// active sparkle.
func (f *SparkleField) Step() core.Frame {
	for len(f.active) < f.density && f.poolIndex < len(f.pool) {
		entry := f.pool[f.poolIndex]
		f.poolIndex++

		sparkle, err := NewSparkle(entry.x, entry.y,
			WithSparkleSpeed(entry.speed),
			WithSparklePhase(entry.phase),
		)
		if err != nil {
			continue
		}
		f.active = append(f.active, sparkle)
	}

	var frame core.Frame
	for _, sparkle := range f.active {
		frame = append(frame, sparkle.Step()...)
	}
	return frame
}

// Done always reports false; the field twinkles indefinitely.
func (f *SparkleField) Done() bool {
	return false
}

// Looping reports true.
func (f *SparkleField) Looping() bool {
	return true
}
