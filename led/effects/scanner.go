package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-led/led/core"
)

const (
	defaultScannerSpeed = 1
	defaultScannerTrail = 5
	minTrailBrightness  = 0.05
)

// ScannerSweepOption mutates scanner construction parameters.
type ScannerSweepOption func(*scannerConfig) error

type scannerConfig struct {
	vertical    bool
	speed       int
	trailLength int
	clip        bool
}

// WithScannerVertical sweeps a horizontal bar top to bottom instead of a
// vertical bar left to right.
func WithScannerVertical() ScannerSweepOption {
	return func(cfg *scannerConfig) error {
		cfg.vertical = true
		return nil
	}
}

// WithScannerSpeed sets movement in pixels per frame.
func WithScannerSpeed(speed int) ScannerSweepOption {
	return func(cfg *scannerConfig) error {
		if speed <= 0 {
			return fmt.Errorf("scanner speed must be > 0: %d", speed)
		}
		cfg.speed = speed
		return nil
	}
}

// WithScannerTrailLength sets the trail capacity.
func WithScannerTrailLength(n int) ScannerSweepOption {
	return func(cfg *scannerConfig) error {
		if n <= 0 {
			return fmt.Errorf("scanner trail length must be > 0: %d", n)
		}
		cfg.trailLength = n
		return nil
	}
}

// WithScannerClip finishes the sweep at the far edge instead of bouncing,
// making the effect finite.
func WithScannerClip() ScannerSweepOption {
	return func(cfg *scannerConfig) error {
		cfg.clip = true
		return nil
	}
}

// ScannerSweep sweeps a full-height (or full-width) bar across the matrix
// with a fading trail. The default bounce policy reflects at the edges and
// runs forever; the clip policy completes at the far edge.
type ScannerSweep struct {
	geom        core.Geometry
	vertical    bool
	speed       int
	trailLength int
	clip        bool

	pos   int
	dir   int
	trail *pointRing
	done  bool
}

// NewScannerSweep creates a scanner sweep on the given geometry.
func NewScannerSweep(geom core.Geometry, opts ...ScannerSweepOption) (*ScannerSweep, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := scannerConfig{
		speed:       defaultScannerSpeed,
		trailLength: defaultScannerTrail,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	s := &ScannerSweep{
		geom:        geom,
		vertical:    cfg.vertical,
		speed:       cfg.speed,
		trailLength: cfg.trailLength,
		clip:        cfg.clip,
		trail:       newPointRing(cfg.trailLength),
	}
	s.Reset()
	return s, nil
}

// Reset moves the bar back to the near edge with an empty trail.
func (s *ScannerSweep) Reset() {
	s.pos = 0
	s.dir = 1
	s.trail.Clear()
	s.done = false
}

// Step advances the bar and returns the bar plus trail pixels.
func (s *ScannerSweep) Step() core.Frame {
	if s.done {
		return nil
	}

	limit := s.geom.Width - 1
	if s.vertical {
		limit = s.geom.Height - 1
	}

	next := s.pos + s.dir*s.speed
	if next < 0 || next > limit {
		if s.clip {
			s.done = true
			return nil
		}
		s.dir = -s.dir
		next = s.pos + s.dir*s.speed
	}
	s.pos = next

	s.trail.Push(s.pos, 0)

	var frame core.Frame
	for i := 0; i < s.trail.Len(); i++ {
		p, _ := s.trail.At(i)
		fade := 1 - float64(i)/float64(s.trailLength)
		brightness := math.Max(minTrailBrightness, fade*fade)

		if s.vertical {
			for x := 0; x < s.geom.Width; x++ {
				frame = append(frame, core.Pixel{X: x, Y: p, B: brightness})
			}
		} else {
			for y := 0; y < s.geom.Height; y++ {
				frame = append(frame, core.Pixel{X: p, Y: y, B: brightness})
			}
		}
	}
	return frame
}

// Done reports true once a clip-policy sweep has left the matrix.
func (s *ScannerSweep) Done() bool {
	return s.done
}

// Looping reports true for the bounce policy.
func (s *ScannerSweep) Looping() bool {
	return !s.clip
}
