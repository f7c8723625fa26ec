package anim

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-led/led/core"
	"github.com/cwbudde/algo-led/led/effects"
)

const defaultRunnerFPS = 20

// Renderer consumes one frame per tick. Implementations own coordinate
// mapping, brightness clamping, gamma correction, and transmission; the
// core never clamps.
type Renderer interface {
	Render(frame core.Frame) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(frame core.Frame) error

// Render calls f.
func (f RendererFunc) Render(frame core.Frame) error {
	return f(frame)
}

// RunnerOption mutates runner construction parameters.
type RunnerOption func(*runnerConfig) error

type runnerConfig struct {
	fps    int
	invert bool
}

// WithRunnerFPS sets the declared logical frame rate.
func WithRunnerFPS(fps int) RunnerOption {
	return func(cfg *runnerConfig) error {
		if fps <= 0 {
			return fmt.Errorf("runner fps must be > 0: %d", fps)
		}
		cfg.fps = fps
		return nil
	}
}

// WithRunnerInvert inverts brightness across the whole matrix before
// rendering: unlit cells become fully lit and vice versa.
func WithRunnerInvert() RunnerOption {
	return func(cfg *runnerConfig) error {
		cfg.invert = true
		return nil
	}
}

// Runner pulls frames from a root effect and forwards them to a renderer.
// It performs no pacing itself; callers sleep between ticks using
// FrameInterval when driving hardware in real time.
type Runner struct {
	effect   effects.Effect
	renderer Renderer
	geom     core.Geometry
	fps      int
	invert   bool

	dense *core.Buffer
	ones  *core.Buffer
}

// NewRunner creates a runner over the given root effect and renderer.
func NewRunner(geom core.Geometry, effect effects.Effect, renderer Renderer, opts ...RunnerOption) (*Runner, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if effect == nil {
		return nil, fmt.Errorf("runner effect must not be nil")
	}
	if renderer == nil {
		return nil, fmt.Errorf("runner renderer must not be nil")
	}

	cfg := runnerConfig{fps: defaultRunnerFPS}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	r := &Runner{
		effect:   effect,
		renderer: renderer,
		geom:     geom,
		fps:      cfg.fps,
		invert:   cfg.invert,
	}

	if cfg.invert {
		dense, err := core.NewBuffer(geom)
		if err != nil {
			return nil, err
		}
		ones, err := core.NewBuffer(geom)
		if err != nil {
			return nil, err
		}
		ones.Fill(1)
		r.dense = dense
		r.ones = ones
	}

	return r, nil
}

// FPS returns the declared logical frame rate.
func (r *Runner) FPS() int {
	return r.fps
}

// FrameInterval returns the wall-clock duration of one logical tick.
func (r *Runner) FrameInterval() time.Duration {
	return time.Second / time.Duration(r.fps)
}

// Run pulls up to maxFrames frames, stopping early once the root effect
// reports done. It returns the number of frames rendered.
func (r *Runner) Run(maxFrames int) (int, error) {
	if maxFrames <= 0 {
		return 0, fmt.Errorf("runner frame count must be > 0: %d", maxFrames)
	}

	rendered := 0
	for rendered < maxFrames {
		if r.effect.Done() {
			break
		}

		frame := r.effect.Step()
		if r.invert {
			frame = r.invertFrame(frame)
		}

		if err := r.renderer.Render(frame); err != nil {
			return rendered, fmt.Errorf("render frame %d: %w", rendered, err)
		}
		rendered++
	}
	return rendered, nil
}

// invertFrame densifies the sparse frame and returns 1-b for every matrix
// cell.
func (r *Runner) invertFrame(frame core.Frame) core.Frame {
	r.dense.Zero()
	for _, p := range core.Dominant(frame) {
		r.dense.Set(p.X, p.Y, p.B)
	}

	r.dense.Scale(-1)
	r.dense.AddInPlace(r.ones)

	out := make(core.Frame, 0, r.geom.Cells())
	for y := 0; y < r.geom.Height; y++ {
		for x := 0; x < r.geom.Width; x++ {
			out = append(out, core.Pixel{X: x, Y: y, B: r.dense.At(x, y)})
		}
	}
	return out
}
