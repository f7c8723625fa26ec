package anim

import (
	"fmt"

	"github.com/cwbudde/algo-led/led/core"
	"github.com/cwbudde/algo-led/led/effects"
)

const defaultRecorderFPS = 25

// RecorderOption mutates recorder construction parameters.
type RecorderOption func(*recorderConfig) error

type recorderConfig struct {
	fps int
}

// WithRecorderFPS sets the frame rate declared in the recorded animation.
func WithRecorderFPS(fps int) RecorderOption {
	return func(cfg *recorderConfig) error {
		if fps <= 0 {
			return fmt.Errorf("recorder fps must be > 0: %d", fps)
		}
		cfg.fps = fps
		return nil
	}
}

// Recorder pre-bakes an effect into a replayable animation. Recording is
// eager and synchronous: frames are pulled through the ordinary step
// contract before anything is persisted.
type Recorder struct {
	effect effects.Effect
	geom   core.Geometry
	fps    int
}

// NewRecorder creates a recorder over the given root effect.
func NewRecorder(geom core.Geometry, effect effects.Effect, opts ...RecorderOption) (*Recorder, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if effect == nil {
		return nil, fmt.Errorf("recorder effect must not be nil")
	}

	cfg := recorderConfig{fps: defaultRecorderFPS}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Recorder{effect: effect, geom: geom, fps: cfg.fps}, nil
}

// Record resets the effect and captures exactly frames steps.
func (r *Recorder) Record(frames int) (*Animation, error) {
	if frames <= 0 {
		return nil, fmt.Errorf("recorder frame count must be > 0: %d", frames)
	}

	r.effect.Reset()

	anim := &Animation{
		Width:  r.geom.Width,
		Height: r.geom.Height,
		FPS:    r.fps,
		Frames: make([]core.Frame, 0, frames),
	}
	for i := 0; i < frames; i++ {
		anim.Frames = append(anim.Frames, core.CloneFrame(r.effect.Step()))
	}
	return anim, nil
}

// RecordUntilDone resets the effect and captures frames until it reports
// done, up to maxFrames. Looping effects never finish, so the cap also
// bounds them.
func (r *Recorder) RecordUntilDone(maxFrames int) (*Animation, error) {
	if maxFrames <= 0 {
		return nil, fmt.Errorf("recorder frame limit must be > 0: %d", maxFrames)
	}

	r.effect.Reset()

	anim := &Animation{
		Width:  r.geom.Width,
		Height: r.geom.Height,
		FPS:    r.fps,
	}
	for i := 0; i < maxFrames; i++ {
		if r.effect.Done() {
			break
		}
		anim.Frames = append(anim.Frames, core.CloneFrame(r.effect.Step()))
	}
	return anim, nil
}
