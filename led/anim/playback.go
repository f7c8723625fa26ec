package anim

import (
	"fmt"

	"github.com/cwbudde/algo-led/led/core"
)

// PlaybackOption mutates playback construction parameters.
type PlaybackOption func(*playbackConfig)

type playbackConfig struct {
	loop bool
}

// WithPlaybackLoop restarts the animation at its first frame instead of
// completing after the last one.
func WithPlaybackLoop() PlaybackOption {
	return func(cfg *playbackConfig) {
		cfg.loop = true
	}
}

// Playback exposes a decoded animation as an ordinary effect. Step returns
// the next stored frame by index; no decoding happens during playback.
type Playback struct {
	anim *Animation
	loop bool

	index int
	done  bool
}

// NewPlayback creates a playback effect over a decoded animation.
func NewPlayback(anim *Animation, opts ...PlaybackOption) (*Playback, error) {
	if anim == nil {
		return nil, fmt.Errorf("playback animation must not be nil")
	}
	if err := anim.Validate(); err != nil {
		return nil, err
	}

	var cfg playbackConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := &Playback{anim: anim, loop: cfg.loop}
	p.Reset()
	return p, nil
}

// FPS returns the animation's declared frame rate.
func (p *Playback) FPS() int {
	return p.anim.FPS
}

// Reset rewinds the frame index.
func (p *Playback) Reset() {
	p.index = 0
	p.done = len(p.anim.Frames) == 0 && !p.loop
}

// Step returns the next stored frame. The returned frame is shared with
// the animation and must be treated as read-only.
func (p *Playback) Step() core.Frame {
	if p.done || len(p.anim.Frames) == 0 {
		return nil
	}

	frame := p.anim.Frames[p.index]
	p.index++

	if p.index >= len(p.anim.Frames) {
		if p.loop {
			p.index = 0
		} else {
			p.done = true
		}
	}
	return frame
}

// Done reports true once a non-looping playback has shown its last frame.
func (p *Playback) Done() bool {
	return p.done
}

// Looping reports whether the playback restarts.
func (p *Playback) Looping() bool {
	return p.loop
}
