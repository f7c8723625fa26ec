// Package anim drives effects at a fixed logical frame rate and persists
// recorded animations for later replay.
package anim

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-led/led/core"
)

// FormatVersion is the current persisted animation format version.
const FormatVersion = 1

// ErrBadAnimation is wrapped by all decode failures.
var ErrBadAnimation = errors.New("malformed animation")

// Animation is a finite recorded frame sequence with a declared playback
// rate. It is immutable once recorded.
type Animation struct {
	Width  int
	Height int
	FPS    int
	Frames []core.Frame
}

// Validate reports an error for non-positive dimensions or frame rate.
func (a *Animation) Validate() error {
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("animation dimensions must be > 0: %dx%d", a.Width, a.Height)
	}
	if a.FPS <= 0 {
		return fmt.Errorf("animation fps must be > 0: %d", a.FPS)
	}
	return nil
}

// animationFile is the JSON wire form inside the gzip blob. Pixels are
// stored as [x, y, brightness] triples, one list per frame.
type animationFile struct {
	Version    int            `json:"version"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	FPS        int            `json:"fps"`
	FrameCount int            `json:"frame_count"`
	Frames     [][][3]float64 `json:"frames"`
}

// Encode writes the animation as a gzip-compressed JSON blob.
func (a *Animation) Encode(w io.Writer) error {
	if err := a.Validate(); err != nil {
		return err
	}

	file := animationFile{
		Version:    FormatVersion,
		Width:      a.Width,
		Height:     a.Height,
		FPS:        a.FPS,
		FrameCount: len(a.Frames),
		Frames:     make([][][3]float64, len(a.Frames)),
	}
	for i, frame := range a.Frames {
		encoded := make([][3]float64, len(frame))
		for j, p := range frame {
			encoded[j] = [3]float64{float64(p.X), float64(p.Y), p.B}
		}
		file.Frames[i] = encoded
	}

	zw := gzip.NewWriter(w)
	if err := json.NewEncoder(zw).Encode(&file); err != nil {
		zw.Close()
		return fmt.Errorf("encode animation: %w", err)
	}
	return zw.Close()
}

// DecodeAnimation reads a gzip-compressed JSON animation blob. Corrupt or
// truncated input fails here, before any playback effect exists; decoding
// never partially succeeds.
func DecodeAnimation(r io.Reader) (*Animation, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAnimation, err)
	}
	defer zr.Close()

	var file animationFile
	dec := json.NewDecoder(zr)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAnimation, err)
	}
	// Read through to EOF so the gzip checksum trailer is verified; the
	// JSON decoder stops at the end of the value and never reaches it.
	if _, err := io.Copy(io.Discard, zr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAnimation, err)
	}

	if file.Version != FormatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrBadAnimation, file.Version)
	}
	if file.Width <= 0 || file.Height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrBadAnimation, file.Width, file.Height)
	}
	if file.FPS <= 0 {
		return nil, fmt.Errorf("%w: fps %d", ErrBadAnimation, file.FPS)
	}
	if file.FrameCount != len(file.Frames) {
		return nil, fmt.Errorf("%w: frame count %d does not match %d stored frames",
			ErrBadAnimation, file.FrameCount, len(file.Frames))
	}

	anim := &Animation{
		Width:  file.Width,
		Height: file.Height,
		FPS:    file.FPS,
		Frames: make([]core.Frame, len(file.Frames)),
	}
	for i, encoded := range file.Frames {
		frame := make(core.Frame, len(encoded))
		for j, triple := range encoded {
			frame[j] = core.Pixel{
				X: int(triple[0]),
				Y: int(triple[1]),
				B: triple[2],
			}
		}
		anim.Frames[i] = frame
	}
	return anim, nil
}
