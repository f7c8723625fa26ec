package compose

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-led/led/core"
	"github.com/cwbudde/algo-led/led/effects"
)

// ErrNoLayers is returned when a layered effect is built without layers.
var ErrNoLayers = errors.New("layered effect requires at least one layer")

// Layer pairs a child effect with the blend mode used to merge its output.
// The layer is owned by its parent Layered composite.
type Layer struct {
	Effect effects.Effect
	Mode   BlendMode
}

// Layered is an effect whose frames are the per-coordinate merge of an
// ordered stack of child effects. Layer order is significant: the first
// layer is the base and later layers blend onto the working surface.
//
// Duplicate coordinates inside one child's frame collapse to their maximum
// brightness before blending, and samples outside the matrix are dropped
// silently. Finished children stay dark; they are not restarted.
type Layered struct {
	geom   core.Geometry
	layers []Layer

	working *core.Buffer
	touched []int
	marked  []bool
}

// NewLayered creates a composite over the given layers, applied in order.
func NewLayered(geom core.Geometry, layers ...Layer) (*Layered, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if len(layers) == 0 {
		return nil, ErrNoLayers
	}
	for i, layer := range layers {
		if layer.Effect == nil {
			return nil, fmt.Errorf("layer %d has a nil effect", i)
		}
		if !layer.Mode.Valid() {
			return nil, fmt.Errorf("layer %d has an invalid blend mode: %d", i, int(layer.Mode))
		}
	}

	working, err := core.NewBuffer(geom)
	if err != nil {
		return nil, err
	}

	return &Layered{
		geom:    geom,
		layers:  append([]Layer(nil), layers...),
		working: working,
		touched: make([]int, 0, geom.Cells()),
		marked:  make([]bool, geom.Cells()),
	}, nil
}

// Layers returns the number of layers.
func (l *Layered) Layers() int {
	return len(l.layers)
}

// Step steps every child in declaration order and merges the results.
func (l *Layered) Step() core.Frame {
	l.working.Zero()
	l.touched = l.touched[:0]
	for i := range l.marked {
		l.marked[i] = false
	}

	for _, layer := range l.layers {
		frame := core.Dominant(layer.Effect.Step())

		for _, p := range frame {
			if !l.geom.Contains(p.X, p.Y) {
				continue
			}

			merged := Merge(l.working.At(p.X, p.Y), p.B, layer.Mode)
			l.working.Set(p.X, p.Y, merged)

			idx := p.Y*l.geom.Width + p.X
			if !l.marked[idx] {
				l.marked[idx] = true
				l.touched = append(l.touched, idx)
			}
		}
	}

	frame := make(core.Frame, 0, len(l.touched))
	for _, idx := range l.touched {
		x := idx % l.geom.Width
		y := idx / l.geom.Width
		b := l.working.At(x, y)
		if b == 0 {
			continue
		}
		frame = append(frame, core.Pixel{X: x, Y: y, B: b})
	}
	return frame
}

// Reset resets every child.
func (l *Layered) Reset() {
	for _, layer := range l.layers {
		layer.Effect.Reset()
	}
}

// Done reports true only when every non-looping child is done. Looping
// children never block completion.
func (l *Layered) Done() bool {
	sawFinite := false
	for _, layer := range l.layers {
		if effects.IsLooping(layer.Effect) {
			continue
		}
		sawFinite = true
		if !layer.Effect.Done() {
			return false
		}
	}
	return sawFinite
}

// Looping reports true when every child loops, in which case the composite
// can never complete.
func (l *Layered) Looping() bool {
	for _, layer := range l.layers {
		if !effects.IsLooping(layer.Effect) {
			return false
		}
	}
	return true
}
