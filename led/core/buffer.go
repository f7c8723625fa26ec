package core

import (
	"github.com/cwbudde/algo-vecmath"
)

// Buffer is a dense row-major brightness surface sized to one matrix
// geometry. It is the transient working surface used when compositing layers
// and when an effect needs to touch every cell.
type Buffer struct {
	geom Geometry
	data []float64
}

// NewBuffer creates a zeroed buffer for the given geometry.
func NewBuffer(geom Geometry) (*Buffer, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	return &Buffer{
		geom: geom,
		data: make([]float64, geom.Cells()),
	}, nil
}

// Geometry returns the buffer's geometry.
func (b *Buffer) Geometry() Geometry {
	return b.geom
}

// Resize rebinds the buffer to a new geometry, reusing capacity when
// possible. The contents are zeroed.
func (b *Buffer) Resize(geom Geometry) error {
	if err := geom.Validate(); err != nil {
		return err
	}
	b.geom = geom
	b.data = EnsureLen(b.data, geom.Cells())
	b.Zero()
	return nil
}

// Zero clears every cell.
func (b *Buffer) Zero() {
	for i := range b.data {
		b.data[i] = 0
	}
}

// At returns the brightness at (x, y). Out-of-bounds coordinates read 0.
func (b *Buffer) At(x, y int) float64 {
	if !b.geom.Contains(x, y) {
		return 0
	}
	return b.data[y*b.geom.Width+x]
}

// Set writes the brightness at (x, y). Out-of-bounds coordinates are
// dropped silently.
func (b *Buffer) Set(x, y int, v float64) {
	if !b.geom.Contains(x, y) {
		return
	}
	b.data[y*b.geom.Width+x] = v
}

// Fill sets every cell to v.
func (b *Buffer) Fill(v float64) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Scale multiplies every cell by k.
func (b *Buffer) Scale(k float64) {
	vecmath.ScaleBlock(b.data, b.data, k)
}

// AddInPlace adds other cell-wise. Geometries must match.
func (b *Buffer) AddInPlace(other *Buffer) {
	if other == nil || other.geom != b.geom {
		return
	}
	vecmath.AddBlockInPlace(b.data, other.data)
}

// MulInPlace multiplies by other cell-wise. Geometries must match.
func (b *Buffer) MulInPlace(other *Buffer) {
	if other == nil || other.geom != b.geom {
		return
	}
	vecmath.MulBlockInPlace(b.data, other.data)
}

// Sparse appends every non-zero cell to dst as a Pixel and returns the
// result, scanning rows top to bottom.
func (b *Buffer) Sparse(dst Frame) Frame {
	for y := 0; y < b.geom.Height; y++ {
		row := b.data[y*b.geom.Width : (y+1)*b.geom.Width]
		for x, v := range row {
			if v != 0 {
				dst = append(dst, Pixel{X: x, Y: y, B: v})
			}
		}
	}
	return dst
}

// EnsureLen returns a slice with the requested length, reusing buf capacity
// if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}
