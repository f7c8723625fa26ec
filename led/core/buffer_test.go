package core

import (
	"math"
	"testing"
)

func TestNewBufferRejectsBadGeometry(t *testing.T) {
	if _, err := NewBuffer(Geometry{Width: 0, Height: 7}); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := NewBuffer(Geometry{Width: 17, Height: -1}); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestBufferSetAt(t *testing.T) {
	buf, err := NewBuffer(Geometry{Width: 4, Height: 3})
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}

	buf.Set(2, 1, 0.5)
	if got := buf.At(2, 1); got != 0.5 {
		t.Fatalf("At(2,1) = %v, want 0.5", got)
	}

	buf.Set(-1, 0, 1)
	buf.Set(4, 0, 1)
	buf.Set(0, 3, 1)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if x == 2 && y == 1 {
				continue
			}
			if got := buf.At(x, y); got != 0 {
				t.Fatalf("out-of-bounds write leaked into (%d,%d) = %v", x, y, got)
			}
		}
	}
	if got := buf.At(-1, 0); got != 0 {
		t.Fatalf("out-of-bounds read = %v, want 0", got)
	}
}

func TestBufferScaleMatchesScalarLoop(t *testing.T) {
	geom := Geometry{Width: 17, Height: 7}
	buf, err := NewBuffer(geom)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}

	want := make([]float64, geom.Cells())
	for y := 0; y < geom.Height; y++ {
		for x := 0; x < geom.Width; x++ {
			v := math.Sin(float64(x)*0.3 + float64(y)*0.7)
			buf.Set(x, y, v)
			want[y*geom.Width+x] = v * 0.25
		}
	}

	buf.Scale(0.25)
	for y := 0; y < geom.Height; y++ {
		for x := 0; x < geom.Width; x++ {
			got := buf.At(x, y)
			if !NearlyEqual(got, want[y*geom.Width+x], 1e-12) {
				t.Fatalf("Scale mismatch at (%d,%d): got %v, want %v", x, y, got, want[y*geom.Width+x])
			}
		}
	}
}

func TestBufferAddAndMulInPlace(t *testing.T) {
	geom := Geometry{Width: 5, Height: 2}
	a, _ := NewBuffer(geom)
	b, _ := NewBuffer(geom)
	for y := 0; y < geom.Height; y++ {
		for x := 0; x < geom.Width; x++ {
			a.Set(x, y, float64(x))
			b.Set(x, y, float64(y)+1)
		}
	}

	a.AddInPlace(b)
	if got := a.At(3, 1); got != 5 {
		t.Fatalf("AddInPlace: At(3,1) = %v, want 5", got)
	}

	a.MulInPlace(b)
	if got := a.At(3, 1); got != 10 {
		t.Fatalf("MulInPlace: At(3,1) = %v, want 10", got)
	}

	other, _ := NewBuffer(Geometry{Width: 2, Height: 2})
	a.AddInPlace(other)
	if got := a.At(3, 1); got != 10 {
		t.Fatalf("mismatched geometry mutated the buffer: %v", got)
	}
}

func TestBufferSparse(t *testing.T) {
	buf, _ := NewBuffer(Geometry{Width: 3, Height: 2})
	buf.Set(2, 0, 0.4)
	buf.Set(0, 1, 0.9)

	frame := buf.Sparse(nil)
	if len(frame) != 2 {
		t.Fatalf("Sparse returned %d pixels, want 2", len(frame))
	}
	if frame[0] != (Pixel{X: 2, Y: 0, B: 0.4}) {
		t.Fatalf("first pixel = %+v, want (2,0,0.4)", frame[0])
	}
	if frame[1] != (Pixel{X: 0, Y: 1, B: 0.9}) {
		t.Fatalf("second pixel = %+v, want (0,1,0.9)", frame[1])
	}
}

func TestBufferResizeZeroes(t *testing.T) {
	buf, _ := NewBuffer(Geometry{Width: 4, Height: 4})
	buf.Fill(1)

	if err := buf.Resize(Geometry{Width: 2, Height: 2}); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if buf.Geometry() != (Geometry{Width: 2, Height: 2}) {
		t.Fatalf("geometry not updated: %+v", buf.Geometry())
	}
	if frame := buf.Sparse(nil); len(frame) != 0 {
		t.Fatalf("resized buffer not zeroed: %v", frame)
	}

	if err := buf.Resize(Geometry{Width: 0, Height: 2}); err == nil {
		t.Fatal("expected error for invalid resize geometry")
	}
}

func TestEnsureLen(t *testing.T) {
	buf := make([]float64, 8)
	got := EnsureLen(buf, 4)
	if len(got) != 4 || cap(got) != 8 {
		t.Fatalf("EnsureLen shrink: len=%d cap=%d", len(got), cap(got))
	}
	got = EnsureLen(buf, 16)
	if len(got) != 16 {
		t.Fatalf("EnsureLen grow: len=%d", len(got))
	}
	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("EnsureLen(0): len=%d", len(got))
	}
}
