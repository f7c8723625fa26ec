package effects

import (
	"testing"

	"github.com/cwbudde/algo-led/internal/testutil"
	"github.com/cwbudde/algo-led/led/core"
)

func TestExpandingBoxOutlineAtRadiusOne(t *testing.T) {
	geom := core.Geometry{Width: 7, Height: 7}
	b, err := NewExpandingBox(geom, 3, 3, WithBoxSpeed(1))
	if err != nil {
		t.Fatalf("NewExpandingBox failed: %v", err)
	}

	first := b.Step()
	testutil.RequireFrameEqual(t, first, core.Frame{{X: 3, Y: 3, B: 1}}, 0)

	frame := b.Step()
	if len(frame) != 8 {
		t.Fatalf("radius-1 outline has %d pixels, want 8", len(frame))
	}
	for _, p := range frame {
		dx := p.X - 3
		dy := p.Y - 3
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx != 1 && dy != 1 {
			t.Fatalf("pixel (%d,%d) not on the radius-1 outline", p.X, p.Y)
		}
		if p.B != 1 {
			t.Fatalf("outline pixel (%d,%d) brightness %v, want 1", p.X, p.Y, p.B)
		}
	}
}

func TestExpandingBoxClipsToMatrix(t *testing.T) {
	geom := core.Geometry{Width: 5, Height: 3}
	b, err := NewExpandingBox(geom, 0, 0, WithBoxSpeed(1))
	if err != nil {
		t.Fatalf("NewExpandingBox failed: %v", err)
	}

	for i := 0; i < 12; i++ {
		for _, p := range b.Step() {
			if !geom.Contains(p.X, p.Y) {
				t.Fatalf("step %d: pixel (%d,%d) outside %dx%d", i, p.X, p.Y, geom.Width, geom.Height)
			}
		}
	}
}

func TestExpandingBoxLoops(t *testing.T) {
	geom := core.Geometry{Width: 9, Height: 9}
	b, err := NewExpandingBox(geom, 4, 4, WithBoxSpeed(1), WithBoxMaxRadius(3))
	if err != nil {
		t.Fatalf("NewExpandingBox failed: %v", err)
	}

	// Natural period is 4 frames (radius 0..3).
	frames := testutil.Collect(b, 4*12)
	if b.Done() {
		t.Fatal("box reported done")
	}
	testutil.RequireSequencesEqual(t, frames[:4], frames[4:8], 0)
	if !IsLooping(b) {
		t.Fatal("box should identify as looping")
	}
}

func TestExpandingBoxResetRewinds(t *testing.T) {
	geom := core.Geometry{Width: 9, Height: 9}
	b, err := NewExpandingBox(geom, 4, 4)
	if err != nil {
		t.Fatalf("NewExpandingBox failed: %v", err)
	}

	want := testutil.Collect(b, 8)
	b.Reset()
	got := testutil.Collect(b, 8)
	testutil.RequireSequencesEqual(t, got, want, 0)
}

func TestExpandingBoxOptionValidation(t *testing.T) {
	geom := core.Geometry{Width: 5, Height: 5}
	if _, err := NewExpandingBox(geom, 2, 2, WithBoxSpeed(-1)); err == nil {
		t.Fatal("negative speed accepted")
	}
	if _, err := NewExpandingBox(geom, 2, 2, WithBoxMaxRadius(0)); err == nil {
		t.Fatal("zero max radius accepted")
	}
}
