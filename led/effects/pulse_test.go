package effects

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-led/internal/testutil"
	"github.com/cwbudde/algo-led/led/core"
)

func TestPulseFadeFirstFrameAtHalfBrightness(t *testing.T) {
	geom := core.Geometry{Width: 4, Height: 3}
	p, err := NewPulseFade(geom)
	if err != nil {
		t.Fatalf("NewPulseFade failed: %v", err)
	}

	frame := p.Step()
	if len(frame) != geom.Cells() {
		t.Fatalf("frame has %d pixels, want every cell (%d)", len(frame), geom.Cells())
	}
	for _, px := range frame {
		testutil.RequireNearlyEqual(t, px.B, 0.5, 1e-12)
	}
}

func TestPulseFadeFollowsSine(t *testing.T) {
	geom := core.Geometry{Width: 2, Height: 2}
	p, err := NewPulseFade(geom, WithPulseSpeed(math.Pi/2))
	if err != nil {
		t.Fatalf("NewPulseFade failed: %v", err)
	}

	want := []float64{0.5, 1, 0.5, 0}
	for i, b := range want {
		frame := p.Step()
		if b == 0 {
			// Zero-brightness cells vanish from the sparse frame.
			if len(frame) != 0 {
				t.Fatalf("step %d: dark frame has %d pixels", i+1, len(frame))
			}
			continue
		}
		if len(frame) != geom.Cells() {
			t.Fatalf("step %d: frame has %d pixels, want %d", i+1, len(frame), geom.Cells())
		}
		testutil.RequireNearlyEqual(t, frame[0].B, b, 1e-12)
	}
}

func TestPulseFadeRepeats(t *testing.T) {
	geom := core.Geometry{Width: 2, Height: 1}
	p, err := NewPulseFade(geom, WithPulseSpeed(math.Pi/2))
	if err != nil {
		t.Fatalf("NewPulseFade failed: %v", err)
	}

	// Period is 4 frames at pi/2 per frame.
	frames := testutil.Collect(p, 4*12)
	if p.Done() {
		t.Fatal("repeating pulse reported done")
	}
	testutil.RequireSequencesEqual(t, frames[:4], frames[4:8], 1e-12)
	if !IsLooping(p) {
		t.Fatal("repeating pulse should identify as looping")
	}
}

func TestPulseFadeSingleCompletes(t *testing.T) {
	geom := core.Geometry{Width: 2, Height: 1}
	p, err := NewPulseFade(geom, WithPulseSpeed(math.Pi/2), WithPulseSingle())
	if err != nil {
		t.Fatalf("NewPulseFade failed: %v", err)
	}
	if IsLooping(p) {
		t.Fatal("single pulse should not identify as looping")
	}

	steps := 0
	for !p.Done() {
		p.Step()
		steps++
		if steps > 10 {
			t.Fatal("single pulse never finished")
		}
	}
	if steps != 4 {
		t.Fatalf("single pulse finished after %d steps, want 4", steps)
	}
	if frame := p.Step(); len(frame) != 0 {
		t.Fatalf("finished pulse emitted %d pixels", len(frame))
	}

	p.Reset()
	if p.Done() {
		t.Fatal("pulse still done after Reset")
	}
	frame := p.Step()
	if len(frame) != geom.Cells() {
		t.Fatalf("reset pulse frame has %d pixels, want %d", len(frame), geom.Cells())
	}
}

func TestPulseFadeOptionValidation(t *testing.T) {
	geom := core.Geometry{Width: 2, Height: 2}
	if _, err := NewPulseFade(geom, WithPulseSpeed(0)); err == nil {
		t.Fatal("zero speed accepted")
	}
	if _, err := NewPulseFade(geom, WithPulseSpeed(math.NaN())); err == nil {
		t.Fatal("NaN speed accepted")
	}
}
