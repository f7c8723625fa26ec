package effects

import (
	"testing"

	"github.com/cwbudde/algo-led/internal/testutil"
	"github.com/cwbudde/algo-led/led/core"
)

func TestSparkleFieldDensityBound(t *testing.T) {
	geom := core.Geometry{Width: 17, Height: 7}
	f, err := NewSparkleField(geom, WithFieldDensity(12))
	if err != nil {
		t.Fatalf("NewSparkleField failed: %v", err)
	}

	for i := 0; i < 20; i++ {
		frame := f.Step()
		if len(frame) > 12 {
			t.Fatalf("step %d: %d active pixels, density cap is 12", i, len(frame))
		}
	}
}

func TestSparkleFieldPixelsInsideBounds(t *testing.T) {
	geom := core.Geometry{Width: 6, Height: 4}
	f, err := NewSparkleField(geom, WithFieldDensity(8), WithFieldSeed(3))
	if err != nil {
		t.Fatalf("NewSparkleField failed: %v", err)
	}

	seen := map[[2]int]bool{}
	for i := 0; i < 40; i++ {
		for _, p := range f.Step() {
			if !geom.Contains(p.X, p.Y) {
				t.Fatalf("pixel (%d,%d) outside %dx%d", p.X, p.Y, geom.Width, geom.Height)
			}
			seen[[2]int{p.X, p.Y}] = true
		}
	}
	if len(seen) < 2 {
		t.Fatalf("field only ever touched %d distinct cells", len(seen))
	}
}

func TestSparkleFieldResetMatchesFreshInstance(t *testing.T) {
	geom := core.Geometry{Width: 17, Height: 7}

	f, err := NewSparkleField(geom, WithFieldSeed(11), WithFieldSpeedRange(5, 15))
	if err != nil {
		t.Fatalf("NewSparkleField failed: %v", err)
	}
	for i := 0; i < 23; i++ {
		f.Step()
	}
	f.Reset()
	got := testutil.Collect(f, 60)

	fresh, err := NewSparkleField(geom, WithFieldSeed(11), WithFieldSpeedRange(5, 15))
	if err != nil {
		t.Fatalf("NewSparkleField failed: %v", err)
	}
	want := testutil.Collect(fresh, 60)

	testutil.RequireSequencesEqual(t, got, want, 0)
}

func TestSparkleFieldNeverDone(t *testing.T) {
	f, _ := NewSparkleField(core.Geometry{Width: 5, Height: 5})
	for i := 0; i < 300; i++ {
		f.Step()
		if f.Done() {
			t.Fatalf("field done after step %d", i+1)
		}
	}
	if !IsLooping(f) {
		t.Fatal("field should identify as looping")
	}
}

func TestSparkleFieldOptionValidation(t *testing.T) {
	geom := core.Geometry{Width: 5, Height: 5}
	if _, err := NewSparkleField(geom, WithFieldDensity(0)); err == nil {
		t.Fatal("zero density accepted")
	}
	if _, err := NewSparkleField(geom, WithFieldSpeedRange(10, 5)); err == nil {
		t.Fatal("inverted speed range accepted")
	}
	if _, err := NewSparkleField(core.Geometry{Width: 0, Height: 1}); err == nil {
		t.Fatal("invalid geometry accepted")
	}
}
