package effects

import (
	"testing"

	"github.com/cwbudde/algo-led/internal/testutil"
	"github.com/cwbudde/algo-led/led/core"
)

func cometHeads(t *testing.T, c *Comet, n int) [][2]int {
	t.Helper()
	heads := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		frame := c.Step()
		if len(frame) == 0 {
			t.Fatalf("step %d: empty frame", i+1)
		}
		heads = append(heads, [2]int{frame[0].X, frame[0].Y})
	}
	return heads
}

func TestCometBounceReflectsAtEdge(t *testing.T) {
	geom := core.Geometry{Width: 10, Height: 1}
	c, err := NewComet(geom, 8, 0,
		WithCometVelocity(1, 0),
		WithCometTailLength(1),
	)
	if err != nil {
		t.Fatalf("NewComet failed: %v", err)
	}

	heads := cometHeads(t, c, 4)
	want := [][2]int{{9, 0}, {8, 0}, {7, 0}, {6, 0}}
	for i := range want {
		if heads[i] != want[i] {
			t.Fatalf("step %d: head at %v, want %v", i+1, heads[i], want[i])
		}
	}
}

func TestCometWrapCrossesEdge(t *testing.T) {
	geom := core.Geometry{Width: 5, Height: 1}
	c, err := NewComet(geom, 3, 0,
		WithCometVelocity(1, 0),
		WithCometTailLength(1),
		WithCometBoundary(CometWrap),
	)
	if err != nil {
		t.Fatalf("NewComet failed: %v", err)
	}

	heads := cometHeads(t, c, 3)
	want := [][2]int{{4, 0}, {0, 0}, {1, 0}}
	for i := range want {
		if heads[i] != want[i] {
			t.Fatalf("step %d: head at %v, want %v", i+1, heads[i], want[i])
		}
	}
}

func TestCometTailFadesAndStaysBounded(t *testing.T) {
	geom := core.Geometry{Width: 20, Height: 1}
	c, err := NewComet(geom, 0, 0,
		WithCometVelocity(1, 0),
		WithCometTailLength(6),
		WithCometBoundary(CometWrap),
	)
	if err != nil {
		t.Fatalf("NewComet failed: %v", err)
	}

	var frame core.Frame
	for i := 0; i < 10; i++ {
		frame = c.Step()
	}
	if len(frame) != 6 {
		t.Fatalf("trail has %d pixels, tail capacity is 6", len(frame))
	}
	if frame[0].B != 1 {
		t.Fatalf("head brightness = %v, want 1", frame[0].B)
	}
	for i := 1; i < len(frame); i++ {
		if frame[i].B > frame[i-1].B {
			t.Fatalf("tail brightness rises at index %d: %v > %v", i, frame[i].B, frame[i-1].B)
		}
	}
	// (1 - 5/6)^2 falls under the floor, so the oldest entry sits at it.
	testutil.RequireNearlyEqual(t, frame[len(frame)-1].B, 0.05, 1e-12)
}

func TestCometResetRestoresReversedVelocity(t *testing.T) {
	geom := core.Geometry{Width: 10, Height: 1}
	newComet := func() *Comet {
		c, err := NewComet(geom, 8, 0, WithCometVelocity(1, 0), WithCometTailLength(3))
		if err != nil {
			t.Fatalf("NewComet failed: %v", err)
		}
		return c
	}

	c := newComet()
	for i := 0; i < 5; i++ {
		c.Step() // past the bounce, velocity now reversed
	}
	c.Reset()
	got := testutil.Collect(c, 20)
	want := testutil.Collect(newComet(), 20)
	testutil.RequireSequencesEqual(t, got, want, 0)
}

func TestCometNeverDone(t *testing.T) {
	c, _ := NewComet(core.Geometry{Width: 5, Height: 5}, 2, 2, WithCometVelocity(0.7, 0.4))
	for i := 0; i < 200; i++ {
		c.Step()
		if c.Done() {
			t.Fatalf("comet done after step %d", i+1)
		}
	}
	if !IsLooping(c) {
		t.Fatal("comet should identify as looping")
	}
}

func TestCometOptionValidation(t *testing.T) {
	geom := core.Geometry{Width: 5, Height: 5}
	if _, err := NewComet(geom, 0, 0, WithCometVelocity(0, 0)); err == nil {
		t.Fatal("zero velocity accepted")
	}
	if _, err := NewComet(geom, 0, 0, WithCometTailLength(0)); err == nil {
		t.Fatal("zero tail length accepted")
	}
	if _, err := NewComet(geom, 0, 0, WithCometBoundary(CometBoundary(9))); err == nil {
		t.Fatal("unknown boundary policy accepted")
	}
	if _, err := NewComet(core.Geometry{Width: 0, Height: 5}, 0, 0); err == nil {
		t.Fatal("invalid geometry accepted")
	}
}
