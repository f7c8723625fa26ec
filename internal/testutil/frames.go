// Package testutil provides shared helpers for frame-based tests.
package testutil

import (
	"math"
	"sort"
	"testing"

	"github.com/cwbudde/algo-led/led/core"
)

// DenseMap collapses a frame to a coordinate map with last-write-wins
// semantics per coordinate.
func DenseMap(frame core.Frame) map[[2]int]float64 {
	out := make(map[[2]int]float64, len(frame))
	for _, p := range frame {
		out[[2]int{p.X, p.Y}] = p.B
	}
	return out
}

// SortedFrame returns a copy of frame ordered by (y, x, brightness) so
// frames can be compared independently of emission order.
func SortedFrame(frame core.Frame) core.Frame {
	out := core.CloneFrame(frame)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].B < out[j].B
	})
	return out
}

// RequireFrameEqual fails t unless got and want contain the same pixels
// (order-insensitive) with brightness within eps.
func RequireFrameEqual(t *testing.T, got, want core.Frame, eps float64) {
	t.Helper()

	g := SortedFrame(got)
	w := SortedFrame(want)
	if len(g) != len(w) {
		t.Fatalf("pixel count mismatch: got %d, want %d", len(g), len(w))
	}
	for i := range g {
		if g[i].X != w[i].X || g[i].Y != w[i].Y {
			t.Fatalf("pixel %d coordinate mismatch: got (%d,%d), want (%d,%d)",
				i, g[i].X, g[i].Y, w[i].X, w[i].Y)
		}
		if diff := math.Abs(g[i].B - w[i].B); diff > eps {
			t.Fatalf("pixel %d at (%d,%d): brightness got %v, want %v (diff %v > eps %v)",
				i, g[i].X, g[i].Y, g[i].B, w[i].B, diff, eps)
		}
	}
}

// RequireSequencesEqual fails t unless got and want are frame-for-frame
// equal sequences.
func RequireSequencesEqual(t *testing.T, got, want []core.Frame, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("frame count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		g := SortedFrame(got[i])
		w := SortedFrame(want[i])
		if len(g) != len(w) {
			t.Fatalf("frame %d: pixel count mismatch: got %d, want %d", i, len(g), len(w))
		}
		for j := range g {
			if g[j].X != w[j].X || g[j].Y != w[j].Y || math.Abs(g[j].B-w[j].B) > eps {
				t.Fatalf("frame %d pixel %d mismatch: got %+v, want %+v", i, j, g[j], w[j])
			}
		}
	}
}

// Collect steps effect n times and returns the resulting frames.
func Collect(effect interface{ Step() core.Frame }, n int) []core.Frame {
	out := make([]core.Frame, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, core.CloneFrame(effect.Step()))
	}
	return out
}
