package compose

import (
	"testing"

	"github.com/cwbudde/algo-led/internal/testutil"
)

func TestMergeFormulas(t *testing.T) {
	samples := []float64{0, 0.1, 0.25, 0.5, 0.75, 1, 1.5, 2}

	for _, bg := range samples {
		for _, fg := range samples {
			if got := Merge(bg, fg, BlendOverwrite); got != fg {
				t.Fatalf("overwrite(%v,%v) = %v, want %v", bg, fg, got, fg)
			}

			wantMax := bg
			if fg > bg {
				wantMax = fg
			}
			if got := Merge(bg, fg, BlendMax); got != wantMax {
				t.Fatalf("max(%v,%v) = %v, want %v", bg, fg, got, wantMax)
			}

			testutil.RequireNearlyEqual(t, Merge(bg, fg, BlendAdd), bg+fg, 1e-12)
			testutil.RequireNearlyEqual(t, Merge(bg, fg, BlendAlphaSoft), 0.75*bg+0.25*fg, 1e-12)
			testutil.RequireNearlyEqual(t, Merge(bg, fg, BlendAlphaHard), 0.40*bg+0.60*fg, 1e-12)
		}
	}
}

func TestMergeAddIsNotClamped(t *testing.T) {
	if got := Merge(0.8, 0.8, BlendAdd); got != 1.6 {
		t.Fatalf("add(0.8,0.8) = %v, want 1.6 (no clamping in the blend stage)", got)
	}
}

func TestMergeUnknownModeFallsBackToOverwrite(t *testing.T) {
	if got := Merge(0.3, 0.9, BlendMode(99)); got != 0.9 {
		t.Fatalf("unknown mode returned %v, want foreground 0.9", got)
	}
}

func TestParseBlendMode(t *testing.T) {
	names := map[string]BlendMode{
		"overwrite":  BlendOverwrite,
		"max":        BlendMax,
		"add":        BlendAdd,
		"alpha_soft": BlendAlphaSoft,
		"alpha_hard": BlendAlphaHard,
	}
	for name, want := range names {
		got, err := ParseBlendMode(name)
		if err != nil {
			t.Fatalf("ParseBlendMode(%q) failed: %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseBlendMode(%q) = %v, want %v", name, got, want)
		}
		if got.String() != name {
			t.Fatalf("round-trip name mismatch: %v.String() = %q", got, got.String())
		}
	}

	if _, err := ParseBlendMode("screen"); err == nil {
		t.Fatal("unknown blend name accepted")
	}
}

func TestBlendModeValid(t *testing.T) {
	for m := BlendOverwrite; m <= BlendAlphaHard; m++ {
		if !m.Valid() {
			t.Fatalf("mode %v should be valid", m)
		}
	}
	if BlendMode(-1).Valid() || BlendMode(5).Valid() {
		t.Fatal("out-of-range mode reported valid")
	}
}
