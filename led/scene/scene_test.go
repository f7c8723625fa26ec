package scene

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-led/internal/testutil"
	"github.com/cwbudde/algo-led/led/compose"
	"github.com/cwbudde/algo-led/led/core"
	"github.com/cwbudde/algo-led/led/effects"
)

func TestLoadBuildsLayeredEffect(t *testing.T) {
	raw := []byte(`{
		"layers": [
			{"type": "pulse_fade", "blend": "overwrite", "params": {"speed": 0.1}},
			{"type": "comet", "blend": "max", "params": {"x": 3, "y": 3, "dx": 1, "dy": 0.5}}
		]
	}`)

	layered, err := Load(raw, core.DefaultGeometry(), DefaultRegistry())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if layered.Layers() != 2 {
		t.Fatalf("Layers() = %d, want 2", layered.Layers())
	}

	frame := layered.Step()
	if len(frame) == 0 {
		t.Fatal("loaded scene produced an empty first frame")
	}
}

func TestLoadDefaultsToMaxBlend(t *testing.T) {
	geom := core.Geometry{Width: 6, Height: 4}
	raw := []byte(`{
		"layers": [
			{"type": "pulse_fade", "params": {"speed": 0.1}},
			{"type": "pulse_fade", "params": {"speed": 0.2}}
		]
	}`)

	layered, err := Load(raw, geom, DefaultRegistry())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Both pulses start at half brightness; max of the two is 0.5.
	frame := layered.Step()
	if len(frame) != geom.Cells() {
		t.Fatalf("frame has %d pixels, want %d", len(frame), geom.Cells())
	}
	testutil.RequireNearlyEqual(t, frame[0].B, 0.5, 1e-12)
}

func TestLoadIsDeterministicForSeededScenes(t *testing.T) {
	raw := []byte(`{
		"layers": [
			{"type": "sparkle_field", "blend": "overwrite", "params": {"seed": 42, "density": 10}},
			{"type": "plasma", "blend": "add", "params": {"seed": 7, "period": 32}}
		]
	}`)
	geom := core.DefaultGeometry()

	a, err := Load(raw, geom, DefaultRegistry())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	b, err := Load(raw, geom, DefaultRegistry())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	testutil.RequireSequencesEqual(t, testutil.Collect(a, 30), testutil.Collect(b, 30), 0)
}

func TestLoadErrors(t *testing.T) {
	geom := core.DefaultGeometry()
	registry := DefaultRegistry()

	cases := []struct {
		name string
		raw  string
	}{
		{"invalid json", `{"layers": [`},
		{"unknown type", `{"layers": [{"type": "lava_lamp"}]}`},
		{"unknown blend", `{"layers": [{"type": "pulse_fade", "blend": "screen"}]}`},
		{"bad params", `{"layers": [{"type": "comet", "params": {"tail": -3}}]}`},
		{"bad boundary", `{"layers": [{"type": "comet", "params": {"boundary": "stop"}}]}`},
		{"text without text", `{"layers": [{"type": "text"}]}`},
	}
	for _, tc := range cases {
		if _, err := Load([]byte(tc.raw), geom, registry); err == nil {
			t.Fatalf("%s: Load succeeded, want error", tc.name)
		}
	}

	if _, err := Load([]byte(`{"layers": []}`), geom, registry); !errors.Is(err, compose.ErrNoLayers) {
		t.Fatalf("empty layers: got %v, want ErrNoLayers", err)
	}
	if _, err := Load([]byte(`{"layers": [{"type": "missing"}]}`), geom, registry); !errors.Is(err, ErrUnknownEffect) {
		t.Fatalf("unknown type: got %v, want ErrUnknownEffect", err)
	}
	if _, err := Load([]byte(`{"layers": [{"type": "pulse_fade"}]}`), geom, nil); err == nil {
		t.Fatal("nil registry accepted")
	}
	if _, err := Load([]byte(`{"layers": [{"type": "pulse_fade"}]}`), core.Geometry{Width: 0, Height: 1}, registry); err == nil {
		t.Fatal("invalid geometry accepted")
	}
}

func TestLoadPacManChase(t *testing.T) {
	raw := []byte(`{
		"layers": [
			{"type": "pacman_scene", "blend": "overwrite", "params": {
				"pellet_y": 3, "pac_x": 0, "pac_y": 3, "pac_speed": 1,
				"ghost_x": -7, "ghost_y": 2
			}}
		]
	}`)
	geom := core.DefaultGeometry()

	layered, err := Load(raw, geom, DefaultRegistry())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if frame := layered.Step(); len(frame) == 0 {
		t.Fatal("chase scene produced an empty first frame")
	}

	// The pac-man crosses a 17-wide matrix at unit speed and clips at the
	// far edge, so the whole composite completes.
	for i := 0; i < 40 && !layered.Done(); i++ {
		layered.Step()
	}
	if !layered.Done() {
		t.Fatal("chase scene never completed")
	}
}

func TestLoadPacManLayeredVariant(t *testing.T) {
	raw := []byte(`{
		"layers": [
			{"type": "pellet_row", "blend": "overwrite", "params": {"y": 3}},
			{"type": "ghost", "blend": "max", "params": {"x": -6, "y": 1, "speed": 0.2}},
			{"type": "pacman", "blend": "overwrite", "params": {"x": 0, "y": 3, "dx": 0.25}}
		]
	}`)

	layered, err := Load(raw, core.DefaultGeometry(), DefaultRegistry())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if layered.Layers() != 3 {
		t.Fatalf("Layers() = %d, want 3", layered.Layers())
	}
	if frame := layered.Step(); len(frame) == 0 {
		t.Fatal("layered variant produced an empty first frame")
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	factory := func(geom core.Geometry, _ Params) (effects.Effect, error) {
		return effects.NewPulseFade(geom)
	}

	if err := r.Register("glow", factory); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if r.Lookup("glow") == nil {
		t.Fatal("registered factory not found")
	}
	if r.Lookup("other") != nil {
		t.Fatal("unregistered type resolved")
	}

	if err := r.Register("glow", factory); err == nil {
		t.Fatal("duplicate registration accepted")
	}
	if err := r.Register("", factory); err == nil {
		t.Fatal("empty type accepted")
	}
	if err := r.Register("x", nil); err == nil {
		t.Fatal("nil factory accepted")
	}
}

func TestDefaultRegistryCoversAllBuiltins(t *testing.T) {
	r := DefaultRegistry()
	want := []string{
		"sparkle", "sparkle_field", "comet", "wave_ripple", "expanding_box",
		"scanner_sweep", "zigzag_sweep", "pulse_fade", "spiral_sweep",
		"plasma", "text",
		"pacman", "pellet_row", "ghost", "pacman_scene",
	}
	for _, name := range want {
		if r.Lookup(name) == nil {
			t.Fatalf("built-in type %q not registered", name)
		}
	}
	if got := len(r.Types()); got != len(want) {
		t.Fatalf("registry has %d types, want %d", got, len(want))
	}
}

func TestParamsAccessors(t *testing.T) {
	p := parseParams(map[string]any{
		"speed": 1.5,
		"text":  "HI",
		"clip":  true,
		"skip":  []any{1, 2}, // unsupported types are ignored
	})

	if got := p.Float("speed", 0); got != 1.5 {
		t.Fatalf("Float = %v, want 1.5", got)
	}
	if got := p.Int("speed", 0); got != 1 {
		t.Fatalf("Int = %v, want 1 (truncated)", got)
	}
	if got := p.Float("missing", 2.5); got != 2.5 {
		t.Fatalf("Float default = %v, want 2.5", got)
	}
	if got := p.String("text", ""); got != "HI" {
		t.Fatalf("String = %q, want HI", got)
	}
	if !p.Bool("clip", false) {
		t.Fatal("Bool did not read true")
	}
	if !p.Has("speed") || p.Has("skip") {
		t.Fatal("Has misreported supplied parameters")
	}
}
