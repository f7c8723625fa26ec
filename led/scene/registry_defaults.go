package scene

import (
	"fmt"

	"github.com/cwbudde/algo-led/led/core"
	"github.com/cwbudde/algo-led/led/effects"
)

// DefaultRegistry returns a registry with every built-in effect type.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustRegister("sparkle", buildSparkle)
	r.MustRegister("sparkle_field", buildSparkleField)
	r.MustRegister("comet", buildComet)
	r.MustRegister("wave_ripple", buildWaveRipple)
	r.MustRegister("expanding_box", buildExpandingBox)
	r.MustRegister("scanner_sweep", buildScannerSweep)
	r.MustRegister("zigzag_sweep", buildZigZagSweep)
	r.MustRegister("pulse_fade", buildPulseFade)
	r.MustRegister("spiral_sweep", buildSpiralSweep)
	r.MustRegister("plasma", buildPlasma)
	r.MustRegister("text", buildText)
	r.MustRegister("pacman", buildPacMan)
	r.MustRegister("pellet_row", buildPelletRow)
	r.MustRegister("ghost", buildGhost)
	r.MustRegister("pacman_scene", buildPacManScene)

	return r
}

func buildSparkle(_ core.Geometry, params Params) (effects.Effect, error) {
	var opts []effects.SparkleOption
	if params.Has("speed") {
		opts = append(opts, effects.WithSparkleSpeed(params.Int("speed", 0)))
	}
	if params.Has("phase") {
		opts = append(opts, effects.WithSparklePhase(params.Int("phase", 0)))
	}
	if params.Has("seed") {
		opts = append(opts, effects.WithSparkleSeed(int64(params.Int("seed", 0))))
	}
	return effects.NewSparkle(params.Int("x", 0), params.Int("y", 0), opts...)
}

func buildSparkleField(geom core.Geometry, params Params) (effects.Effect, error) {
	var opts []effects.SparkleFieldOption
	if params.Has("density") {
		opts = append(opts, effects.WithFieldDensity(params.Int("density", 0)))
	}
	if params.Has("min_speed") || params.Has("max_speed") {
		minSpeed := params.Int("min_speed", 10)
		maxSpeed := params.Int("max_speed", 50)
		opts = append(opts, effects.WithFieldSpeedRange(minSpeed, maxSpeed))
	}
	if params.Has("seed") {
		opts = append(opts, effects.WithFieldSeed(int64(params.Int("seed", 0))))
	}
	return effects.NewSparkleField(geom, opts...)
}

func buildComet(geom core.Geometry, params Params) (effects.Effect, error) {
	var opts []effects.CometOption
	if params.Has("dx") || params.Has("dy") {
		opts = append(opts, effects.WithCometVelocity(
			params.Float("dx", 1), params.Float("dy", 0)))
	}
	if params.Has("tail") {
		opts = append(opts, effects.WithCometTailLength(params.Int("tail", 0)))
	}
	switch boundary := params.String("boundary", "bounce"); boundary {
	case "bounce":
		opts = append(opts, effects.WithCometBoundary(effects.CometBounce))
	case "wrap":
		opts = append(opts, effects.WithCometBoundary(effects.CometWrap))
	default:
		return nil, fmt.Errorf("unknown comet boundary: %q", boundary)
	}
	return effects.NewComet(geom, params.Float("x", 0), params.Float("y", 0), opts...)
}

func buildWaveRipple(geom core.Geometry, params Params) (effects.Effect, error) {
	var opts []effects.WaveRippleOption
	if params.Has("speed") {
		opts = append(opts, effects.WithRippleSpeed(params.Float("speed", 0)))
	}
	if params.Has("max_radius") {
		opts = append(opts, effects.WithRippleMaxRadius(params.Float("max_radius", 0)))
	}
	return effects.NewWaveRipple(geom,
		params.Float("cx", float64(geom.Width)/2),
		params.Float("cy", float64(geom.Height)/2),
		opts...)
}

func buildExpandingBox(geom core.Geometry, params Params) (effects.Effect, error) {
	var opts []effects.ExpandingBoxOption
	if params.Has("speed") {
		opts = append(opts, effects.WithBoxSpeed(params.Float("speed", 0)))
	}
	if params.Has("max_radius") {
		opts = append(opts, effects.WithBoxMaxRadius(params.Float("max_radius", 0)))
	}
	return effects.NewExpandingBox(geom,
		params.Int("cx", geom.Width/2),
		params.Int("cy", geom.Height/2),
		opts...)
}

func buildScannerSweep(geom core.Geometry, params Params) (effects.Effect, error) {
	var opts []effects.ScannerSweepOption
	if params.Bool("vertical", false) {
		opts = append(opts, effects.WithScannerVertical())
	}
	if params.Has("speed") {
		opts = append(opts, effects.WithScannerSpeed(params.Int("speed", 0)))
	}
	if params.Has("trail") {
		opts = append(opts, effects.WithScannerTrailLength(params.Int("trail", 0)))
	}
	if params.Bool("clip", false) {
		opts = append(opts, effects.WithScannerClip())
	}
	return effects.NewScannerSweep(geom, opts...)
}

func buildZigZagSweep(geom core.Geometry, params Params) (effects.Effect, error) {
	var opts []effects.ZigZagSweepOption
	if params.Has("speed") {
		opts = append(opts, effects.WithZigZagSpeed(params.Int("speed", 0)))
	}
	if params.Has("trail") {
		opts = append(opts, effects.WithZigZagTrailLength(params.Int("trail", 0)))
	}
	if params.Bool("clip", false) {
		opts = append(opts, effects.WithZigZagClip())
	}
	return effects.NewZigZagSweep(geom, opts...)
}

func buildPulseFade(geom core.Geometry, params Params) (effects.Effect, error) {
	var opts []effects.PulseFadeOption
	if params.Has("speed") {
		opts = append(opts, effects.WithPulseSpeed(params.Float("speed", 0)))
	}
	if params.Bool("single", false) {
		opts = append(opts, effects.WithPulseSingle())
	}
	return effects.NewPulseFade(geom, opts...)
}

func buildSpiralSweep(geom core.Geometry, params Params) (effects.Effect, error) {
	var opts []effects.SpiralSweepOption
	if params.Has("speed") {
		opts = append(opts, effects.WithSpiralSpeed(params.Float("speed", 0)))
	}
	if params.Bool("loop", false) {
		opts = append(opts, effects.WithSpiralLoop())
	}
	return effects.NewSpiralSweep(geom,
		params.Float("cx", float64(geom.Width)/2),
		params.Float("cy", float64(geom.Height)/2),
		opts...)
}

func buildPlasma(geom core.Geometry, params Params) (effects.Effect, error) {
	var opts []effects.PlasmaOption
	if params.Has("period") {
		opts = append(opts, effects.WithPlasmaPeriod(params.Int("period", 0)))
	}
	if params.Has("components") {
		opts = append(opts, effects.WithPlasmaComponents(params.Int("components", 0)))
	}
	if params.Has("scale") {
		opts = append(opts, effects.WithPlasmaScale(params.Float("scale", 0)))
	}
	if params.Has("seed") {
		opts = append(opts, effects.WithPlasmaSeed(int64(params.Int("seed", 0))))
	}
	return effects.NewPlasma(geom, opts...)
}

func buildText(geom core.Geometry, params Params) (effects.Effect, error) {
	text := params.String("text", "")
	if text == "" {
		return nil, fmt.Errorf("text layer requires a non-empty %q parameter", "text")
	}

	var opts []effects.TextScrollerOption
	if params.Has("speed") {
		opts = append(opts, effects.WithTextSpeed(params.Float("speed", 0)))
	}
	if params.Has("spacing") {
		opts = append(opts, effects.WithTextSpacing(params.Int("spacing", 0)))
	}
	if params.Has("brightness") {
		opts = append(opts, effects.WithTextBrightness(params.Float("brightness", 0)))
	}
	if params.Has("y") {
		opts = append(opts, effects.WithTextY(params.Int("y", 0)))
	}
	if params.Has("x_start") {
		opts = append(opts, effects.WithTextStart(params.Int("x_start", 0)))
	}
	if params.Bool("loop", false) {
		opts = append(opts, effects.WithTextLoop())
	}
	return effects.NewTextScroller(geom, text, opts...)
}

func pacManOptions(params Params) []effects.PacManOption {
	var opts []effects.PacManOption
	if params.Has("dx") || params.Has("dy") {
		opts = append(opts, effects.WithPacManVelocity(
			params.Float("dx", 0.25), params.Float("dy", 0)))
	}
	if params.Has("radius") {
		opts = append(opts, effects.WithPacManRadius(params.Float("radius", 0)))
	}
	if params.Has("chomp_speed") {
		opts = append(opts, effects.WithPacManChompSpeed(params.Float("chomp_speed", 0)))
	}
	if !params.Bool("wrap", true) {
		opts = append(opts, effects.WithPacManClip())
	}
	return opts
}

func buildPacMan(geom core.Geometry, params Params) (effects.Effect, error) {
	return effects.NewPacMan(geom,
		params.Float("x", 0),
		params.Float("y", float64(geom.Height)/2),
		pacManOptions(params)...)
}

func buildPelletRow(geom core.Geometry, params Params) (effects.Effect, error) {
	var opts []effects.PelletRowOption
	if params.Has("spacing") {
		opts = append(opts, effects.WithPelletSpacing(params.Int("spacing", 0)))
	}
	if params.Has("brightness") {
		opts = append(opts, effects.WithPelletBrightness(params.Float("brightness", 0)))
	}
	return effects.NewPelletRow(geom, params.Int("y", geom.Height/2), opts...)
}

func buildGhost(geom core.Geometry, params Params) (effects.Effect, error) {
	var opts []effects.GhostOption
	if params.Has("speed") {
		opts = append(opts, effects.WithGhostSpeed(params.Float("speed", 0)))
	}
	return effects.NewGhost(geom,
		params.Float("x", 0),
		params.Float("y", float64(geom.Height)/2),
		opts...)
}

// buildPacManScene assembles the chase scene from flat parameters; the
// pac-man is always the clipped variant so the scene completes.
func buildPacManScene(geom core.Geometry, params Params) (effects.Effect, error) {
	var pelletOpts []effects.PelletRowOption
	if params.Has("spacing") {
		pelletOpts = append(pelletOpts, effects.WithPelletSpacing(params.Int("spacing", 0)))
	}
	pellets, err := effects.NewPelletRow(geom, params.Int("pellet_y", 3), pelletOpts...)
	if err != nil {
		return nil, err
	}

	pacOpts := []effects.PacManOption{effects.WithPacManClip()}
	if params.Has("pac_speed") {
		pacOpts = append(pacOpts, effects.WithPacManVelocity(params.Float("pac_speed", 0), 0))
	}
	if params.Has("radius") {
		pacOpts = append(pacOpts, effects.WithPacManRadius(params.Float("radius", 0)))
	}
	pacman, err := effects.NewPacMan(geom,
		params.Float("pac_x", 0),
		params.Float("pac_y", 3),
		pacOpts...)
	if err != nil {
		return nil, err
	}

	var ghostOpts []effects.GhostOption
	if params.Has("ghost_speed") {
		ghostOpts = append(ghostOpts, effects.WithGhostSpeed(params.Float("ghost_speed", 0)))
	}
	ghost, err := effects.NewGhost(geom,
		params.Float("ghost_x", -7),
		params.Float("ghost_y", 2),
		ghostOpts...)
	if err != nil {
		return nil, err
	}

	return effects.NewPacManScene(pellets, pacman, ghost)
}
