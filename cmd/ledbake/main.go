// Command ledbake records effect animations to compressed blobs for later
// playback on an LED matrix.
//
// Usage:
//
//	ledbake [flags] demo-name
//	ledbake [flags] -scene scene.json
//
// Examples:
//
//	ledbake -list
//	ledbake -frames 150 -o comet.anim.gz comet
//	ledbake -width 17 -height 7 -fps 30 -scene ripples.json -o ripples.anim.gz
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/cwbudde/algo-led/led/anim"
	"github.com/cwbudde/algo-led/led/core"
	"github.com/cwbudde/algo-led/led/effects"
	"github.com/cwbudde/algo-led/led/scene"
)

// Built-in demo scenes, expressed in the same JSON form as -scene files.
var demos = map[string]string{
	"sparkle_field": `{"layers": [{"type": "sparkle_field", "blend": "max"}]}`,
	"comet": `{"layers": [
		{"type": "comet", "blend": "max", "params": {"x": 0, "y": 0, "dx": 1, "dy": 1, "tail": 6}}
	]}`,
	"wave_ripple": `{"layers": [{"type": "wave_ripple", "blend": "max", "params": {"speed": 0.7}}]}`,
	"scanner":     `{"layers": [{"type": "scanner_sweep", "blend": "max", "params": {"trail": 6}}]}`,
	"zigzag":      `{"layers": [{"type": "zigzag_sweep", "blend": "max"}]}`,
	"pulse":       `{"layers": [{"type": "pulse_fade", "blend": "overwrite"}]}`,
	"spiral":      `{"layers": [{"type": "spiral_sweep", "blend": "max", "params": {"speed": 1, "loop": true}}]}`,
	"plasma":      `{"layers": [{"type": "plasma", "blend": "overwrite"}]}`,
	"pacman": `{"layers": [
		{"type": "pacman_scene", "blend": "overwrite", "params": {
			"pellet_y": 3, "pac_x": 0, "pac_y": 3, "pac_speed": 0.25,
			"ghost_x": -7, "ghost_y": 2
		}}
	]}`,
	"pacman_layers": `{"layers": [
		{"type": "pellet_row", "blend": "overwrite", "params": {"y": 3}},
		{"type": "ghost", "blend": "max", "params": {"x": -6, "y": 1, "speed": 0.2}},
		{"type": "pacman", "blend": "overwrite", "params": {"x": 0, "y": 3, "dx": 0.25}}
	]}`,
	"ripple_stack": `{"layers": [
		{"type": "wave_ripple", "blend": "overwrite", "params": {"cx": 8, "cy": 3, "speed": 0.7}},
		{"type": "wave_ripple", "blend": "max", "params": {"cx": 3, "cy": 6, "speed": 0.7}},
		{"type": "wave_ripple", "blend": "alpha_soft", "params": {"cx": 5, "cy": 5, "speed": 0.7}},
		{"type": "comet", "blend": "alpha_hard", "params": {"x": 0, "y": 0, "dx": 1, "dy": 2, "tail": 4}}
	]}`,
	"marquee": `{"layers": [
		{"type": "sparkle_field", "blend": "overwrite", "params": {"density": 12}},
		{"type": "text", "blend": "max", "params": {"text": "HELLO", "speed": 0.5}}
	]}`,
}

func main() {
	var (
		listFlag  = flag.Bool("list", false, "list built-in demo names and exit")
		sceneFlag = flag.String("scene", "", "path to a JSON scene definition")
		outFlag   = flag.String("o", "out.anim.gz", "output animation file")
		frames    = flag.Int("frames", 150, "number of frames to record")
		fps       = flag.Int("fps", 25, "declared playback frame rate")
		width     = flag.Int("width", core.DefaultWidth, "matrix width")
		height    = flag.Int("height", core.DefaultHeight, "matrix height")
		untilDone = flag.Bool("until-done", false, "stop at effect completion (frames becomes the cap)")
	)
	flag.Parse()

	if *listFlag {
		names := make([]string, 0, len(demos))
		for name := range demos {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	raw, name, err := sceneSource(*sceneFlag, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "ledbake:", err)
		os.Exit(2)
	}

	geom := core.Geometry{Width: *width, Height: *height}
	root, err := scene.Load(raw, geom, scene.DefaultRegistry())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ledbake: %s: %v\n", name, err)
		os.Exit(1)
	}

	animation, err := record(geom, root, *fps, *frames, *untilDone)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ledbake:", err)
		os.Exit(1)
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ledbake:", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := animation.Encode(f); err != nil {
		fmt.Fprintln(os.Stderr, "ledbake:", err)
		os.Exit(1)
	}

	fmt.Printf("saved %s (%d frames, %d fps, %dx%d)\n",
		*outFlag, len(animation.Frames), animation.FPS, animation.Width, animation.Height)
}

func sceneSource(scenePath string, args []string) ([]byte, string, error) {
	if scenePath != "" {
		raw, err := os.ReadFile(scenePath)
		if err != nil {
			return nil, "", err
		}
		return raw, scenePath, nil
	}

	if len(args) != 1 {
		return nil, "", fmt.Errorf("expected exactly one demo name or -scene file (try -list)")
	}

	raw, ok := demos[args[0]]
	if !ok {
		return nil, "", fmt.Errorf("unknown demo %q (try -list)", args[0])
	}
	return []byte(raw), args[0], nil
}

func record(geom core.Geometry, root effects.Effect, fps, frames int, untilDone bool) (*anim.Animation, error) {
	rec, err := anim.NewRecorder(geom, root, anim.WithRecorderFPS(fps))
	if err != nil {
		return nil, err
	}
	if untilDone {
		return rec.RecordUntilDone(frames)
	}
	return rec.Record(frames)
}
