package anim_test

import (
	"bytes"
	"fmt"

	"github.com/cwbudde/algo-led/led/anim"
	"github.com/cwbudde/algo-led/led/core"
	"github.com/cwbudde/algo-led/led/effects"
)

func ExampleRecorder() {
	geom := core.Geometry{Width: 4, Height: 2}
	sweep, _ := effects.NewScannerSweep(geom,
		effects.WithScannerClip(),
		effects.WithScannerTrailLength(1),
	)

	rec, _ := anim.NewRecorder(geom, sweep, anim.WithRecorderFPS(20))
	recorded, _ := rec.RecordUntilDone(100)

	var blob bytes.Buffer
	_ = recorded.Encode(&blob)

	decoded, _ := anim.DecodeAnimation(&blob)
	fmt.Printf("%dx%d fps=%d frames=%d\n",
		decoded.Width, decoded.Height, decoded.FPS, len(decoded.Frames))

	// Output:
	// 4x2 fps=20 frames=4
}
