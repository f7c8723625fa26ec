package effects

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-led/led/core"
	"github.com/cwbudde/algo-led/led/font"
)

const (
	defaultTextSpeed      = 1.0
	defaultTextSpacing    = 1
	defaultTextBrightness = 1.0
)

// TextScrollerOption mutates text scroller construction parameters.
type TextScrollerOption func(*textConfig) error

type textConfig struct {
	font       *font.Font
	speed      float64
	spacing    int
	brightness float64
	yPos       int
	xStart     int
	hasXStart  bool
	loop       bool
}

// WithTextFont sets the bitmap font; the default is the built-in 5x7 set.
func WithTextFont(f *font.Font) TextScrollerOption {
	return func(cfg *textConfig) error {
		if f == nil {
			return fmt.Errorf("text font must not be nil")
		}
		cfg.font = f
		return nil
	}
}

// WithTextSpeed sets scroll speed in pixels per frame. Zero renders the
// text statically.
func WithTextSpeed(speed float64) TextScrollerOption {
	return func(cfg *textConfig) error {
		if speed < 0 || math.IsNaN(speed) || math.IsInf(speed, 0) {
			return fmt.Errorf("text speed must be >= 0 and finite: %f", speed)
		}
		cfg.speed = speed
		return nil
	}
}

// WithTextSpacing sets the gap in columns between glyphs.
func WithTextSpacing(spacing int) TextScrollerOption {
	return func(cfg *textConfig) error {
		if spacing < 0 {
			return fmt.Errorf("text spacing must be >= 0: %d", spacing)
		}
		cfg.spacing = spacing
		return nil
	}
}

// WithTextBrightness sets the emitted brightness.
func WithTextBrightness(brightness float64) TextScrollerOption {
	return func(cfg *textConfig) error {
		if brightness <= 0 || math.IsNaN(brightness) || math.IsInf(brightness, 0) {
			return fmt.Errorf("text brightness must be > 0 and finite: %f", brightness)
		}
		cfg.brightness = brightness
		return nil
	}
}

// WithTextY sets the vertical position of the glyph top row.
func WithTextY(y int) TextScrollerOption {
	return func(cfg *textConfig) error {
		cfg.yPos = y
		return nil
	}
}

// WithTextStart sets the starting x position; the default is the matrix
// width (fully off-screen right).
func WithTextStart(x int) TextScrollerOption {
	return func(cfg *textConfig) error {
		cfg.xStart = x
		cfg.hasXStart = true
		return nil
	}
}

// WithTextLoop restarts the scroll when the text has left the matrix.
func WithTextLoop() TextScrollerOption {
	return func(cfg *textConfig) error {
		cfg.loop = true
		return nil
	}
}

// TextScroller scrolls pre-rendered text leftwards across the matrix.
// The string is rasterized once at construction from the font collaborator;
// Step only applies the scroll transform and viewport clip. A non-looping
// scroller completes once the rightmost glyph column has passed x = -1.
type TextScroller struct {
	geom       core.Geometry
	text       string
	speed      float64
	yPos       int
	xStart     int
	loop       bool
	textPixels core.Frame
	textWidth  int

	scrollOffset float64
	done         bool
}

// NewTextScroller creates a scroller for text on the given geometry.
func NewTextScroller(geom core.Geometry, text string, opts ...TextScrollerOption) (*TextScroller, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	cfg := textConfig{
		font:       font.Font5x7(),
		speed:      defaultTextSpeed,
		spacing:    defaultTextSpacing,
		brightness: defaultTextBrightness,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if !cfg.hasXStart {
		cfg.xStart = geom.Width
	}

	pixels, width := cfg.font.RenderString(text, cfg.spacing, cfg.brightness)

	t := &TextScroller{
		geom:       geom,
		text:       text,
		speed:      cfg.speed,
		yPos:       cfg.yPos,
		xStart:     cfg.xStart,
		loop:       cfg.loop,
		textPixels: pixels,
		textWidth:  width,
	}
	t.Reset()
	return t, nil
}

// TextWidth returns the rendered width of the text in pixels.
func (t *TextScroller) TextWidth() int {
	return t.textWidth
}

// Reset rewinds the scroll position.
func (t *TextScroller) Reset() {
	t.scrollOffset = 0
	t.done = false
}

// Step returns the currently visible glyph pixels and advances the scroll.
func (t *TextScroller) Step() core.Frame {
	if t.done {
		return nil
	}

	var frame core.Frame
	for _, p := range t.textPixels {
		x := int(float64(t.xStart+p.X) - t.scrollOffset)
		y := t.yPos + p.Y
		if t.geom.Contains(x, y) {
			frame = append(frame, core.Pixel{X: x, Y: y, B: p.B})
		}
	}

	t.scrollOffset += t.speed

	if t.speed > 0 && t.scrollOffset > float64(t.xStart+t.textWidth) {
		if t.loop {
			t.scrollOffset = 0
		} else {
			t.done = true
		}
	}

	return frame
}

// Done reports true once non-looping text has scrolled fully off-screen.
func (t *TextScroller) Done() bool {
	return t.done
}

// Looping reports whether the scroll restarts.
func (t *TextScroller) Looping() bool {
	return t.loop
}
