// Package font provides fixed-height column-major bitmap fonts used by
// text-producing effects. Glyph data is read-only lookup material; effects
// pre-render a string once and apply scroll transforms afterwards.
package font

import (
	"fmt"

	"github.com/cwbudde/algo-led/led/core"
)

// Font maps runes to column-major bitmap glyphs of a fixed pixel height.
// Each glyph is a slice of column bitmasks; bit n of a column lights row n,
// counting from the top. Glyph widths may vary.
type Font struct {
	height int
	glyphs map[rune][]uint8
}

// New creates a font from glyph data. The height must fit in a uint8
// column (1..8) and every glyph needs at least one column.
func New(height int, glyphs map[rune][]uint8) (*Font, error) {
	if height <= 0 || height > 8 {
		return nil, fmt.Errorf("font height must be in [1, 8]: %d", height)
	}
	for r, cols := range glyphs {
		if len(cols) == 0 {
			return nil, fmt.Errorf("font glyph %q has no columns", r)
		}
	}
	return &Font{height: height, glyphs: glyphs}, nil
}

// Height returns the glyph cell height in pixels.
func (f *Font) Height() int {
	return f.height
}

// Glyph returns the column bitmasks for r. Lowercase letters fall back to
// their uppercase glyph when no lowercase form exists.
func (f *Font) Glyph(r rune) ([]uint8, bool) {
	if cols, ok := f.glyphs[r]; ok {
		return cols, true
	}
	if r >= 'a' && r <= 'z' {
		cols, ok := f.glyphs[r-'a'+'A']
		return cols, ok
	}
	return nil, false
}

// RenderString rasterizes text at the origin and returns the lit pixels
// plus the total width in pixels. Runes without a glyph are skipped.
// spacing is the gap in columns between adjacent glyphs.
func (f *Font) RenderString(text string, spacing int, brightness float64) (core.Frame, int) {
	if spacing < 0 {
		spacing = 0
	}

	var pixels core.Frame
	xOffset := 0

	for _, r := range text {
		cols, ok := f.Glyph(r)
		if !ok {
			continue
		}

		for c, mask := range cols {
			for row := 0; row < f.height; row++ {
				if mask&(1<<uint(row)) != 0 {
					pixels = append(pixels, core.Pixel{
						X: xOffset + c,
						Y: row,
						B: brightness,
					})
				}
			}
		}

		xOffset += len(cols) + spacing
	}

	width := 0
	if xOffset > 0 {
		width = xOffset - spacing
	}
	return pixels, width
}
