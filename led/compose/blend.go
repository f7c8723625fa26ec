// Package compose merges the output of multiple effects into one frame.
// A Layered effect steps an ordered stack of child effects and combines
// their sparse frames per coordinate through pure blend functions.
package compose

import "fmt"

// BlendMode selects how a foreground brightness is merged onto the
// background at one coordinate. Modes carry no state.
type BlendMode int

const (
	// BlendOverwrite replaces the background with the foreground; used for
	// base layers painted first.
	BlendOverwrite BlendMode = iota
	// BlendMax keeps the brighter of the two; crisp overlay with no
	// darkening.
	BlendMax
	// BlendAdd sums the two; additive glow that may exceed 1 pre-clamp.
	BlendAdd
	// BlendAlphaSoft mixes 75% background, 25% foreground.
	BlendAlphaSoft
	// BlendAlphaHard mixes 40% background, 60% foreground.
	BlendAlphaHard
)

const (
	alphaSoftBackground = 0.75
	alphaHardBackground = 0.40
)

// String returns the mode's scene-file name.
func (m BlendMode) String() string {
	switch m {
	case BlendOverwrite:
		return "overwrite"
	case BlendMax:
		return "max"
	case BlendAdd:
		return "add"
	case BlendAlphaSoft:
		return "alpha_soft"
	case BlendAlphaHard:
		return "alpha_hard"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// Valid reports whether m is a known mode.
func (m BlendMode) Valid() bool {
	return m >= BlendOverwrite && m <= BlendAlphaHard
}

// ParseBlendMode maps a scene-file name to its mode.
func ParseBlendMode(name string) (BlendMode, error) {
	switch name {
	case "overwrite":
		return BlendOverwrite, nil
	case "max":
		return BlendMax, nil
	case "add":
		return BlendAdd, nil
	case "alpha_soft":
		return BlendAlphaSoft, nil
	case "alpha_hard":
		return BlendAlphaHard, nil
	default:
		return 0, fmt.Errorf("unknown blend mode: %q", name)
	}
}

// Merge combines a foreground brightness onto a background brightness.
// It is a pure function; unknown modes behave like BlendOverwrite.
func Merge(background, foreground float64, mode BlendMode) float64 {
	switch mode {
	case BlendMax:
		if background > foreground {
			return background
		}
		return foreground
	case BlendAdd:
		return background + foreground
	case BlendAlphaSoft:
		return alphaSoftBackground*background + (1-alphaSoftBackground)*foreground
	case BlendAlphaHard:
		return alphaHardBackground*background + (1-alphaHardBackground)*foreground
	default:
		return foreground
	}
}
