package core

// Pixel is one sparse brightness sample at a matrix-logical coordinate.
// Brightness is unclamped at emission time; clamping to a device range is a
// renderer concern.
type Pixel struct {
	X int
	Y int
	B float64
}

// Frame is the set of pixels an effect produces for one step.
// An empty (or nil) frame is valid and means nothing is lit.
type Frame []Pixel

// Dominant collapses duplicate coordinates in frame to their maximum
// brightness, preserving first-occurrence order. Frames without duplicates
// are returned unchanged.
func Dominant(frame Frame) Frame {
	seen := make(map[[2]int]int, len(frame))
	out := frame[:0:0]
	clean := true

	for _, p := range frame {
		key := [2]int{p.X, p.Y}
		if idx, ok := seen[key]; ok {
			clean = false
			if p.B > out[idx].B {
				out[idx].B = p.B
			}
			continue
		}
		seen[key] = len(out)
		out = append(out, p)
	}

	if clean {
		return frame
	}
	return out
}

// CloneFrame returns a deep copy of frame. A nil frame stays nil.
func CloneFrame(frame Frame) Frame {
	if frame == nil {
		return nil
	}
	out := make(Frame, len(frame))
	copy(out, frame)
	return out
}
