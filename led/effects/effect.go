// Package effects provides stateful frame generators for LED matrix
// animation.
//
// Every effect implements the Effect capability:
//   - Step advances exactly one logical frame and returns the sparse pixels
//     that are lit. It is a pure function of internal state: no randomness,
//     no clock reads, no blocking.
//   - Reset reinitializes all mutable state. Any random parameter is drawn
//     here from a seeded generator, so a given reset is fully reproducible.
//   - Done reports a terminal state. Continuous and looping effects always
//     report false; finite effects eventually report true and return empty
//     frames from then on.
//
// Effects are single-threaded and own their state exclusively; composition
// happens in the compose package.
package effects

import "github.com/cwbudde/algo-led/led/core"

// Effect is the capability contract shared by all frame generators.
type Effect interface {
	// Step advances one logical frame and returns the lit pixels.
	Step() core.Frame
	// Reset reinitializes all internal state; idempotent.
	Reset()
	// Done reports whether the effect has reached a terminal state.
	Done() bool
}

// Looper is implemented by effects that restart instead of terminating.
// Composites exclude looping children from their completion checks.
type Looper interface {
	Looping() bool
}

// IsLooping reports whether e identifies itself as looping.
func IsLooping(e Effect) bool {
	l, ok := e.(Looper)
	return ok && l.Looping()
}
