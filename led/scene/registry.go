// Package scene builds layered effects from declarative JSON scene
// definitions. Effect types are looked up in a registry of factories, so
// applications can add their own generators next to the built-in set.
package scene

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-led/led/core"
	"github.com/cwbudde/algo-led/led/effects"
)

// ErrUnknownEffect is returned when a scene layer references an
// unregistered effect type.
var ErrUnknownEffect = errors.New("unknown effect type")

var errDuplicateEffect = errors.New("duplicate effect type")

// Factory builds one effect instance for a scene layer.
type Factory func(geom core.Geometry, params Params) (effects.Effect, error)

// Registry maps effect type names to their factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for the given effect type.
func (r *Registry) Register(effectType string, factory Factory) error {
	if effectType == "" {
		return errors.New("empty effect type")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[effectType]; exists {
		return fmt.Errorf("%w: %s", errDuplicateEffect, effectType)
	}

	r.factories[effectType] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(effectType string, factory Factory) {
	err := r.Register(effectType, factory)
	if err != nil {
		panic("scene registry: " + err.Error())
	}
}

// Lookup returns the factory for the given effect type, or nil.
func (r *Registry) Lookup(effectType string) Factory {
	return r.factories[effectType]
}

// Types returns the registered effect type names in unspecified order.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.factories))
	for name := range r.factories {
		out = append(out, name)
	}
	return out
}
