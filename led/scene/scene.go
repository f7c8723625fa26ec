package scene

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-led/led/compose"
	"github.com/cwbudde/algo-led/led/core"
)

// sceneLayer is one JSON layer entry. Layers blend in declaration order;
// the first layer is the base.
type sceneLayer struct {
	Type   string         `json:"type"`
	Blend  string         `json:"blend"`
	Params map[string]any `json:"params"`
}

// sceneFile is the root JSON structure of a scene definition.
type sceneFile struct {
	Layers []sceneLayer `json:"layers"`
}

// Load parses a JSON scene definition and compiles it into a layered
// effect using the given registry. All configuration errors (unknown
// types, bad blend modes, invalid parameters) surface here, never during
// stepping.
func Load(raw []byte, geom core.Geometry, registry *Registry) (*compose.Layered, error) {
	if registry == nil {
		return nil, errors.New("scene registry must not be nil")
	}
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	var file sceneFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("invalid scene json: %w", err)
	}
	if len(file.Layers) == 0 {
		return nil, compose.ErrNoLayers
	}

	layers := make([]compose.Layer, 0, len(file.Layers))
	for i, entry := range file.Layers {
		factory := registry.Lookup(entry.Type)
		if factory == nil {
			return nil, fmt.Errorf("scene layer %d: %w: %s", i, ErrUnknownEffect, entry.Type)
		}

		mode := compose.BlendMax
		if entry.Blend != "" {
			var err error
			mode, err = compose.ParseBlendMode(entry.Blend)
			if err != nil {
				return nil, fmt.Errorf("scene layer %d: %w", i, err)
			}
		}

		effect, err := factory(geom, parseParams(entry.Params))
		if err != nil {
			return nil, fmt.Errorf("scene layer %d (%s): %w", i, entry.Type, err)
		}

		layers = append(layers, compose.Layer{Effect: effect, Mode: mode})
	}

	return compose.NewLayered(geom, layers...)
}
