package pipeline

import (
	"encoding/json"

	"github.com/matzehuels/cellstack/pkg/layout"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

// GenerateLayout lays out a sized pack in the requested mode.
func GenerateLayout(cfg sizing.Configuration, opts Options) (layout.Scene, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Scene{}, err
	}
	return layout.Compute(cfg.Series, cfg.Parallel, opts.LayoutMode())
}

// MarshalScene serializes a scene for caching.
func MarshalScene(sc layout.Scene) ([]byte, error) {
	return json.Marshal(sc)
}

// UnmarshalScene restores a cached scene.
func UnmarshalScene(data []byte) (layout.Scene, error) {
	var sc layout.Scene
	err := json.Unmarshal(data, &sc)
	return sc, err
}
