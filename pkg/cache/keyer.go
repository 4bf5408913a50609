package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer derives cache keys from stage inputs.
type Keyer interface {
	// SceneKey identifies a computed layout.
	SceneKey(series, parallel int, mode string) string
	// ArtifactKey identifies a rendered pack diagram.
	ArtifactKey(sceneKey string, opts ArtifactKeyOpts) string
	// SchematicKey identifies a rendered schematic.
	SchematicKey(opts SchematicKeyOpts) string
}

// ArtifactKeyOpts holds everything besides the scene that changes the bytes
// of a pack diagram.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Style    string  `json:"style"`
	Static   bool    `json:"static,omitempty"`
	Notice   bool    `json:"notice,omitempty"`
	Title    string  `json:"title,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
	CellID   string  `json:"cell,omitempty"` // JSON exports embed the configuration
	Voltage  float64 `json:"voltage,omitempty"`
	Capacity float64 `json:"capacity,omitempty"`
}

// SchematicKeyOpts holds the inputs of a schematic rendering.
type SchematicKeyOpts struct {
	Format      string  `json:"format"`
	Series      int     `json:"series"`
	Parallel    int     `json:"parallel"`
	Capacity    float64 `json:"capacity"`
	CellID      string  `json:"cell"`
	CellVoltage float64 `json:"cell_voltage"`
	Detailed    bool    `json:"detailed,omitempty"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) SceneKey(series, parallel int, mode string) string {
	return fmt.Sprintf("scene:%s:%dx%d", mode, series, parallel)
}

func (DefaultKeyer) ArtifactKey(sceneKey string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneKey, opts)
}

func (DefaultKeyer) SchematicKey(opts SchematicKeyOpts) string {
	return hashKey("schematic", opts)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(hash[:])
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
