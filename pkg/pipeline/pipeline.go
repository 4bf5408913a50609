// Package pipeline provides the sizing → layout → render pipeline for cellstack.
//
// The CLI and the HTTP server both go through this package, so a pack
// requested from either entry point is sized, laid out and rendered the same
// way and shares one cache.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Size: pick a cell profile and compute the SxP configuration
//  2. Layout: position cells, bus bars, connectors and terminals
//  3. Render: generate output in the requested formats
//
// Sizing is pure arithmetic and never cached. Layout and render results are
// cached through the Runner's [cache.Cache].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Voltage:  48,
//	    Capacity: 15,
//	    Cell:     "balanced",
//	    Formats:  []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cellstack/pkg/cache"
	"github.com/matzehuels/cellstack/pkg/cells"
	"github.com/matzehuels/cellstack/pkg/errors"
	"github.com/matzehuels/cellstack/pkg/layout"
	"github.com/matzehuels/cellstack/pkg/render/styles"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

// Visualization types.
const (
	VizTypePack      = "pack"
	VizTypeSchematic = "schematic"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Defaults shared by the CLI and the server.
const (
	DefaultVizType = VizTypePack
	DefaultScale   = 2.0
)

// ValidFormats is the set of supported pack diagram formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidSchematicFormats is the set of supported schematic formats.
var ValidSchematicFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
	FormatDOT: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypePack:      true,
	VizTypeSchematic: true,
}

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Sizing options
	Voltage  float64 `json:"voltage"`
	Capacity float64 `json:"capacity"`
	Cell     string  `json:"cell,omitempty"`
	Clamp    bool    `json:"clamp,omitempty"` // clamp V/Ah into the designer's slider ranges

	// Layout options
	Mode string `json:"mode,omitempty"`

	// Render options
	VizType  string   `json:"viz_type,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Style    string   `json:"style,omitempty"`
	Static   bool     `json:"static,omitempty"`
	Notice   bool     `json:"notice,omitempty"`
	Title    string   `json:"title,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // schematic labels
	Refresh  bool     `json:"refresh,omitempty"`  // bypass cache reads

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"` // stage logs; defaults to the runner's logger

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Configuration is the sized pack.
	Configuration sizing.Configuration

	// Scene is the laid-out pack. Empty for schematic runs.
	Scene layout.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TotalCells int
	DrawnCells int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the scene came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a pack diagram format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, joinKeys(ValidFormats))
	}
	return nil
}

// ValidateFormats checks that all formats are valid for the visualization type.
func ValidateFormats(vizType string, formats []string) error {
	valid := ValidFormats
	if vizType == VizTypeSchematic {
		valid = ValidSchematicFormats
	}
	for _, f := range formats {
		if !valid[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid %s format: %q (must be one of: %s)", vizType, f, joinKeys(valid))
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if style == "" {
		return errors.New(errors.ErrCodeInvalidStyle, "style is required")
	}
	_, err := styles.Lookup(style)
	return err
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: pack, schematic)", vizType)
	}
	return nil
}

func joinKeys(m map[string]bool) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return strings.Join(keys, ", ")
}

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForSizing(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForSizing checks the sizing inputs.
func (o *Options) ValidateForSizing() error {
	if err := errors.ValidatePositive("voltage", o.Voltage); err != nil {
		return err
	}
	if err := errors.ValidatePositive("capacity", o.Capacity); err != nil {
		return err
	}
	if o.Cell == "" {
		o.Cell = cells.DefaultID
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Mode == "" {
		o.Mode = string(layout.ModeAuto)
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	_, err := layout.ParseMode(o.Mode)
	return err
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = styles.DefaultName
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.VizType, o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	return ValidateStyle(o.Style)
}

// IsSchematic returns true if this is a schematic visualization.
func (o *Options) IsSchematic() bool {
	return o.VizType == VizTypeSchematic
}

// LayoutMode returns the parsed layout mode. Call after ValidateForLayout.
func (o *Options) LayoutMode() layout.Mode {
	m, _ := layout.ParseMode(o.Mode)
	return m
}

// ArtifactKeyOpts returns cache key options for a pack diagram artifact.
func (o *Options) ArtifactKeyOpts(format string, cfg sizing.Configuration) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{
		Format: format,
		Style:  o.Style,
		Static: o.Static,
		Notice: o.Notice,
		Title:  o.Title,
	}
	switch format {
	case FormatPNG:
		opts.Scale = o.Scale
	case FormatJSON:
		opts.CellID, opts.Voltage, opts.Capacity = cfg.Cell.ID, cfg.Voltage, cfg.Capacity
	}
	return opts
}

// SchematicKeyOpts returns cache key options for a schematic artifact.
func (o *Options) SchematicKeyOpts(format string, cfg sizing.Configuration) cache.SchematicKeyOpts {
	return cache.SchematicKeyOpts{
		Format:      format,
		Series:      cfg.Series,
		Parallel:    cfg.Parallel,
		Capacity:    cfg.Capacity,
		CellID:      cfg.Cell.ID,
		CellVoltage: cfg.Cell.Voltage,
		Detailed:    o.Detailed,
	}
}
