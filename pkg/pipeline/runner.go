package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cellstack/pkg/cache"
	"github.com/matzehuels/cellstack/pkg/cells"
	"github.com/matzehuels/cellstack/pkg/layout"
	"github.com/matzehuels/cellstack/pkg/observability"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

// Cache key types reported to observability hooks.
const (
	keyTypeScene     = "scene"
	keyTypeArtifact  = "artifact"
	keyTypeSchematic = "schematic"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, catalog and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
	Catalog cells.Catalog
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The runner starts with the built-in cell catalog; replace Catalog to add
// profiles from a config file.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:   c,
		Keyer:   keyer,
		Logger:  logger,
		Catalog: cells.Default(),
	}
}

// Execute runs the complete size → layout → render pipeline with caching.
// Schematic runs skip the layout stage.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Size
	cfg, err := Size(r.Catalog, opts)
	if err != nil {
		return nil, err
	}
	result.Configuration = cfg
	result.Stats.TotalCells = cfg.TotalCells

	opts.Logger.Info("sized pack",
		"config", cfg.Label(),
		"cell", cfg.Cell.ID,
		"voltage", fmt.Sprintf("%.1f", cfg.Voltage),
		"capacity", fmt.Sprintf("%.1f", cfg.Capacity))

	if opts.IsSchematic() {
		renderStart := time.Now()
		artifacts, hit, err := r.SchematicWithCacheInfo(ctx, cfg, opts)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)
		result.CacheInfo.RenderHit = hit

		opts.Logger.Info("rendered schematic",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
		return result, nil
	}

	// Stage 2: Layout
	layoutStart := time.Now()
	sc, layoutHit, err := r.LayoutWithCacheInfo(ctx, cfg, opts)
	if err != nil {
		return nil, err
	}
	result.Scene = sc
	result.Stats.DrawnCells = len(sc.Cells)
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	opts.Logger.Info("computed layout",
		"orientation", sc.Orientation,
		"cells", len(sc.Cells),
		"limit_reached", sc.LimitReached,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, cfg, sc, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Size is the sizing stage against the runner's catalog.
func (r *Runner) Size(opts Options) (sizing.Configuration, error) {
	return Size(r.Catalog, opts)
}

// LayoutWithCacheInfo lays out the pack with caching and returns cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, cfg sizing.Configuration, opts Options) (layout.Scene, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Scene{}, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, opts.Mode, cfg.Series, cfg.Parallel)
	start := time.Now()

	cacheKey := r.Keyer.SceneKey(cfg.Series, cfg.Parallel, opts.Mode)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if sc, err := UnmarshalScene(data); err == nil {
				observability.Cache().OnCacheHit(ctx, keyTypeScene)
				hooks.OnLayoutComplete(ctx, opts.Mode, time.Since(start), nil)
				return sc, true, nil
			}
			// Corrupt entries fall through to recompute.
		}
		observability.Cache().OnCacheMiss(ctx, keyTypeScene)
	}

	sc, err := GenerateLayout(cfg, opts)
	hooks.OnLayoutComplete(ctx, opts.Mode, time.Since(start), err)
	if err != nil {
		return layout.Scene{}, false, err
	}

	if data, err := MarshalScene(sc); err == nil {
		r.store(ctx, opts.Logger, keyTypeScene, cacheKey, data, cache.TTLScene)
	}
	return sc, false, nil
}

// RenderWithCacheInfo generates pack diagram artifacts with caching and
// returns whether every format came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, cfg sizing.Configuration, sc layout.Scene, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.VizType, opts.Formats)
	start := time.Now()

	sceneKey := r.Keyer.SceneKey(sc.Series, sc.Parallel, string(sc.Mode))
	keyFor := func(format string) string {
		return r.Keyer.ArtifactKey(sceneKey, opts.ArtifactKeyOpts(format, cfg))
	}

	if artifacts, ok := r.lookupAll(ctx, keyTypeArtifact, opts, keyFor); ok {
		hooks.OnRenderComplete(ctx, opts.VizType, opts.Formats, time.Since(start), nil)
		return artifacts, true, nil
	}

	rendered, err := Render(cfg, sc, opts)
	hooks.OnRenderComplete(ctx, opts.VizType, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		r.store(ctx, opts.Logger, keyTypeArtifact, keyFor(format), data, cache.TTLArtifact)
	}
	return rendered, false, nil
}

// SchematicWithCacheInfo generates schematic artifacts with caching and
// returns whether every format came from cache.
func (r *Runner) SchematicWithCacheInfo(ctx context.Context, cfg sizing.Configuration, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.VizType, opts.Formats)
	start := time.Now()

	keyFor := func(format string) string {
		return r.Keyer.SchematicKey(opts.SchematicKeyOpts(format, cfg))
	}

	if artifacts, ok := r.lookupAll(ctx, keyTypeSchematic, opts, keyFor); ok {
		hooks.OnRenderComplete(ctx, opts.VizType, opts.Formats, time.Since(start), nil)
		return artifacts, true, nil
	}

	rendered, err := RenderSchematic(ctx, cfg, opts)
	hooks.OnRenderComplete(ctx, opts.VizType, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}
	for format, data := range rendered {
		r.store(ctx, opts.Logger, keyTypeSchematic, keyFor(format), data, cache.TTLSchematic)
	}
	return rendered, false, nil
}

// lookupAll returns cached artifacts only when every requested format hits.
func (r *Runner) lookupAll(ctx context.Context, keyType string, opts Options, keyFor func(string) string) (map[string][]byte, bool) {
	if opts.Refresh {
		return nil, false
	}
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, hit, err := r.Cache.Get(ctx, keyFor(format))
		if err != nil || !hit {
			observability.Cache().OnCacheMiss(ctx, keyType)
			return nil, false
		}
		artifacts[format] = data
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return artifacts, true
}

// store writes to the cache. Failures are logged and otherwise ignored.
func (r *Runner) store(ctx context.Context, logger *log.Logger, keyType, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Debug("cache write failed", "key", key, "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
