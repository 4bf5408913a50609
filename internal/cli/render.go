package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cellstack/pkg/pipeline"
	"github.com/matzehuels/cellstack/pkg/render/styles"
)

// stdoutPath selects standard output for single-format renders.
const stdoutPath = "-"

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	pack     packFlags
	output   string
	formats  string
	vizType  string
	style    string
	static   bool
	notice   bool
	title    string
	scale    float64
	detailed bool
	clamp    bool
	refresh  bool
}

// renderCommand renders pack diagrams and schematics to files.
func (c *CLI) renderCommand() *cobra.Command {
	f := renderFlags{notice: true, scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a pack diagram or wiring schematic",
		Long: `Render a pack diagram or wiring schematic.

The pack view draws every cell, bus bar, series connector and terminal as an
animated SVG (use --static for a still image). PNG and PDF require librsvg:
brew install librsvg (macOS), apt install librsvg2-bin (Linux).

The schematic view draws the series chain of parallel groups with Graphviz.

Results are cached locally; use --refresh to rebuild them.`,
		Example: `  cellstack render -V 48 -C 15
  cellstack render -V 24 -C 6 -f svg,png,json -o pack
  cellstack render -V 48 -C 15 --viz schematic -f dot -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd, f.pack)
			opts.VizType = f.vizType
			opts.Formats = parseFormats(f.formats)
			if f.style != "" {
				opts.Style = f.style
			}
			opts.Static = f.static
			opts.Notice = f.notice
			opts.Title = f.title
			opts.Scale = f.scale
			opts.Detailed = f.detailed
			opts.Clamp = f.clamp
			opts.Refresh = f.refresh
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if f.output == stdoutPath && len(opts.Formats) != 1 {
				return fmt.Errorf("output %q needs exactly one format, got %d", stdoutPath, len(opts.Formats))
			}
			return c.runRender(cmd.Context(), opts, f.output)
		},
	}

	c.addPackFlags(cmd, &f.pack)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json; schematic: svg, png, pdf, dot")
	cmd.Flags().StringVar(&f.vizType, "viz", pipeline.VizTypePack, "visualization: pack, schematic")
	cmd.Flags().StringVar(&f.style, "style", "", "diagram style: "+strings.Join(styles.Names(), ", "))
	cmd.Flags().BoolVar(&f.static, "static", false, "disable animations")
	cmd.Flags().BoolVar(&f.notice, "notice", f.notice, "draw the limit notice when the pack exceeds the display cap")
	cmd.Flags().StringVar(&f.title, "title", "", "accessible title for the SVG")
	cmd.Flags().Float64Var(&f.scale, "scale", f.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "label schematic groups with capacity, tap voltage and cell")
	cmd.Flags().BoolVar(&f.clamp, "clamp", false, "clamp voltage and capacity to the designer ranges")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached results")

	c.registerPackCompletions(cmd)
	_ = cmd.RegisterFlagCompletionFunc("viz", completeFromList([]string{pipeline.VizTypePack, pipeline.VizTypeSchematic}))
	_ = cmd.RegisterFlagCompletionFunc("style", completeFromList(styles.Names()))
	return cmd
}

// runRender executes the pipeline and writes each artifact.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string) error {
	runner, err := c.newRunner()
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	var spinner *Spinner
	if needsSpinner(opts) && output != stdoutPath {
		spinner = newSpinner(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
		spinner.Start()
	}

	result, err := runner.Execute(ctx, opts)
	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Render failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return err
	}

	if output == stdoutPath {
		_, err := os.Stdout.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	base := defaultBase(result.Configuration.Label(), opts.VizType)
	paths := outputPaths(output, base, opts.Formats)
	for _, format := range opts.Formats {
		if err := writeArtifact(paths[format], result.Artifacts[format]); err != nil {
			return err
		}
	}

	prog.done(fmt.Sprintf("Rendered %s", result.Configuration.Label()))
	printSuccess("%s %s", result.Configuration.Summary(), opts.VizType)
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printCacheStatus(result.CacheInfo.RenderHit)
	if result.Scene.LimitReached {
		printLimitWarning()
	}
	return nil
}

// needsSpinner reports whether any requested output is slow to produce.
func needsSpinner(opts pipeline.Options) bool {
	if opts.IsSchematic() {
		return slices.ContainsFunc(opts.Formats, func(f string) bool { return f != pipeline.FormatDOT })
	}
	return slices.Contains(opts.Formats, pipeline.FormatPNG) || slices.Contains(opts.Formats, pipeline.FormatPDF)
}

// defaultBase names outputs after the configuration, e.g. "13s5p" or
// "13s5p-schematic".
func defaultBase(label, vizType string) string {
	base := strings.ToLower(label)
	if vizType == pipeline.VizTypeSchematic {
		base += "-" + vizType
	}
	return base
}

// outputPaths maps each format to a file path. A single format with an
// explicit output writes exactly there; otherwise the output (minus any
// format extension) is a base path that gets one extension per format.
func outputPaths(output, base string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	if output != "" {
		base = basePath(output)
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath strips a known format extension from output.
func basePath(output string) string {
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if pipeline.ValidFormats[ext] || pipeline.ValidSchematicFormats[ext] {
		return strings.TrimSuffix(output, "."+ext)
	}
	return output
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
