package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/cellstack/pkg/layout"
	"github.com/matzehuels/cellstack/pkg/render/schematic"
	"github.com/matzehuels/cellstack/pkg/render/sink"
	"github.com/matzehuels/cellstack/pkg/render/styles"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

// Render generates pack diagram artifacts in the requested formats.
func Render(cfg sizing.Configuration, sc layout.Scene, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	svgOpts, err := buildSVGOptions(opts)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(sc, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(sc, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(sc, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(cfg, sc, sink.WithJSONStyle(opts.Style))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// RenderSchematic generates schematic artifacts in the requested formats.
func RenderSchematic(ctx context.Context, cfg sizing.Configuration, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	dot := schematic.ToDOT(cfg, schematic.Options{Detailed: opts.Detailed})

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error
		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = schematic.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = schematic.RenderPNG(ctx, dot, opts.Scale)
		case FormatPDF:
			data, err = schematic.RenderPDF(ctx, dot)
		default:
			return nil, fmt.Errorf("unsupported schematic format: %s", format)
		}
		if err != nil {
			return nil, fmt.Errorf("render schematic %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func buildSVGOptions(opts Options) ([]sink.SVGOption, error) {
	style, err := styles.Lookup(opts.Style)
	if err != nil {
		return nil, err
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if opts.Static {
		svgOpts = append(svgOpts, sink.WithStatic())
	}
	if opts.Notice {
		svgOpts = append(svgOpts, sink.WithNotice())
	}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	return svgOpts, nil
}
