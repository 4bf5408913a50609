// Package pkg provides the core libraries for cellstack, a designer for
// 18650 battery packs.
//
// # Overview
//
// cellstack turns a desired pack voltage and capacity into a series/parallel
// cell configuration and draws it. The pkg directory is organized by stage:
//
//  1. [cells] and [sizing] - cell profiles and the SxP arithmetic
//  2. [layout] - positions of cells, bus bars, connectors and terminals
//  3. [render] - SVG, PNG, PDF and JSON pack diagrams plus Graphviz schematics
//  4. [pipeline] - orchestration (size → layout → render) with caching
//  5. [cache], [config], [errors], [observability] - shared infrastructure
//
// # Architecture
//
//	desired V / Ah + cell profile
//	         ↓
//	    [sizing] (series and parallel counts)
//	         ↓
//	    [layout] (scene geometry, display caps)
//	         ↓
//	    [render] (animated SVG, PNG, PDF, JSON, DOT)
//
// # Quick Start
//
//	catalog := cells.Default()
//	spec, _ := catalog.Get("balanced")
//	cfg := sizing.Compute(sizing.Request{Voltage: 48, Capacity: 15, Cell: spec})
//	scene, _ := layout.Compute(cfg.Series, cfg.Parallel, layout.ModeAuto)
//	svg := sink.RenderSVG(scene)
//
// Most callers go through [pipeline.Runner] instead, which validates options
// and caches scenes and artifacts.
//
// [cells]: github.com/matzehuels/cellstack/pkg/cells
// [sizing]: github.com/matzehuels/cellstack/pkg/sizing
// [layout]: github.com/matzehuels/cellstack/pkg/layout
// [render]: github.com/matzehuels/cellstack/pkg/render
// [pipeline]: github.com/matzehuels/cellstack/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/cellstack/pkg/pipeline#Runner
// [cache]: github.com/matzehuels/cellstack/pkg/cache
// [config]: github.com/matzehuels/cellstack/pkg/config
// [errors]: github.com/matzehuels/cellstack/pkg/errors
// [observability]: github.com/matzehuels/cellstack/pkg/observability
package pkg
