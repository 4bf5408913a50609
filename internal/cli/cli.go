package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cellstack/pkg/buildinfo"
	"github.com/matzehuels/cellstack/pkg/cache"
	"github.com/matzehuels/cellstack/pkg/config"
	"github.com/matzehuels/cellstack/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Settings is loaded from the config file before any command runs.
	Settings config.Settings

	configPath string
	noCache    bool
}

// New creates a new CLI instance with a default logger and built-in settings.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Settings: config.Defaults(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "cellstack designs 18650 battery packs",
		Long: `cellstack sizes 18650 battery packs from a target voltage and capacity
and draws the resulting series/parallel wiring as an animated diagram.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadSettings()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the artifact cache")

	root.AddCommand(c.designCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cellsCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.sweepCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadSettings reads the config file. A missing file keeps the defaults.
func (c *CLI) loadSettings() error {
	s, err := config.LoadSettings(c.configPath)
	if err != nil {
		return err
	}
	c.Settings = s
	c.Logger.Debug("loaded settings", "cells", s.Catalog.Len(), "style", s.Style, "mode", s.Mode)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use, backed by the file cache.
func (c *CLI) newRunner() (*pipeline.Runner, error) {
	ch, err := c.newCache()
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(ch, nil, c.Logger)
	r.Catalog = c.Settings.Catalog
	return r, nil
}

func (c *CLI) newCache() (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(config.CacheDir())
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// packFlags are the sizing flags shared by design, render and tui.
type packFlags struct {
	voltage  float64
	capacity float64
	cell     string
	mode     string
}

func (c *CLI) addPackFlags(cmd *cobra.Command, f *packFlags) {
	cmd.Flags().Float64VarP(&f.voltage, "voltage", "V", 0, "desired pack voltage (default from config, 48)")
	cmd.Flags().Float64VarP(&f.capacity, "capacity", "C", 0, "desired pack capacity in Ah (default from config, 15)")
	cmd.Flags().StringVarP(&f.cell, "cell", "c", "", "cell profile id (see 'cellstack cells')")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", "", "layout mode: auto, grid, row")
}

// options merges the flags set on cmd over the loaded settings. An explicit
// zero is passed through so validation can reject it.
func (c *CLI) options(cmd *cobra.Command, f packFlags) pipeline.Options {
	opts := pipeline.Options{
		Voltage:  c.Settings.Voltage,
		Capacity: c.Settings.Capacity,
		Cell:     c.Settings.Cell,
		Mode:     string(c.Settings.Mode),
		Style:    c.Settings.Style,
		Logger:   c.Logger,
	}
	flags := cmd.Flags()
	if flags.Changed("voltage") {
		opts.Voltage = f.voltage
	}
	if flags.Changed("capacity") {
		opts.Capacity = f.capacity
	}
	if flags.Changed("cell") {
		opts.Cell = f.cell
	}
	if flags.Changed("mode") {
		opts.Mode = f.mode
	}
	return opts
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	formats := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			formats = append(formats, p)
		}
	}
	return formats
}
