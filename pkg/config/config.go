// Package config loads user settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/cellstack/config.toml unless a path is
// given explicitly. A missing file is not an error; every setting has a
// built-in default. Command-line flags override file values.
//
//	[defaults]
//	voltage  = 48.0
//	capacity = 15.0
//	cell     = "balanced"
//	mode     = "auto"
//	style    = "slate"
//
//	[[cells]]
//	id       = "p42a"
//	name     = "Molicel P42A (4.2Ah)"
//	voltage  = 3.6
//	capacity = 4.2
//
//	[server]
//	addr       = ":8080"
//	redis_addr = "localhost:6379"
//	cache_ttl  = "24h"
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cellstack/pkg/cells"
	"github.com/matzehuels/cellstack/pkg/errors"
	"github.com/matzehuels/cellstack/pkg/layout"
	"github.com/matzehuels/cellstack/pkg/render/styles"
	"github.com/matzehuels/cellstack/pkg/sizing"
)

// File represents the TOML configuration file. Pointer fields distinguish
// "unset" from zero values.
type File struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Cells    []cells.Spec   `toml:"cells"`
	Server   ServerConfig   `toml:"server"`
}

// DefaultsConfig maps the designer defaults.
type DefaultsConfig struct {
	Voltage  *float64 `toml:"voltage"`
	Capacity *float64 `toml:"capacity"`
	Cell     *string  `toml:"cell"`
	Mode     *string  `toml:"mode"`
	Style    *string  `toml:"style"`
}

// ServerConfig maps HTTP server settings.
type ServerConfig struct {
	Addr      *string `toml:"addr"`
	RedisAddr *string `toml:"redis_addr"`
	CacheTTL  *string `toml:"cache_ttl"`
}

// Settings are the resolved values every command works from.
type Settings struct {
	Voltage  float64
	Capacity float64
	Cell     string
	Mode     layout.Mode
	Style    string
	Catalog  cells.Catalog

	Addr      string
	RedisAddr string // empty means file cache
	CacheTTL  time.Duration
}

// Built-in server defaults.
const (
	DefaultAddr     = "127.0.0.1:8080"
	DefaultCacheTTL = 24 * time.Hour
)

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Voltage:  sizing.DefaultVoltage,
		Capacity: sizing.DefaultCapacity,
		Cell:     cells.DefaultID,
		Mode:     layout.ModeAuto,
		Style:    styles.DefaultName,
		Catalog:  cells.Default(),
		Addr:     DefaultAddr,
		CacheTTL: DefaultCacheTTL,
	}
}

// Load reads a TOML config from path. A missing file yields an empty File.
func Load(path string) (File, error) {
	if path == "" {
		return File{}, errors.New(errors.ErrCodeInvalidConfig, "config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "stat config")
	}
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return File{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
	}
	return f, nil
}

// Resolve applies the file on top of the built-in defaults and validates the
// result. Every failure is an INVALID_CONFIG error.
func (f File) Resolve() (Settings, error) {
	s := Defaults()

	catalog, err := s.Catalog.With(f.Cells...)
	if err != nil {
		return Settings{}, err
	}
	s.Catalog = catalog

	d := f.Defaults
	if d.Voltage != nil {
		s.Voltage = *d.Voltage
	}
	if d.Capacity != nil {
		s.Capacity = *d.Capacity
	}
	if d.Cell != nil {
		s.Cell = *d.Cell
	}
	if d.Mode != nil {
		s.Mode = layout.Mode(*d.Mode)
	}
	if d.Style != nil {
		s.Style = *d.Style
	}
	if f.Server.Addr != nil {
		s.Addr = *f.Server.Addr
	}
	if f.Server.RedisAddr != nil {
		s.RedisAddr = *f.Server.RedisAddr
	}
	if f.Server.CacheTTL != nil {
		ttl, err := time.ParseDuration(*f.Server.CacheTTL)
		if err != nil || ttl < 0 {
			return Settings{}, errors.New(errors.ErrCodeInvalidConfig, "server.cache_ttl: invalid duration %q", *f.Server.CacheTTL)
		}
		s.CacheTTL = ttl
	}

	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s *Settings) validate() error {
	if err := errors.ValidatePositive("defaults.voltage", s.Voltage); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "defaults")
	}
	if err := errors.ValidatePositive("defaults.capacity", s.Capacity); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "defaults")
	}
	if _, ok := s.Catalog.Lookup(s.Cell); !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "defaults.cell: unknown cell profile %q", s.Cell)
	}
	mode, err := layout.ParseMode(string(s.Mode))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "defaults.mode")
	}
	style, err := styles.Lookup(s.Style)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "defaults.style")
	}
	s.Mode, s.Style = mode, style.Name()
	return nil
}

// LoadSettings loads path (or the default path when empty) and resolves it.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		path = DefaultPath()
	}
	f, err := Load(path)
	if err != nil {
		return Settings{}, err
	}
	return f.Resolve()
}
