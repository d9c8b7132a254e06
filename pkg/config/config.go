// Package config loads gorim settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalid is wrapped by every validation failure.
	ErrInvalid = errors.New("invalid configuration")
	// ErrUnknownFormat is returned for config files that are neither TOML nor YAML.
	ErrUnknownFormat = errors.New("unknown config format")
)

// Config holds the settings shared by all gorim commands.
type Config struct {
	// Segments is the number of polyline segments per full turn.
	Segments int `toml:"segments" yaml:"segments"`
	// Workers bounds concurrent pair processing; 0 means one per CPU.
	Workers   int    `toml:"workers" yaml:"workers"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	Precision int    `toml:"precision" yaml:"precision"`
	Colour    string `toml:"colour" yaml:"colour"`

	Mesh   Mesh   `toml:"mesh" yaml:"mesh"`
	Render Render `toml:"render" yaml:"render"`
}

// Mesh configures surface tessellation.
type Mesh struct {
	Cells int `toml:"cells" yaml:"cells"`
}

// Render configures 2D projection output.
type Render struct {
	Width float64 `toml:"width" yaml:"width"`
	DPI   float64 `toml:"dpi" yaml:"dpi"`
	Axis  string  `toml:"axis" yaml:"axis"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Segments:  32,
		Workers:   0,
		LogLevel:  "info",
		Precision: 2,
		Colour:    "#ffa500",
		Mesh:      Mesh{Cells: 200},
		Render:    Render{Width: 200, DPI: 96, Axis: "z"},
	}
}

// Load reads a config file on top of the defaults. The format is chosen by
// extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.Segments < 3 {
		return fmt.Errorf("%w: segments must be at least 3, got %d", ErrInvalid, c.Segments)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	}
	if c.Precision < 0 || c.Precision > 9 {
		return fmt.Errorf("%w: precision must be within 0..9, got %d", ErrInvalid, c.Precision)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	}
	if _, err := ParseColour(c.Colour); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Mesh.Cells < 8 {
		return fmt.Errorf("%w: mesh cells must be at least 8, got %d", ErrInvalid, c.Mesh.Cells)
	}
	if !(c.Render.Width > 0) || !(c.Render.DPI > 0) {
		return fmt.Errorf("%w: render width and dpi must be positive", ErrInvalid)
	}
	switch c.Render.Axis {
	case "x", "y", "z":
	default:
		return fmt.Errorf("%w: render axis must be x, y or z, got %q", ErrInvalid, c.Render.Axis)
	}
	return nil
}

// RGBA returns the parsed colour. It assumes a validated config.
func (c Config) RGBA() color.RGBA {
	rgba, _ := ParseColour(c.Colour)
	return rgba
}

// ParseColour parses "#rrggbb" or "rrggbb".
func ParseColour(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("colour %q is not of the form #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
