package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 32, cfg.Segments)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}, cfg.RGBA())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "gorim.toml", `
segments = 64
log_level = "debug"

[mesh]
cells = 120

[render]
axis = "x"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Segments)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 120, cfg.Mesh.Cells)
	assert.Equal(t, "x", cfg.Render.Axis)
	// untouched values keep their defaults
	assert.Equal(t, 2, cfg.Precision)
	assert.Equal(t, 96.0, cfg.Render.DPI)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "gorim.yaml", `
workers: 4
precision: 4
colour: "#00ff00"
render:
  width: 300
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 4, cfg.Precision)
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, cfg.RGBA())
	assert.Equal(t, 300.0, cfg.Render.Width)
	assert.Equal(t, "z", cfg.Render.Axis)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "gorim.json", `{}`))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(writeFile(t, "bad.toml", `segments = "many"`))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "invalid.yaml", "segments: 2\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"segments":  func(c *Config) { c.Segments = 2 },
		"workers":   func(c *Config) { c.Workers = -1 },
		"precision": func(c *Config) { c.Precision = 10 },
		"log level": func(c *Config) { c.LogLevel = "verbose" },
		"colour":    func(c *Config) { c.Colour = "orange" },
		"cells":     func(c *Config) { c.Mesh.Cells = 4 },
		"width":     func(c *Config) { c.Render.Width = 0 },
		"axis":      func(c *Config) { c.Render.Axis = "w" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestParseColour(t *testing.T) {
	c, err := ParseColour("102030")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, c)

	_, err = ParseColour("#12345")
	assert.Error(t, err)
	_, err = ParseColour("#gggggg")
	assert.Error(t, err)
}
