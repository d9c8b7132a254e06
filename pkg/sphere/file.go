package sphere

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gorim/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// fileSet is the on-disk layout shared by the YAML and TOML formats:
//
//	name: Tetraeder
//	spheres:
//	  - center: [0, 0, 0]
//	    radius: 57.9
//	    points: 4000
type fileSet struct {
	Name    string       `yaml:"name" toml:"name"`
	Spheres []fileSphere `yaml:"spheres" toml:"spheres"`
}

type fileSphere struct {
	Center [3]float64 `yaml:"center" toml:"center"`
	Radius float64    `yaml:"radius" toml:"radius"`
	Points int        `yaml:"points,omitempty" toml:"points,omitempty"`
}

// Format identifies a sphere set file encoding
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("unsupported sphere file type: %s (expected .yaml, .yml or .toml)", ext)
	}
}

// Load reads a sphere set from a YAML or TOML file
func Load(path string) (*Set, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sphere file: %w", err)
	}

	set, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if set.Name == "" {
		set.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return set, nil
}

// Decode parses an encoded sphere set and validates it
func Decode(data []byte, format Format) (*Set, error) {
	var fs fileSet
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &fs); err != nil {
			return nil, err
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &fs); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format %d", format)
	}

	set := &Set{Name: fs.Name, Spheres: make([]Sphere, 0, len(fs.Spheres))}
	for _, s := range fs.Spheres {
		set.Spheres = append(set.Spheres, Sphere{
			Center: geometry.NewVector3(s.Center[0], s.Center[1], s.Center[2]),
			Radius: s.Radius,
			Points: s.Points,
		})
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Encode serializes a sphere set
func Encode(set *Set, format Format) ([]byte, error) {
	fs := fileSet{Name: set.Name, Spheres: make([]fileSphere, 0, len(set.Spheres))}
	for _, s := range set.Spheres {
		fs.Spheres = append(fs.Spheres, fileSphere{
			Center: [3]float64{s.Center.X, s.Center.Y, s.Center.Z},
			Radius: s.Radius,
			Points: s.Points,
		})
	}

	switch format {
	case FormatYAML:
		return yaml.Marshal(&fs)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(fs); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %d", format)
	}
}

// Save writes the set to path, choosing the encoding from the extension
func (s *Set) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(s, format)
	if err != nil {
		return fmt.Errorf("failed to encode sphere set: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write sphere file: %w", err)
	}
	return nil
}
