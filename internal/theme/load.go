package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidColor is returned when a theme file declares a palette color that
// is not a hex value.
var ErrInvalidColor = errors.New("invalid palette color")

// File is the on-disk theme format.
type File struct {
	Colors     map[string]string          `toml:"colors" yaml:"colors"`
	Components map[string]ComponentConfig `toml:"components" yaml:"components"`
}

// LoadFile reads a TOML or YAML theme file and layers it over Default.
func LoadFile(path string) (*MapRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme: %w", err)
	}

	f, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return Default().With(NewMapRegistry(f.Components, f.Colors)), nil
}

// Parse decodes theme data in the format named by ext (".toml", ".yaml" or
// ".yml") and validates its palette.
func Parse(data []byte, ext string) (*File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported theme format %q", ext)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that every palette color parses as hex.
func (f *File) Validate() error {
	for token, c := range f.Colors {
		if _, err := colorful.Hex(c); err != nil {
			return fmt.Errorf("%w: %s = %q", ErrInvalidColor, token, c)
		}
	}
	return nil
}
