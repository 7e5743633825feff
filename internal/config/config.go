package config

import (
	"fmt"
	"os"

	"github.com/druarnfield/whirl/internal/indicator"
	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Theme     ThemeConfig     `toml:"theme"`
	Indicator IndicatorConfig `toml:"indicator"`
	Terminal  TerminalConfig  `toml:"terminal"`
}

type ThemeConfig struct {
	File  string `toml:"file"`
	Watch bool   `toml:"watch"`
}

type IndicatorConfig struct {
	EmptyColor  string `toml:"empty_color"`
	Color       string `toml:"color"`
	Thickness   string `toml:"thickness"`
	Speed       string `toml:"speed"`
	Label       string `toml:"label"`
	ColorScheme string `toml:"color_scheme"`
	Variant     string `toml:"variant"`
	Size        string `toml:"size"`
}

type TerminalConfig struct {
	Accessible   bool   `toml:"accessible"`
	ColorProfile string `toml:"color_profile"`
}

func Defaults() *Config {
	return &Config{
		Indicator: IndicatorConfig{
			EmptyColor: indicator.DefaultEmptyColor,
			Thickness:  indicator.DefaultThickness,
			Speed:      indicator.DefaultSpeed,
			Variant:    indicator.DefaultVariant,
			Size:       indicator.DefaultSize,
			Label:      "Loading...",
		},
		Terminal: TerminalConfig{ColorProfile: "auto"},
	}
}

func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Options converts the indicator section into render options.
func (c IndicatorConfig) Options() indicator.Options {
	opts := indicator.DefaultOptions()
	opts.EmptyColor = c.EmptyColor
	opts.Color = c.Color
	opts.Thickness = c.Thickness
	opts.Speed = c.Speed
	opts.Label = c.Label
	opts.ColorScheme = c.ColorScheme
	opts.Variant = c.Variant
	opts.Size = c.Size
	return opts
}
