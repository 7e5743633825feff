package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/druarnfield/whirl/internal/config"
	"github.com/druarnfield/whirl/internal/indicator"
	"github.com/druarnfield/whirl/internal/logging"
	"github.com/druarnfield/whirl/internal/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// indicatorFlags binds the per-render options shared by resolve, render and
// preview. Only flags the user set override the config file.
type indicatorFlags struct {
	emptyColor  string
	color       string
	thickness   string
	speed       string
	label       string
	colorScheme string
	variant     string
	size        string
	element     string
	attrs       map[string]string
}

func (f *indicatorFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.emptyColor, "empty-color", "", "Color of the empty part of the ring")
	fs.StringVar(&f.color, "color", "", "Color of the active arc (inherits when unset)")
	fs.StringVar(&f.thickness, "thickness", "", "Border thickness, e.g. 2px")
	fs.StringVar(&f.speed, "speed", "", "Duration of one rotation, e.g. 0.45s")
	fs.StringVar(&f.label, "label", "", "Accessible fallback text")
	fs.StringVar(&f.colorScheme, "color-scheme", "", "Theme color scheme, e.g. blue")
	fs.StringVar(&f.variant, "variant", "", "Theme variant")
	fs.StringVar(&f.size, "size", "", "Theme size: xs, sm, md, lg, xl")
	fs.StringVar(&f.element, "as", "", "Element tag to render")
	fs.StringToStringVar(&f.attrs, "attr", nil, "Attribute passed through to the element (key=value, repeatable)")
}

func (f *indicatorFlags) apply(fs *pflag.FlagSet, opts indicator.Options) indicator.Options {
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("empty-color", &opts.EmptyColor, f.emptyColor)
	set("color", &opts.Color, f.color)
	set("thickness", &opts.Thickness, f.thickness)
	set("speed", &opts.Speed, f.speed)
	set("label", &opts.Label, f.label)
	set("color-scheme", &opts.ColorScheme, f.colorScheme)
	set("variant", &opts.Variant, f.variant)
	set("size", &opts.Size, f.size)
	if fs.Changed("as") {
		opts.Element = indicator.Tag(f.element)
	}
	if len(f.attrs) > 0 {
		opts.Attrs = f.attrs
	}
	return opts
}

// settings is everything a command needs after config, logging and theme
// are loaded.
type settings struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *theme.MapRegistry
	themeSrc string
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	cfgPath := config.ConfigFilePath()
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = config.Defaults()
	}

	logger, err := logging.Setup(config.LogFilePath(), flagVerbose)
	if err != nil {
		logger = logging.Discard()
	}

	themeSrc := cfg.Theme.File
	if cmd.Flags().Changed("theme") {
		themeSrc = flagTheme
	}

	reg := theme.Default()
	if themeSrc != "" {
		reg, err = theme.LoadFile(themeSrc)
		if err != nil {
			logger.Error("theme load failed", "path", themeSrc, "error", err)
			return nil, fmt.Errorf("loading theme: %w", err)
		}
		logger.Debug("theme loaded", "path", themeSrc)
	}

	return &settings{cfg: cfg, logger: logger, registry: reg, themeSrc: themeSrc}, nil
}
