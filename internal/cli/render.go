package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/druarnfield/whirl/internal/indicator"
	"github.com/druarnfield/whirl/internal/theme"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newResolveCmd() *cobra.Command {
	var flags indicatorFlags
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the theme styles for an indicator",
		Long:  "Resolve the theming intent (size, variant, color scheme) against the theme registry and print the resulting style properties.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			opts := flags.apply(cmd.Flags(), s.cfg.Indicator.Options())

			intent := opts.Intent()
			styles, err := theme.Resolve(s.registry, theme.SpinnerComponent, intent)
			if err != nil {
				s.logger.Error("resolve failed", "error", err)
				return err
			}
			s.logger.Debug("resolved theme",
				"component", theme.SpinnerComponent,
				"size", intent.Size,
				"variant", intent.Variant,
				"color_scheme", intent.ColorScheme,
				"properties", len(styles),
			)
			out := cmd.OutOrStdout()
			for _, k := range styles.Keys() {
				fmt.Fprintf(out, "%s: %s\n", k, styles[k])
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newRenderCmd() *cobra.Command {
	var (
		flags  indicatorFlags
		format string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the render tree of an indicator",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			opts := flags.apply(cmd.Flags(), s.cfg.Indicator.Options())

			node, err := indicator.NewRenderer(s.registry, s.logger).Render(opts)
			if err != nil {
				return err
			}
			return writeNode(cmd.OutOrStdout(), node, format)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")
	return cmd
}

type animationDoc struct {
	Name           string            `json:"name" yaml:"name"`
	Keyframes      map[string]string `json:"keyframes" yaml:"keyframes"`
	Duration       string            `json:"duration" yaml:"duration"`
	TimingFunction string            `json:"timingFunction" yaml:"timingFunction"`
	IterationCount string            `json:"iterationCount" yaml:"iterationCount"`
}

type nodeDoc struct {
	Kind      string            `json:"kind" yaml:"kind"`
	Element   string            `json:"element" yaml:"element"`
	Label     string            `json:"label,omitempty" yaml:"label,omitempty"`
	Text      string            `json:"text,omitempty" yaml:"text,omitempty"`
	Style     map[string]string `json:"style" yaml:"style"`
	Animation *animationDoc     `json:"animation,omitempty" yaml:"animation,omitempty"`
	Attrs     map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children  []nodeDoc         `json:"children,omitempty" yaml:"children,omitempty"`
}

func toDoc(n indicator.Node) nodeDoc {
	doc := nodeDoc{
		Kind:    n.Kind.String(),
		Element: n.Element.String(),
		Label:   n.Label,
		Text:    n.Text,
		Style:   n.Style,
		Attrs:   n.Attrs,
	}
	if a := n.Animation; a != nil {
		frames := make(map[string]string, len(a.Keyframes.Frames))
		for _, f := range a.Keyframes.Frames {
			frames[f.Offset] = f.Transform
		}
		doc.Animation = &animationDoc{
			Name:           a.Keyframes.Name,
			Keyframes:      frames,
			Duration:       a.Duration,
			TimingFunction: a.TimingFunction,
			IterationCount: a.IterationCount,
		}
	}
	for _, c := range n.Children {
		doc.Children = append(doc.Children, toDoc(c))
	}
	return doc
}

func writeNode(w io.Writer, n *indicator.Node, format string) error {
	doc := toDoc(*n)
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}
