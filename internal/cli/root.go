package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	flagTheme      string
	flagVerbose    bool
	flagAccessible bool
	flagProfile    string
)

func newRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whirl",
		Short: "Themed, accessible loading indicators",
		Long:  "whirl resolves loading-indicator options against a theme and renders them as a style tree or a live terminal spinner.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Theme file (.toml or .yaml) layered over the built-in theme")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Show detailed log output")
	cmd.PersistentFlags().BoolVar(&flagAccessible, "accessible", false, "Print the accessible label instead of animating")
	cmd.PersistentFlags().StringVar(&flagProfile, "color-profile", "", "Color profile: auto, ascii, ansi, ansi256, truecolor")

	cmd.AddCommand(newVersionCmd(version))
	cmd.AddCommand(newResolveCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newPreviewCmd())

	return cmd
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print whirl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "whirl", version)
		},
	}
}

func Execute(version string) error {
	return newRootCmd(version).Execute()
}
