package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/druarnfield/whirl/internal/tui/components"
	"github.com/druarnfield/whirl/internal/tui/preview"
	"github.com/spf13/cobra"
)

func newPreviewCmd() *cobra.Command {
	var (
		flags indicatorFlags
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show a live indicator in the terminal",
		Long:  "Animate the indicator in the terminal. With --watch, edits to the theme file are applied live.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			opts := flags.apply(cmd.Flags(), s.cfg.Indicator.Options())

			profile := s.cfg.Terminal.ColorProfile
			if cmd.Flags().Changed("color-profile") {
				profile = flagProfile
			}
			accessible := s.cfg.Terminal.Accessible || flagAccessible || os.Getenv("ACCESSIBLE") != ""

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			var events <-chan tea.Msg
			if (watch || s.cfg.Theme.Watch) && s.themeSrc != "" {
				events, err = preview.Watch(ctx, s.themeSrc, s.logger)
				if err != nil {
					return err
				}
			}

			m, err := preview.New(s.registry, opts, s.logger, events,
				components.WithRenderer(components.NewRenderer(os.Stdout, components.ParseProfile(profile))),
				components.WithAccessible(accessible),
			)
			if err != nil {
				return err
			}

			if _, err := tea.NewProgram(m, tea.WithContext(ctx)).Run(); err != nil {
				return fmt.Errorf("running preview: %w", err)
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload the theme file when it changes")
	return cmd
}
