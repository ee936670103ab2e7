package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skinkit/internal/layout"
	"github.com/alexisbeaulieu97/skinkit/internal/logger"
	"github.com/alexisbeaulieu97/skinkit/internal/render"
)

type composeOptions struct {
	File     string
	ThemeID  string
	Snapshot string
	Locked   bool
	Color    bool
	JSON     bool
	Style    string
	Width    int
}

func newComposeCmd(root *rootFlags) *cobra.Command {
	opts := composeOptions{}

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose a theme for a controller snapshot and print the layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadThemes(opts.File, root.log)
			if err != nil {
				return err
			}
			def, err := pickTheme(result, opts.ThemeID)
			if err != nil {
				return err
			}
			snap, err := loadSnapshot(opts.Snapshot)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("locked") {
				snap = snap.WithLocked(opts.Locked)
			}

			root.log.Theme(def.ID).With(logger.Fields{"locked": snap.IsLocked}).Debug("composing layout")
			screen := layout.Compose(def, snap)

			if opts.JSON {
				out, err := render.JSON(screen)
				if err != nil {
					return err
				}
				if opts.Color {
					out = render.Highlight(out, opts.Style)
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			if opts.Color {
				fmt.Fprintln(cmd.OutOrStdout(), render.Styled(screen, opts.Width))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), render.Outline(screen))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Path to the theme JSON document")
	cmd.Flags().StringVar(&opts.ThemeID, "theme", "", "Theme id (defaults to the first theme)")
	cmd.Flags().StringVar(&opts.Snapshot, "snapshot", "", "Path to a YAML or JSON snapshot fixture")
	cmd.Flags().BoolVar(&opts.Locked, "locked", false, "Override the snapshot lock state")
	cmd.Flags().BoolVar(&opts.Color, "color", false, "Render with terminal colors instead of an outline")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the composed node tree as JSON")
	cmd.Flags().StringVar(&opts.Style, "style", render.DefaultHighlightStyle, "Highlight style for --json --color")
	cmd.Flags().IntVar(&opts.Width, "width", render.DefaultWidth, "Terminal width for --color")

	return cmd
}
