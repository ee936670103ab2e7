package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skinkit/internal/layout"
	"github.com/alexisbeaulieu97/skinkit/internal/logger"
	"github.com/alexisbeaulieu97/skinkit/internal/render"
	"github.com/alexisbeaulieu97/skinkit/internal/snapshot"
	"github.com/alexisbeaulieu97/skinkit/pkg/diff"
)

type diffOptions struct {
	File    string
	ThemeID string
	From    string
	To      string
}

func newDiffCmd(root *rootFlags) *cobra.Command {
	opts := diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how a theme's layout changes between two snapshots",
		Long:  "Show how a theme's layout changes between two snapshots. Without --from and --to the default snapshot is compared unlocked against locked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadThemes(opts.File, root.log)
			if err != nil {
				return err
			}
			def, err := pickTheme(result, opts.ThemeID)
			if err != nil {
				return err
			}

			from, fromLabel, err := diffSide(opts.From, "unlocked", false)
			if err != nil {
				return err
			}
			to, toLabel, err := diffSide(opts.To, "locked", true)
			if err != nil {
				return err
			}

			out, stats := diff.Unified(
				[]byte(render.Outline(layout.Compose(def, from))),
				[]byte(render.Outline(layout.Compose(def, to))),
				fromLabel, toLabel,
			)
			root.log.Theme(def.ID).With(logger.Fields{"added": stats.Added, "removed": stats.Removed}).Debug("compared layouts")

			if !stats.Changed() {
				fmt.Fprintln(cmd.OutOrStdout(), "No layout changes")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Path to the theme JSON document")
	cmd.Flags().StringVar(&opts.ThemeID, "theme", "", "Theme id (defaults to the first theme)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Snapshot fixture to compare from (defaults to unlocked)")
	cmd.Flags().StringVar(&opts.To, "to", "", "Snapshot fixture to compare to (defaults to locked)")

	return cmd
}

// diffSide loads the snapshot at path, or the default snapshot with the given
// lock state when path is empty.
func diffSide(path, defaultLabel string, locked bool) (snapshot.Snapshot, string, error) {
	if path == "" {
		return snapshot.Default().WithLocked(locked), defaultLabel, nil
	}
	snap, err := loadSnapshot(path)
	if err != nil {
		return snapshot.Snapshot{}, "", err
	}
	return snap, path, nil
}
