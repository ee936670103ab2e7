package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/skinkit/internal/tui"
)

var errNotTerminal = errors.New("preview requires an interactive terminal")

type previewOptions struct {
	File        string
	ThemeID     string
	Snapshot    string
	Interactive bool
}

var previewCmdRunner = runPreview

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview themes while toggling the player state",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Interactive = term.IsTerminal(int(os.Stdout.Fd()))
			result, err := loadThemes(opts.File, root.log)
			if err != nil {
				return err
			}
			if _, err := pickTheme(result, opts.ThemeID); err != nil {
				return err
			}
			snap, err := loadSnapshot(opts.Snapshot)
			if err != nil {
				return err
			}

			model := tui.NewModel(result.Themes, snap,
				tui.WithStartTheme(opts.ThemeID),
				tui.WithWarnings(len(result.Warnings)),
			)
			return previewCmdRunner(opts, model)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Path to the theme JSON document")
	cmd.Flags().StringVar(&opts.ThemeID, "theme", "", "Theme id to start on")
	cmd.Flags().StringVar(&opts.Snapshot, "snapshot", "", "Path to a YAML or JSON snapshot fixture")

	return cmd
}

func runPreview(opts previewOptions, model tui.Model) error {
	if !opts.Interactive {
		return errNotTerminal
	}
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
