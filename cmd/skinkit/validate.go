package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/skinkit/internal/theme"
)

var errInvalidDocument = errors.New("theme document is invalid")

type validateOptions struct {
	File string
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Parse a theme document and report errors and warnings",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadThemes(opts.File, root.log)
			if err != nil {
				return err
			}
			printValidation(cmd.OutOrStdout(), result)
			if !result.IsValid {
				return errInvalidDocument
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Path to the theme JSON document")

	return cmd
}

func printValidation(w io.Writer, result theme.Result) {
	fmt.Fprintf(w, "Themes: %d\n", len(result.Themes))
	for _, def := range result.Themes {
		fmt.Fprintf(w, "  ✔ %s (%s)\n", def.ID, def.Name)
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "Errors: %d\n", len(result.Errors))
		for _, message := range result.Errors {
			fmt.Fprintf(w, "  ✖ %s\n", message)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(w, "Warnings: %d\n", len(result.Warnings))
		for _, message := range result.Warnings {
			fmt.Fprintf(w, "  ! %s\n", message)
		}
	}

	if result.IsValid {
		fmt.Fprintln(w, "Valid")
	} else {
		fmt.Fprintln(w, "Invalid")
	}
}
