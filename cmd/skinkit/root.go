package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/skinkit/internal/logger"
)

type rootFlags struct {
	verbose    bool
	configPath string
	log        *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "skinkit",
		Short:         "skinkit parses, validates and previews video player overlay themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config, err := newConfig(flags.configPath)
			if err != nil {
				return err
			}
			if err := applyConfig(cmd, config); err != nil {
				return err
			}

			log, err := newLogger(flags.verbose, cmd)
			if err != nil {
				return err
			}
			flags.log = log
			if used := config.ConfigFileUsed(); used != "" {
				log.With(logger.Fields{"config": used}).Debug("loaded config file")
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (defaults to ./skinkit.yaml, then the user config directory)")

	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newComposeCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger writes to the command's stderr. Console formatting is used only
// when that is the process terminal.
func newLogger(verbose bool, cmd *cobra.Command) (*logger.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}

	writer := cmd.ErrOrStderr()
	humanReadable := writer == os.Stderr && term.IsTerminal(int(os.Stderr.Fd()))

	return logger.New(logger.Options{Level: level, HumanReadable: humanReadable, Writer: writer})
}
