package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = "skinkit"
	envPrefix  = "SKINKIT"
)

// newConfig reads path, or skinkit.yaml from the working directory and the
// user config directory when path is empty. A missing default file is not an
// error.
func newConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// applyConfig fills every flag of cmd that was not set on the command line.
// A "<command>.<flag>" key wins over a bare "<flag>" key.
func applyConfig(cmd *cobra.Command, v *viper.Viper) error {
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "config" || f.Name == "help" {
			return
		}
		for _, key := range []string{cmd.Name() + "." + f.Name, f.Name} {
			if !v.IsSet(key) {
				continue
			}
			if err := cmd.Flags().Set(f.Name, v.GetString(key)); err != nil {
				errs = append(errs, fmt.Errorf("config %s: %w", key, err))
			}
			return
		}
	})
	return errors.Join(errs...)
}
