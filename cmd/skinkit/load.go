package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/skinkit/internal/logger"
	"github.com/alexisbeaulieu97/skinkit/internal/snapshot"
	"github.com/alexisbeaulieu97/skinkit/internal/theme"
)

func validateFilePath(path, what string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%s file is required", what)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s path: %w", what, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%s file does not exist: %w", what, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s path %s is a directory", what, abs)
	}

	return nil
}

// loadThemes reads and parses a theme document, logging the outcome. Parse
// failures are reported through the Result, not the error.
func loadThemes(path string, log *logger.Logger) (theme.Result, error) {
	if err := validateFilePath(path, "theme"); err != nil {
		return theme.Result{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return theme.Result{}, fmt.Errorf("read theme file: %w", err)
	}

	result := theme.Parse(data)

	fileLog := log.Document(path)
	fileLog.Findings(result.Warnings, result.Errors)
	fileLog.With(logger.Fields{
		"themes":   len(result.Themes),
		"errors":   len(result.Errors),
		"warnings": len(result.Warnings),
	}).Debug("parsed theme document")

	return result, nil
}

// pickTheme returns the theme with id, or the first theme when id is empty.
func pickTheme(result theme.Result, id string) (theme.ThemeDef, error) {
	if len(result.Themes) == 0 {
		if err := result.Err(); err != nil {
			return theme.ThemeDef{}, fmt.Errorf("no usable themes: %w", err)
		}
		return theme.ThemeDef{}, fmt.Errorf("no usable themes")
	}
	if id == "" {
		return result.Themes[0], nil
	}
	def, ok := result.Theme(id)
	if !ok {
		return theme.ThemeDef{}, fmt.Errorf("theme %q not found (available: %s)", id, strings.Join(result.IDs(), ", "))
	}
	return def, nil
}

// loadSnapshot returns the fixture at path, or the default snapshot when path is empty.
func loadSnapshot(path string) (snapshot.Snapshot, error) {
	if path == "" {
		return snapshot.Default(), nil
	}
	snap, err := snapshot.Load(path)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	return snap, nil
}
