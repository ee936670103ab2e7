package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skinkit/internal/layout"
	"github.com/alexisbeaulieu97/skinkit/internal/render"
	"github.com/alexisbeaulieu97/skinkit/internal/snapshot"
	"github.com/alexisbeaulieu97/skinkit/internal/theme"
)

var examplesDir = filepath.Join("..", "..", "examples")

func TestExampleThemesParseCleanly(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join(examplesDir, "themes.json"))
	require.NoError(t, err)

	result := theme.Parse(data)
	require.True(t, result.IsValid, result.Errors)
	require.Empty(t, result.Warnings)
	require.Equal(t, []string{"glass", "cinema"}, result.IDs())
}

func TestExampleSnapshotsCompose(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join(examplesDir, "themes.json"))
	require.NoError(t, err)
	result := theme.Parse(data)

	playing, err := snapshot.Load(filepath.Join(examplesDir, "snapshots", "playing.yaml"))
	require.NoError(t, err)
	locked, err := snapshot.Load(filepath.Join(examplesDir, "snapshots", "locked.yaml"))
	require.NoError(t, err)

	glass, _ := result.Theme("glass")
	outline := render.Outline(layout.Compose(glass, playing))
	require.Contains(t, outline, `"The Long Way Home"`)
	require.Contains(t, outline, `"EP 7"`)
	require.Contains(t, outline, `"1080p"`)
	require.Contains(t, outline, "item next_episode")
	require.Contains(t, outline, `"Now watching"`)
	require.Contains(t, outline, "progress capsule")

	outline = render.Outline(layout.Compose(glass, locked))
	require.Contains(t, outline, "item lock")
	require.Contains(t, outline, "item unlock")
	require.Contains(t, outline, "bottom hidden")

	cinema, _ := result.Theme("cinema")
	outline = render.Outline(layout.Compose(cinema, locked))
	require.Contains(t, outline, "top hidden")
	require.Contains(t, outline, "item play_pause")
	require.Contains(t, outline, "bottom hidden")
}
