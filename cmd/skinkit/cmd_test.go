package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skinkit/internal/tui"
)

const themeDoc = `{"themes": [
  {
    "id": "glass",
    "name": "Glass",
    "palette": {"accent": "#ff8800"},
    "top": {
      "normal": {"left": ["back"], "center": ["title", "episode_badge"], "right": ["menu"]},
      "locked": {"right": ["lock"]}
    },
    "middle": ["rewind", "play_pause", "forward"],
    "bottom": {"left": ["time"], "right": [{"id": "next", "visibleWhen": "canGoForward"}]}
  },
  {"id": "minimal", "top": {"left": [{"id": "back", "visibleWhen": "isFullscreen"}]}}
]}`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestValidateCommand(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "themes.json", themeDoc)
	out, logs, err := execute(t, "validate", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "Themes: 2")
	require.Contains(t, out, "✔ glass (Glass)")
	require.Contains(t, out, "✔ minimal (minimal)")
	require.Contains(t, out, `Theme #2 (minimal): top.left[0]: visibleWhen: unknown condition atom "isFullscreen"`)
	require.Contains(t, out, "Valid")
	require.Contains(t, logs, "isFullscreen")
}

func TestValidateCommandReportsInvalidDocument(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		expected string
	}{
		{name: "empty", contents: "   ", expected: "JSON payload is empty."},
		{name: "unsupported root", contents: `42`, expected: "Unsupported theme document"},
		{name: "missing id", contents: `[{"name": "nameless"}]`, expected: `Theme #1: missing required field "id"`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := execute(t, "validate", "-f", writeFile(t, "themes.json", tc.contents))
			require.ErrorIs(t, err, errInvalidDocument)
			require.Contains(t, out, tc.expected)
			require.Contains(t, out, "Invalid")
		})
	}
}

func TestValidateCommandRequiresFile(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "validate")
	require.ErrorContains(t, err, "theme file is required")

	_, _, err = execute(t, "validate", "-f", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorContains(t, err, "theme file does not exist")

	_, _, err = execute(t, "validate", "-f", t.TempDir())
	require.ErrorContains(t, err, "is a directory")
}

func TestComposeCommandPrintsOutline(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "themes.json", themeDoc)
	snap := writeFile(t, "snap.yaml", "isPlaying: true\ncurrentEpisode:\n  title: Pilot\n  number: 2\n")

	out, _, err := execute(t, "compose", "-f", path, "--snapshot", snap)
	require.NoError(t, err)
	require.Contains(t, out, "screen glass")
	require.Contains(t, out, `item title [title] "Pilot"`)
	require.Contains(t, out, `item episode_badge [badge] "EP 2"`)
	require.Contains(t, out, `item play_pause [button] "pause"`)
	require.NotContains(t, out, "item next")

	out, _, err = execute(t, "compose", "-f", path, "--snapshot", snap, "--locked")
	require.NoError(t, err)
	require.Contains(t, out, "item lock")
	require.NotContains(t, out, "item back")
	require.Contains(t, out, "middle hidden")
}

func TestComposeCommandSelectsTheme(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "themes.json", themeDoc)
	out, _, err := execute(t, "compose", "-f", path, "--theme", "minimal")
	require.NoError(t, err)
	require.Contains(t, out, "screen minimal")
	require.Contains(t, out, "top hidden")

	_, _, err = execute(t, "compose", "-f", path, "--theme", "neon")
	require.ErrorContains(t, err, `theme "neon" not found (available: glass, minimal)`)
}

func TestComposeCommandColor(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "themes.json", themeDoc)
	out, _, err := execute(t, "compose", "-f", path, "--color", "--width", "60")
	require.NoError(t, err)
	require.Contains(t, out, "back")
	require.Contains(t, out, "play")
	require.NotContains(t, out, "screen glass")
}

func TestComposeCommandJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "themes.json", themeDoc)
	out, _, err := execute(t, "compose", "-f", path, "--json")
	require.NoError(t, err)

	var screen struct {
		ThemeID string `json:"themeId"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &screen))
	require.Equal(t, "glass", screen.ThemeID)
	require.Contains(t, out, `"id": "play_pause"`)

	colored, _, err := execute(t, "compose", "-f", path, "--json", "--color")
	require.NoError(t, err)
	require.Contains(t, colored, "play_pause")
}

func TestConfigFileFillsUnsetFlags(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "themes.json", themeDoc)
	config := writeFile(t, "skinkit.yaml", "file: "+path+"\ncompose:\n  theme: minimal\n")

	out, _, err := execute(t, "--config", config, "compose")
	require.NoError(t, err)
	require.Contains(t, out, "screen minimal")

	out, _, err = execute(t, "--config", config, "compose", "--theme", "glass")
	require.NoError(t, err)
	require.Contains(t, out, "screen glass")

	out, _, err = execute(t, "--config", config, "validate")
	require.NoError(t, err)
	require.Contains(t, out, "Themes: 2")

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "validate")
	require.ErrorContains(t, err, "read config")
}

func TestEnvironmentFillsUnsetFlags(t *testing.T) {
	path := writeFile(t, "themes.json", themeDoc)
	t.Setenv("SKINKIT_FILE", path)
	t.Setenv("SKINKIT_COMPOSE_THEME", "minimal")

	out, _, err := execute(t, "compose")
	require.NoError(t, err)
	require.Contains(t, out, "screen minimal")
}

func TestComposeCommandRejectsBadSnapshot(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "themes.json", themeDoc)
	snap := writeFile(t, "snap.yaml", `currentPosition: "later"`)
	_, _, err := execute(t, "compose", "-f", path, "--snapshot", snap)
	require.ErrorContains(t, err, "load snapshot")
}

func TestDiffCommandDefaultsToLockComparison(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "themes.json", themeDoc)
	out, _, err := execute(t, "diff", "-f", path)
	require.NoError(t, err)
	require.Contains(t, out, "--- unlocked\n+++ locked\n")
	require.Regexp(t, `(?m)^-\s+item back`, out)
	require.Contains(t, out, "+  middle hidden")
}

func TestDiffCommandWithFixtures(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "themes.json", themeDoc)
	from := writeFile(t, "from.yaml", "canGoForward: false\n")
	to := writeFile(t, "to.yaml", "canGoForward: true\n")

	out, _, err := execute(t, "diff", "-f", path, "--from", from, "--to", to)
	require.NoError(t, err)
	require.Contains(t, out, "+++ "+to)
	require.Contains(t, out, "item next")

	out, _, err = execute(t, "diff", "-f", path, "--from", from, "--to", from)
	require.NoError(t, err)
	require.Equal(t, "No layout changes\n", out)
}

func TestPreviewCommandBuildsModel(t *testing.T) {
	original := previewCmdRunner
	t.Cleanup(func() { previewCmdRunner = original })

	var captured tui.Model
	previewCmdRunner = func(opts previewOptions, model tui.Model) error {
		captured = model
		return nil
	}

	path := writeFile(t, "themes.json", themeDoc)
	_, _, err := execute(t, "preview", "-f", path, "--theme", "minimal")
	require.NoError(t, err)

	def, ok := captured.Theme()
	require.True(t, ok)
	require.Equal(t, "minimal", def.ID)
}

func TestRunPreviewRequiresTerminal(t *testing.T) {
	t.Parallel()

	err := runPreview(previewOptions{Interactive: false}, tui.Model{})
	require.ErrorIs(t, err, errNotTerminal)
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-14"

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "skinkit 1.2.3")
	require.Contains(t, out, "abcdef1")
	require.Contains(t, out, "2026-10-14")
}
