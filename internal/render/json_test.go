package render

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skinkit/internal/layout"
	"github.com/alexisbeaulieu97/skinkit/internal/snapshot"
	"github.com/alexisbeaulieu97/skinkit/internal/theme"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestJSONEncodesTree(t *testing.T) {
	t.Parallel()

	result := theme.ParseString(`{"id": "j", "middle": ["play_pause"]}`)
	require.True(t, result.IsValid)
	screen := layout.Compose(result.Themes[0], snapshot.Default())

	out, err := JSON(screen)
	require.NoError(t, err)
	require.Contains(t, out, `"kind": "button"`)

	var decoded struct {
		ThemeID string          `json:"themeId"`
		Top     json.RawMessage `json:"top"`
		Middle  struct {
			Kind string `json:"kind"`
			Role string `json:"role"`
		} `json:"middle"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Equal(t, "j", decoded.ThemeID)
	require.Equal(t, "zone", decoded.Middle.Kind)
	require.Equal(t, "middle", decoded.Middle.Role)
}

func TestHighlightPreservesText(t *testing.T) {
	t.Parallel()

	src := "{\n  \"id\": \"glass\",\n  \"value\": 0.35,\n  \"enabled\": true\n}\n"
	for _, style := range []string{"", DefaultHighlightStyle, "no-such-style"} {
		got := Highlight(src, style)
		require.Equal(t, src, ansiEscape.ReplaceAllString(got, ""), "style %q", style)
	}
}
