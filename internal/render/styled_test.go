package render

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skinkit/internal/layout"
	"github.com/alexisbeaulieu97/skinkit/internal/snapshot"
	"github.com/alexisbeaulieu97/skinkit/internal/theme"
)

func button(id string) layout.Node {
	return layout.Node{Kind: layout.NodeItem, Element: &layout.Element{
		ID: id, Kind: theme.KindButton, Enabled: true, Label: id, Item: theme.NewItem(id),
		Button: &theme.ButtonStyle{},
	}}
}

func text(id, label string) layout.Node {
	return layout.Node{Kind: layout.NodeItem, Element: &layout.Element{
		ID: id, Kind: theme.KindText, Enabled: true, Label: label, Item: theme.NewItem(id),
		Text: &theme.TextStyle{},
	}}
}

func zoneOf(children ...layout.Node) *layout.Node {
	return &layout.Node{Kind: layout.NodeZone, Role: "top", Children: children}
}

func TestStyledRowSharesRemainingWidth(t *testing.T) {
	t.Parallel()

	screen := layout.Screen{Top: zoneOf(layout.Node{
		Kind:     layout.NodeRow,
		Children: []layout.Node{button("back"), {Kind: layout.NodeFlex, Flex: 1}, button("menu")},
	})}

	out := Styled(screen, 30)
	require.Equal(t, 30, lipgloss.Width(out))
	require.True(t, strings.HasPrefix(out, " back "))
	require.True(t, strings.HasSuffix(out, " menu "))
}

func TestStyledOverlayCentersIndependentOfEdges(t *testing.T) {
	t.Parallel()

	edges := layout.Node{Kind: layout.NodeRow, Role: "edges", Children: []layout.Node{
		button("back"),
		{Kind: layout.NodeFlex, Flex: 1},
		{Kind: layout.NodeRow, Children: []layout.Node{button("menu"), button("cast")}},
	}}
	screen := layout.Screen{Top: zoneOf(layout.Node{
		Kind:     layout.NodeOverlay,
		Children: []layout.Node{edges, text("title", "Show")},
	})}

	out := Styled(screen, 40)
	require.Equal(t, 40, lipgloss.Width(out))
	require.Equal(t, 18, strings.Index(out, "Show"))
}

func TestStyledWrapBreaksLines(t *testing.T) {
	t.Parallel()

	screen := layout.Screen{Top: zoneOf(layout.Node{
		Kind:     layout.NodeWrap,
		Spacing:  8,
		Children: []layout.Node{text("a", "aaaa"), text("b", "bbbb"), text("c", "cccc")},
	})}

	out := Styled(screen, 9)
	require.Equal(t, []string{"aaaa bbbb", "cccc"}, trimmed(out))
}

func TestStyledComposedScreen(t *testing.T) {
	t.Parallel()

	result := theme.ParseString(`{"id": "s",
	  "top": {"left": ["back"], "center": ["title"]},
	  "middle": ["play_pause"],
	  "bottom": {"left": ["time"], "right": ["quality_badge"]}
	}`)
	require.True(t, result.IsValid)

	height := 1080
	snap := snapshot.Default()
	snap.IsPlaying = true
	snap.VideoHeight = &height
	snap.CurrentPosition = "06:00"
	snap.EpisodeDuration = "24:00"
	snap.CurrentEpisode.Title = "Pilot"

	out := Styled(layout.Compose(result.Themes[0], snap), 0)
	require.Contains(t, out, "Pilot")
	require.Contains(t, out, "pause")
	require.Contains(t, out, "1080p")
	require.Contains(t, out, "06:00 / 24:00")
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, lipgloss.Width(line), DefaultWidth)
	}
}

func TestStyledBoundsThemeSizes(t *testing.T) {
	t.Parallel()

	result := theme.ParseString(`{"id": "t",
	  "top": {"left": ["back", {"id": "spacer", "size": 1e17}, "x"], "itemSpacing": 1e17, "padding": {"vertical": 1e17}},
	  "bottom": {"right": ["menu"], "progressPadding": 1e17}
	}`)
	require.True(t, result.IsValid)
	screen := layout.Compose(result.Themes[0], snapshot.Default())

	var out string
	require.NotPanics(t, func() { out = Styled(screen, 80) })
	require.Contains(t, out, "back")
	require.Contains(t, out, "menu")
	for _, line := range strings.Split(out, "\n") {
		require.Less(t, lipgloss.Width(line), 8*maxCells)
	}
}

func TestCellConversionIsClamped(t *testing.T) {
	t.Parallel()

	require.Equal(t, maxCells, cols(1e17))
	require.Equal(t, maxCells, lines(math.Inf(1)))
	require.Equal(t, 0, cols(-40))
	require.Equal(t, 0, cols(math.NaN()))
	require.Equal(t, 2, cols(16))
	require.Len(t, spaces(1<<40), maxCells)
}

func trimmed(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, strings.TrimRight(line, " "))
	}
	return out
}
