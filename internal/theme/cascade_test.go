package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skinkit/internal/coerce"
	"github.com/alexisbeaulieu97/skinkit/internal/color"
)

func TestMashButtonStyle(t *testing.T) {
	t.Parallel()

	cascade := Cascade{}
	base := DefaultButtonStyle()

	require.Equal(t, base, cascade.MashButtonStyle(base, map[string]any{}))
	require.Equal(t, base, cascade.MashButtonStyle(base, nil))

	got := cascade.MashButtonStyle(base, map[string]any{"size": 99.0})
	want := base
	want.Size = 99
	require.Equal(t, want, got)
}

func TestMashSkipsUncoercibleFields(t *testing.T) {
	t.Parallel()

	var warnings []string
	cascade := Cascade{Warn: func(msg string) { warnings = append(warnings, msg) }}
	base := DefaultPanelStyle()

	got := cascade.MashPanelStyle(base, map[string]any{
		"radius":  "huge",
		"enabled": "maybe",
		"color":   "mystery",
		"blur":    nil,
	})
	require.Equal(t, base, got)
	require.Equal(t, []string{`color: unresolved color "mystery"`}, warnings)
}

func TestMashPaddingUsesBaseAsFallback(t *testing.T) {
	t.Parallel()

	cascade := Cascade{}
	base := DefaultChipStyle()

	got := cascade.MashChipStyle(base, map[string]any{"padding": map[string]any{"top": 9.0}})
	require.InDelta(t, 9, got.Padding.Top, 1e-9)
	require.InDelta(t, base.Padding.Left, got.Padding.Left, 1e-9)
	require.InDelta(t, base.Padding.Bottom, got.Padding.Bottom, 1e-9)

	got = cascade.MashChipStyle(base, map[string]any{"padding": 2.0})
	require.Equal(t, coerce.All(2), got.Padding)
}

func TestMashResolvesPaletteColors(t *testing.T) {
	t.Parallel()

	cascade := Cascade{Resolver: color.DefaultResolver(), Palette: color.Palette{"ink": "#000"}}
	got := cascade.MashTextStyle(DefaultTextStyle(), map[string]any{"textColor": "@ink", "fontWeight": "w300", "letterSpacing": "0.5"})
	require.Equal(t, "rgba(0,0,0,1.000)", got.TextColor)
	require.Equal(t, 300, got.FontWeight)
	require.InDelta(t, 0.5, got.LetterSpacing, 1e-9)
}

func TestReduceAppliesLayersInOrder(t *testing.T) {
	t.Parallel()

	cascade := Cascade{}
	base := DefaultButtonStyle()

	got := Reduce(base, cascade.MashButtonStyle,
		map[string]any{"size": 50.0, "radius": 4.0},
		nil,
		map[string]any{"size": 60.0},
	)
	require.InDelta(t, 60, got.Size, 1e-9)
	require.InDelta(t, 4, got.Radius, 1e-9)
	require.InDelta(t, base.IconSize, got.IconSize, 1e-9)
}
