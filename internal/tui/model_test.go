package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skinkit/internal/snapshot"
	"github.com/alexisbeaulieu97/skinkit/internal/theme"
)

func testThemes(t *testing.T) []theme.ThemeDef {
	t.Helper()
	result := theme.ParseString(`{"themes": [
	  {"id": "first", "name": "First", "top": {"left": ["back"]}, "middle": ["play_pause"]},
	  {"id": "second", "name": "Second", "top": {"right": [{"id": "next", "visibleWhen": "canGoForward"}]}}
	]}`)
	require.True(t, result.IsValid, result.Errors)
	return result.Themes
}

func TestNewModelInitialisesState(t *testing.T) {
	t.Parallel()

	themes := testThemes(t)
	m := NewModel(themes, snapshot.Default())

	def, ok := m.Theme()
	require.True(t, ok)
	require.Equal(t, "first", def.ID)
	require.NotNil(t, m.composer)
	require.False(t, m.IsQuitting())
}

func TestModelStartTheme(t *testing.T) {
	t.Parallel()

	m := NewModel(testThemes(t), snapshot.Default(), WithStartTheme("second"))
	def, _ := m.Theme()
	require.Equal(t, "second", def.ID)

	m = NewModel(testThemes(t), snapshot.Default(), WithStartTheme("missing"))
	def, _ = m.Theme()
	require.Equal(t, "first", def.ID)
}

func TestModelInitReturnsTickCommand(t *testing.T) {
	t.Parallel()

	m := NewModel(testThemes(t), snapshot.Default())
	require.NotNil(t, m.Init())
}

func TestModelWithoutThemes(t *testing.T) {
	t.Parallel()

	m := NewModel(nil, snapshot.Default())
	_, ok := m.Theme()
	require.False(t, ok)
	require.Nil(t, m.Screen().Top)

	m.cycleTheme(1)
	require.Zero(t, m.index)
}

func TestModelScreenFollowsSnapshot(t *testing.T) {
	t.Parallel()

	m := NewModel(testThemes(t), snapshot.Default(), WithStartTheme("second"))
	require.Nil(t, m.Screen().Top)

	m.snap.CanGoForward = true
	require.NotNil(t, m.Screen().Top)
}
