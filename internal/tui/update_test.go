package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/skinkit/internal/snapshot"
)

func press(t *testing.T, m Model, key tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(key)
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdateTogglesSnapshotFlags(t *testing.T) {
	t.Parallel()

	cases := []struct {
		key   tea.KeyMsg
		check func(snapshot.Snapshot) bool
	}{
		{key: runes("l"), check: func(s snapshot.Snapshot) bool { return s.IsLocked }},
		{key: runes(" "), check: func(s snapshot.Snapshot) bool { return s.IsPlaying }},
		{key: runes("o"), check: func(s snapshot.Snapshot) bool { return s.IsOffline }},
		{key: runes("f"), check: func(s snapshot.Snapshot) bool { return s.CanGoForward }},
		{key: runes("b"), check: func(s snapshot.Snapshot) bool { return s.CanGoBackward }},
		{key: runes("m"), check: func(s snapshot.Snapshot) bool { return s.IsMobile && !s.IsDesktop }},
	}

	for _, tc := range cases {
		m := NewModel(testThemes(t), snapshot.Default())
		m = press(t, m, tc.key)
		require.True(t, tc.check(m.Snapshot()), tc.key.String())
		m = press(t, m, tc.key)
		require.False(t, tc.check(m.Snapshot()), tc.key.String())
	}
}

func TestUpdateSeeks(t *testing.T) {
	t.Parallel()

	snap := snapshot.Default()
	snap.EpisodeDuration = "24:00"
	m := NewModel(testThemes(t), snap)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "00:10", m.Snapshot().CurrentPosition)

	m = press(t, m, runes("s"))
	require.Equal(t, "01:35", m.Snapshot().CurrentPosition)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, "01:25", m.Snapshot().CurrentPosition)
}

func TestUpdateCyclesThemes(t *testing.T) {
	t.Parallel()

	m := NewModel(testThemes(t), snapshot.Default())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	def, _ := m.Theme()
	require.Equal(t, "second", def.ID)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	def, _ = m.Theme()
	require.Equal(t, "first", def.ID)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	def, _ = m.Theme()
	require.Equal(t, "second", def.ID)
}

func TestUpdateTickAdvancesOnlyWhilePlaying(t *testing.T) {
	t.Parallel()

	snap := snapshot.Default()
	snap.EpisodeDuration = "24:00"
	m := NewModel(testThemes(t), snap)

	updated, cmd := m.Update(tickMsg{})
	require.NotNil(t, cmd)
	m = updated.(Model)
	require.Equal(t, "00:00", m.Snapshot().CurrentPosition)

	m.snap.IsPlaying = true
	updated, _ = m.Update(tickMsg{})
	m = updated.(Model)
	require.Equal(t, "00:01", m.Snapshot().CurrentPosition)
}

func TestUpdateHandlesTeaMessages(t *testing.T) {
	t.Parallel()

	m := NewModel(testThemes(t), snapshot.Default())
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Nil(t, cmd)
	m = updated.(Model)
	require.Equal(t, 100, m.width)
	require.Equal(t, 100, m.help.Width)

	m = press(t, m, runes("?"))
	require.True(t, m.help.ShowAll)

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	m = updated.(Model)
	require.True(t, m.IsQuitting())
}
