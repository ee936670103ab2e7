package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.snap.IsPlaying && !m.snap.IsBuffering {
			m.seek(1)
		}
		return m, tick()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.QuitMsg:
		m.quitting = true
		return m, nil
	}

	return m, nil
}

// handleKeyPress toggles snapshot flags, seeks and switches themes.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Lock):
		m.snap.IsLocked = !m.snap.IsLocked
	case key.Matches(msg, m.keys.Play):
		m.snap.IsPlaying = !m.snap.IsPlaying
	case key.Matches(msg, m.keys.Offline):
		m.snap.IsOffline = !m.snap.IsOffline
	case key.Matches(msg, m.keys.Forward):
		m.snap.CanGoForward = !m.snap.CanGoForward
	case key.Matches(msg, m.keys.Backward):
		m.snap.CanGoBackward = !m.snap.CanGoBackward
	case key.Matches(msg, m.keys.Mobile):
		m.snap.IsMobile = !m.snap.IsMobile
		m.snap.IsDesktop = !m.snap.IsMobile

	case key.Matches(msg, m.keys.SeekAhead):
		m.seek(m.snap.PlayerSettings.SeekDuration)
	case key.Matches(msg, m.keys.SeekBack):
		m.seek(-m.snap.PlayerSettings.SeekDuration)
	case key.Matches(msg, m.keys.Skip):
		m.seek(m.snap.PlayerSettings.SkipDuration)

	case key.Matches(msg, m.keys.NextTheme):
		m.cycleTheme(1)
	case key.Matches(msg, m.keys.PrevTheme):
		m.cycleTheme(-1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}
