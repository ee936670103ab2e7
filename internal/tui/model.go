package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/skinkit/internal/layout"
	"github.com/alexisbeaulieu97/skinkit/internal/snapshot"
	"github.com/alexisbeaulieu97/skinkit/internal/theme"
)

// tickInterval is how often the simulated playback clock advances.
const tickInterval = time.Second

type tickMsg struct{}

// Model contains the Bubbletea state for the interactive theme preview.
type Model struct {
	themes   []theme.ThemeDef
	index    int
	snap     snapshot.Snapshot
	composer *layout.Composer
	keys     keyMap
	help     help.Model
	warnings int
	width    int
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithComposer sets the composer used to lay out each frame.
func WithComposer(c *layout.Composer) Option {
	return func(m *Model) {
		m.composer = c
	}
}

// WithWarnings sets the number of parse warnings shown in the footer.
func WithWarnings(n int) Option {
	return func(m *Model) {
		m.warnings = n
	}
}

// WithStartTheme selects the theme with id if present.
func WithStartTheme(id string) Option {
	return func(m *Model) {
		for i, def := range m.themes {
			if def.ID == id {
				m.index = i
				return
			}
		}
	}
}

// NewModel constructs a preview over themes starting from snap.
func NewModel(themes []theme.ThemeDef, snap snapshot.Snapshot, opts ...Option) Model {
	m := Model{
		themes: themes,
		snap:   snap,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.composer == nil {
		m.composer = layout.NewComposer()
	}
	return m
}

// Init starts the playback clock.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

// Snapshot returns the current controller state.
func (m Model) Snapshot() snapshot.Snapshot {
	return m.snap
}

// Theme returns the theme being previewed. The second result is false when
// there are no themes.
func (m Model) Theme() (theme.ThemeDef, bool) {
	if len(m.themes) == 0 {
		return theme.ThemeDef{}, false
	}
	return m.themes[m.index], true
}

// Screen composes the current frame.
func (m Model) Screen() layout.Screen {
	def, ok := m.Theme()
	if !ok {
		return layout.Screen{}
	}
	return m.composer.Compose(def, m.snap)
}

// IsQuitting reports whether the user asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

func (m *Model) cycleTheme(step int) {
	if len(m.themes) == 0 {
		return
	}
	m.index = (m.index + step + len(m.themes)) % len(m.themes)
}

func (m *Model) seek(delta int) {
	m.snap.CurrentPosition = layout.SeekTimecode(m.snap.CurrentPosition, m.snap.EpisodeDuration, delta)
}
