package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Lock      key.Binding
	Play      key.Binding
	Offline   key.Binding
	Forward   key.Binding
	Backward  key.Binding
	Mobile    key.Binding
	SeekAhead key.Binding
	SeekBack  key.Binding
	Skip      key.Binding
	NextTheme key.Binding
	PrevTheme key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Lock:      key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "lock")),
		Play:      key.NewBinding(key.WithKeys(" ", "space", "p"), key.WithHelp("space", "play/pause")),
		Offline:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "offline")),
		Forward:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "next available")),
		Backward:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "prev available")),
		Mobile:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mobile")),
		SeekAhead: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "seek")),
		SeekBack:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "rewind")),
		Skip:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		NextTheme: key.NewBinding(key.WithKeys("tab", "n"), key.WithHelp("tab", "next theme")),
		PrevTheme: key.NewBinding(key.WithKeys("shift+tab", "N"), key.WithHelp("shift+tab", "prev theme")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Lock, k.Play, k.NextTheme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Lock, k.Play, k.Offline, k.Mobile},
		{k.Forward, k.Backward, k.SeekAhead, k.SeekBack, k.Skip},
		{k.NextTheme, k.PrevTheme, k.Help, k.Quit},
	}
}
