package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/skinkit/internal/snapshot"
)

// Flag is one boolean of the controller state shown in the status bar.
type Flag struct {
	Name string
	On   bool
}

// Status renders the snapshot flags that drive zone and item conditions.
type Status struct {
	flags    []Flag
	position string
	duration string
}

// NewStatus creates a status component for snap.
func NewStatus(snap snapshot.Snapshot) Status {
	return Status{
		flags: []Flag{
			{Name: "locked", On: snap.IsLocked},
			{Name: "playing", On: snap.IsPlaying},
			{Name: "offline", On: snap.IsOffline},
			{Name: "forward", On: snap.CanGoForward},
			{Name: "backward", On: snap.CanGoBackward},
			{Name: "mobile", On: snap.IsMobile},
		},
		position: snap.CurrentPosition,
		duration: snap.EpisodeDuration,
	}
}

// Flags returns the flags in display order.
func (s Status) Flags() []Flag {
	return s.flags
}

// View renders each flag with on or off and appends the playback position.
func (s Status) View(on, off lipgloss.Style) string {
	parts := make([]string, 0, len(s.flags)+1)
	for _, flag := range s.flags {
		if flag.On {
			parts = append(parts, on.Render("●"+flag.Name))
		} else {
			parts = append(parts, off.Render("○"+flag.Name))
		}
	}
	parts = append(parts, off.Render(s.position+" / "+s.duration))
	return strings.Join(parts, " ")
}
