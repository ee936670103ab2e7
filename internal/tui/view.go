package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/skinkit/internal/render"
	"github.com/alexisbeaulieu97/skinkit/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	def, ok := m.Theme()
	if !ok {
		return emptyStyle.Render("No themes to preview.")
	}

	width := m.width
	if width <= 0 {
		width = render.DefaultWidth
	}

	header := titleStyle.Render(fmt.Sprintf("skinkit • %s", def.Name)) +
		mutedStyle.Render(fmt.Sprintf("  %d/%d  %s", m.index+1, len(m.themes), def.ID))

	sections := []string{
		header,
		components.NewStatus(m.snap).View(onStyle, offStyle),
		screenStyle.Render(render.Styled(m.Screen(), width)),
	}
	if m.warnings > 0 {
		sections = append(sections, warnStyle.Render(fmt.Sprintf("%d warning(s); run validate for details", m.warnings)))
	}
	sections = append(sections, footerStyle.Width(width).Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
