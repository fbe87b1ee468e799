package lockview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("205")
	colorMuted   = lipgloss.Color("241")
	colorError   = lipgloss.Color("196")

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleError = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorMuted).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(colorPrimary)
	return s
}

// View renders the current table plus a footer hint.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := styleTitle.Render("nfslock watch")
	body := m.table.View()

	footer := styleMuted.Render("q to quit")
	if m.lastErr != nil {
		footer = styleError.Render(fmt.Sprintf("snapshot error: %v", m.lastErr))
	}

	return title + "\n" + body + "\n" + footer + "\n"
}
