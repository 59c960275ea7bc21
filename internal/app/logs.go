package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/glimmer/internal/ui/styles"
)

// logOverlayLines is how many recent entries the overlay shows.
const logOverlayLines = 15

func (m Model) logsView() string {
	lines := m.logLines
	if len(lines) > logOverlayLines {
		lines = lines[len(lines)-logOverlayLines:]
	}

	body := strings.Join(lines, "\n")
	if body == "" {
		body = styles.PlaceholderStyle.Render("no log entries · run with --debug to capture them")
	}

	box := styles.HelpBorderStyle.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
