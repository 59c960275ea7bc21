package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/glimmer/internal/ui/help"
	"github.com/zjrosen/glimmer/internal/ui/styles"
)

func (m Model) helpView() string {
	// The border and padding eat four columns; markdown clamps the rest.
	box := styles.HelpBorderStyle.Render(help.Render(m.keymap, m.width-4))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
