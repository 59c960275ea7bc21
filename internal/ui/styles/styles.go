// Package styles contains Lip Gloss style definitions and the built-in
// highlight palettes.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - playground chrome
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Empty-buffer placeholder

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Status bar separator

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Effects-on markers
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Oversized-document notice
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Config errors

	// Status bar styles
	StatusBarStyle  = lipgloss.NewStyle().Foreground(TextMutedColor)
	StatusKeyStyle  = lipgloss.NewStyle().Foreground(TextPrimaryColor).Bold(true)
	StatusOnStyle   = lipgloss.NewStyle().Foreground(StatusSuccessColor).Bold(true)
	StatusWarnStyle = lipgloss.NewStyle().Foreground(StatusWarningColor)

	// Placeholder style for an empty buffer
	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor)

	// Help overlay frame
	HelpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderDefaultColor).
			Padding(0, 1)
)
