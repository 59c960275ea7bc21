// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the playground. Plain characters
// are reserved for typing; effect toggles live on ctrl chords.
type KeyMap struct {
	// Master switch
	Toggle key.Binding

	// Effects
	ToggleGlow      key.Binding
	ToggleUnderline key.Binding
	ToggleBlink     key.Binding
	ToggleFade      key.Binding
	TogglePulse     key.Binding
	ToggleLanguage  key.Binding

	// Animation
	SpeedUp   key.Binding
	SpeedDown key.Binding

	// Language cycling
	NextLanguage key.Binding

	// General
	Help key.Binding
	Logs key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle highlighting"),
		),
		ToggleGlow: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "toggle glow"),
		),
		ToggleUnderline: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "toggle underline"),
		),
		ToggleBlink: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "toggle blink"),
		),
		ToggleFade: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "toggle fade"),
		),
		TogglePulse: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "toggle pulse"),
		),
		ToggleLanguage: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "toggle language mode"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("ctrl+up"),
			key.WithHelp("ctrl+↑", "faster rotation"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("ctrl+down"),
			key.WithHelp("ctrl+↓", "slower rotation"),
		),
		NextLanguage: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next language"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "help"),
		),
		Logs: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "log overlay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}
