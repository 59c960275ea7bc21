// Package help contains the help overlay content.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/zjrosen/glimmer/internal/keys"
	"github.com/zjrosen/glimmer/internal/ui/markdown"
)

// section is a titled group of keybindings.
type section struct {
	title    string
	bindings []key.Binding
}

func sections(km keys.KeyMap) []section {
	return []section{
		{
			title: "Effects",
			bindings: []key.Binding{
				km.Toggle,
				km.ToggleGlow,
				km.ToggleUnderline,
				km.ToggleBlink,
				km.ToggleFade,
				km.TogglePulse,
			},
		},
		{
			title: "Keywords",
			bindings: []key.Binding{
				km.ToggleLanguage,
				km.NextLanguage,
			},
		},
		{
			title: "Animation",
			bindings: []key.Binding{
				km.SpeedUp,
				km.SpeedDown,
			},
		},
		{
			title: "General",
			bindings: []key.Binding{
				km.Help,
				km.Logs,
				km.Quit,
			},
		},
	}
}

// Markdown builds the help document for the given keymap. Plain
// characters type into the buffer, so only the chords are listed.
func Markdown(km keys.KeyMap) string {
	var b strings.Builder
	b.WriteString("# glimmer\n\n")
	b.WriteString("Type to edit the buffer; keywords light up as you go.\n")

	for _, s := range sections(km) {
		fmt.Fprintf(&b, "\n## %s\n\n", s.title)
		for _, binding := range s.bindings {
			h := binding.Help()
			fmt.Fprintf(&b, "- `%s` %s\n", h.Key, h.Desc)
		}
	}
	return b.String()
}

// Render renders the help document styled for the given width.
func Render(km keys.KeyMap, width int) string {
	return markdown.Render(Markdown(km), width)
}
