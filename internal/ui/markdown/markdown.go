// Package markdown renders styled markdown for the playground's
// overlays.
package markdown

import (
	"github.com/charmbracelet/glamour"
)

// Overlay wrap bounds. Below MinWidth glamour breaks nearly every
// word; above MaxWidth the overlay outgrows small terminals.
const (
	MinWidth = 20
	MaxWidth = 64
)

// overlayStyle strips document margins so rendered markdown sits flush
// inside a bordered overlay. Everything else inherits from glamour's
// auto dark/light style.
const overlayStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// ClampWidth bounds a requested wrap width to the overlay range.
func ClampWidth(width int) int {
	if width < MinWidth {
		return MinWidth
	}
	if width > MaxWidth {
		return MaxWidth
	}
	return width
}

// Render renders doc at the clamped wrap width. On any renderer
// failure the raw markdown comes back instead, so an overlay always
// has something to show.
func Render(doc string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithStylesFromJSONBytes([]byte(overlayStyle)),
		glamour.WithWordWrap(ClampWidth(width)),
	)
	if err != nil {
		return doc
	}
	out, err := r.Render(doc)
	if err != nil {
		return doc
	}
	return out
}
