package app

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/glimmer/internal/highlight"
	"github.com/zjrosen/glimmer/internal/style"
)

// Cursor uses reverse video so it stays visible over any decoration.
var cursorStyle = lipgloss.NewStyle().Reverse(true)

// segState classifies a rune for rendering. Blink wins over the slot
// decoration; the cursor is handled separately and wins over both.
type segState struct {
	slot    int
	hasSlot bool
	blink   bool
}

// renderLine decorates one buffer line. lineStart is the byte offset of
// the line within the full document text; cursorCol is the cursor's
// rune index in this line, or -1 when the cursor is elsewhere.
func renderLine(line string, lineStart int, decs *highlight.Decorations, res *style.Resolver, cursorCol int) string {
	runes := []rune(line)

	if len(runes) == 0 {
		if cursorCol == 0 {
			return cursorStyle.Render(" ")
		}
		return " "
	}

	var sb strings.Builder
	var seg []rune
	var cur segState

	flush := func() {
		if len(seg) == 0 {
			return
		}
		text := string(seg)
		switch {
		case cur.blink:
			sb.WriteString(res.Blink().Render(text))
		case cur.hasSlot:
			sb.WriteString(res.Sample(cur.slot).Render(text))
		default:
			sb.WriteString(text)
		}
		seg = seg[:0]
	}

	byteOff := 0
	for col, r := range runes {
		global := lineStart + byteOff
		st := segState{blink: decs.BlinkAt(global)}
		if !st.blink {
			if slot, ok := decs.SlotAt(global); ok {
				st.slot, st.hasSlot = slot, true
			}
		}

		if col == cursorCol {
			flush()
			sb.WriteString(cursorStyle.Render(string(r)))
			cur = segState{}
		} else {
			if st != cur {
				flush()
				cur = st
			}
			seg = append(seg, r)
		}
		byteOff += utf8.RuneLen(r)
	}
	flush()

	if cursorCol == len(runes) {
		sb.WriteString(cursorStyle.Render(" "))
	}
	return sb.String()
}
