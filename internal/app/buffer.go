package app

import (
	"strings"

	"github.com/google/uuid"
)

// Buffer is the playground's editable document. It implements
// highlight.Document: the engine sees the joined text, the model edits
// lines in place.
type Buffer struct {
	id     string
	lines  []string
	lang   string
	render string // cached join, invalidated on edit
	dirty  bool
}

// NewBuffer creates a buffer with the given initial content and
// language identifier.
func NewBuffer(content, lang string) *Buffer {
	return &Buffer{
		id:    uuid.NewString(),
		lines: strings.Split(content, "\n"),
		lang:  lang,
		dirty: true,
	}
}

// ID identifies the buffer for logging and tracing.
func (b *Buffer) ID() string { return b.id }

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	if b.dirty {
		b.render = strings.Join(b.lines, "\n")
		b.dirty = false
	}
	return b.render
}

// LanguageID returns the buffer's language identifier.
func (b *Buffer) LanguageID() string { return b.lang }

// SetLanguage changes the buffer's language identifier.
func (b *Buffer) SetLanguage(lang string) { b.lang = lang }

// Lines returns the buffer's lines. Callers must not mutate the slice.
func (b *Buffer) Lines() []string { return b.lines }

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the given line, or "" out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// LineStart returns the byte offset of the start of row in Text().
func (b *Buffer) LineStart(row int) int {
	offset := 0
	for i := 0; i < row && i < len(b.lines); i++ {
		offset += len(b.lines[i]) + 1 // +1 for the joining newline
	}
	return offset
}

// InsertRune inserts r at (row, col), col in runes. Returns the new
// column.
func (b *Buffer) InsertRune(row, col int, r rune) int {
	if row < 0 || row >= len(b.lines) {
		return col
	}
	runes := []rune(b.lines[row])
	col = clamp(col, 0, len(runes))
	runes = append(runes[:col], append([]rune{r}, runes[col:]...)...)
	b.lines[row] = string(runes)
	b.dirty = true
	return col + 1
}

// SplitLine breaks the line at (row, col) in two. Returns the cursor
// position at the start of the new line.
func (b *Buffer) SplitLine(row, col int) (int, int) {
	if row < 0 || row >= len(b.lines) {
		return row, col
	}
	runes := []rune(b.lines[row])
	col = clamp(col, 0, len(runes))
	before, after := string(runes[:col]), string(runes[col:])

	b.lines[row] = before
	b.lines = append(b.lines[:row+1], append([]string{after}, b.lines[row+1:]...)...)
	b.dirty = true
	return row + 1, 0
}

// DeleteBack removes the rune before (row, col), joining lines when the
// cursor sits at a line start. Returns the new cursor position.
func (b *Buffer) DeleteBack(row, col int) (int, int) {
	if row < 0 || row >= len(b.lines) {
		return row, col
	}
	if col > 0 {
		runes := []rune(b.lines[row])
		col = clamp(col, 1, len(runes))
		b.lines[row] = string(append(runes[:col-1], runes[col:]...))
		b.dirty = true
		return row, col - 1
	}
	if row == 0 {
		return row, col
	}
	// Join with previous line.
	prev := []rune(b.lines[row-1])
	b.lines[row-1] += b.lines[row]
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	b.dirty = true
	return row - 1, len(prev)
}

// LineLen returns the rune length of row.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len([]rune(b.lines[row]))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
