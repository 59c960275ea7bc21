package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampWidth(t *testing.T) {
	assert.Equal(t, MinWidth, ClampWidth(0))
	assert.Equal(t, MinWidth, ClampWidth(-10))
	assert.Equal(t, 40, ClampWidth(40))
	assert.Equal(t, MaxWidth, ClampWidth(500))
}

func TestRenderContainsContent(t *testing.T) {
	out := Render("# title\n\nsome body text\n", 40)
	assert.Contains(t, out, "title")
	assert.Contains(t, out, "some body text")
}

func TestRenderNarrowWidthStillRenders(t *testing.T) {
	out := Render("a few words to wrap", 1)
	assert.Contains(t, out, "words")
}
