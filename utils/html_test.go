package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractExcerptStripsMarkup(t *testing.T) {
	html := "<p>Hello <strong>world</strong>.</p><p>Second paragraph.</p>"
	assert.Equal(t, "Hello world. Second paragraph.", ExtractExcerpt(html, 100))
}

func TestExtractExcerptCutsAtWordBoundary(t *testing.T) {
	html := "<p>one two three four five</p>"
	got := ExtractExcerpt(html, 12)
	assert.Equal(t, "one two...", got)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestExtractExcerptPlainTextPassThrough(t *testing.T) {
	assert.Equal(t, "just text", ExtractExcerpt("just   text", 50))
}
