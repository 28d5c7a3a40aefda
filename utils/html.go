package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractExcerpt strips markup from HTML content and returns up to max
// characters of plain text, cut at a word boundary. Used to derive an
// excerpt when a submission arrives without one.
func ExtractExcerpt(html string, max int) string {
	text := html
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		text = doc.Text()
	}
	text = strings.Join(strings.Fields(text), " ")

	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	cut := string(runes[:max])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "..."
}
