package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Napier40/Akademia-Studenta/models"
)

// stubTranslator prefixes translated text so tests can tell what passed
// through the provider. failOn aborts on a matching source text.
type stubTranslator struct {
	available bool
	failOn    string
	calls     int
}

func (s *stubTranslator) translate(text string) (string, error) {
	s.calls++
	if s.failOn != "" && text == s.failOn {
		return "", errors.New("provider rejected request")
	}
	return fmt.Sprintf("[t]%s", text), nil
}

func (s *stubTranslator) Translate(text, _, _ string) (string, error) {
	return s.translate(text)
}

func (s *stubTranslator) TranslateHTML(html, _, _ string) (string, error) {
	return s.translate(html)
}

func (s *stubTranslator) IsAvailable() bool { return s.available }

func customerPostEN() *models.BlogPost {
	return &models.BlogPost{
		TitleEN:          "My Trip",
		ContentEN:        "<p>It was great.</p>",
		ExcerptEN:        "It was great.",
		CategoryEN:       "Travel",
		TitlePL:          models.PlaceholderTitlePL,
		ContentPL:        models.PlaceholderContentPL,
		ExcerptPL:        models.PlaceholderTitlePL,
		Status:           models.PostStatusPending,
		IsCustomerPost:   true,
		CustomerLanguage: models.LangEN,
	}
}

func TestTranslateBlogPostFillsPlaceholders(t *testing.T) {
	ts := &stubTranslator{available: true}
	post := customerPostEN()

	changed, err := TranslateBlogPost(post, ts)
	assert.NoError(t, err)
	assert.True(t, changed)

	assert.Equal(t, "[t]My Trip", post.TitlePL)
	assert.Equal(t, "[t]<p>It was great.</p>", post.ContentPL)
	assert.Equal(t, "[t]It was great.", post.ExcerptPL)
	assert.Equal(t, "[t]Travel", post.CategoryPL)

	// Customer-language fields are never touched.
	assert.Equal(t, "My Trip", post.TitleEN)
	assert.Equal(t, "<p>It was great.</p>", post.ContentEN)
}

func TestTranslateBlogPostPolishSource(t *testing.T) {
	ts := &stubTranslator{available: true}
	post := &models.BlogPost{
		TitlePL:          "Moja podróż",
		ContentPL:        "<p>Było świetnie.</p>",
		TitleEN:          models.PlaceholderTitleEN,
		ContentEN:        models.PlaceholderContentEN,
		CustomerLanguage: models.LangPL,
	}

	changed, err := TranslateBlogPost(post, ts)
	assert.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "[t]Moja podróż", post.TitleEN)
	assert.Equal(t, "[t]<p>Było świetnie.</p>", post.ContentEN)
}

func TestTranslateBlogPostIdempotent(t *testing.T) {
	ts := &stubTranslator{available: true}
	post := customerPostEN()

	changed, err := TranslateBlogPost(post, ts)
	assert.NoError(t, err)
	assert.True(t, changed)

	firstCalls := ts.calls
	changed, err = TranslateBlogPost(post, ts)
	assert.NoError(t, err)
	assert.False(t, changed, "second pass must be a no-op")
	assert.Equal(t, firstCalls, ts.calls, "no provider calls on second pass")
}

func TestTranslateBlogPostNoCustomerLanguage(t *testing.T) {
	ts := &stubTranslator{available: true}
	post := customerPostEN()
	post.CustomerLanguage = ""

	changed, err := TranslateBlogPost(post, ts)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Zero(t, ts.calls)
	assert.Equal(t, models.PlaceholderTitlePL, post.TitlePL)
}

func TestTranslateBlogPostTranslatorUnavailable(t *testing.T) {
	ts := &stubTranslator{available: false}
	post := customerPostEN()

	changed, err := TranslateBlogPost(post, ts)
	assert.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, models.PlaceholderTitlePL, post.TitlePL)
}

func TestTranslateBlogPostAbortsOnFieldFailure(t *testing.T) {
	ts := &stubTranslator{available: true, failOn: "<p>It was great.</p>"}
	post := customerPostEN()

	changed, err := TranslateBlogPost(post, ts)
	assert.Error(t, err)
	assert.False(t, changed)

	// The title translated before the failure stays on the object; the
	// fields after the failed one are untouched.
	assert.Equal(t, "[t]My Trip", post.TitlePL)
	assert.Equal(t, models.PlaceholderContentPL, post.ContentPL)
	assert.Equal(t, models.PlaceholderTitlePL, post.ExcerptPL)
	assert.Empty(t, post.CategoryPL)
}

func TestNeedsTranslation(t *testing.T) {
	assert.True(t, NeedsTranslation(""))
	assert.True(t, NeedsTranslation("  "))
	assert.True(t, NeedsTranslation(models.PlaceholderTitleEN))
	assert.True(t, NeedsTranslation(models.PlaceholderTitlePL))
	assert.False(t, NeedsTranslation("A real title"))
}

func TestContainsPlaceholder(t *testing.T) {
	assert.True(t, containsPlaceholder("<p>pending translation</p>"))
	assert.True(t, containsPlaceholder("<p>Oczekuje na tłumaczenie</p>"))
	assert.False(t, containsPlaceholder("<p>Real content.</p>"))
}
