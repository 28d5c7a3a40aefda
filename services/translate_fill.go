package services

import (
	"strings"

	"github.com/Napier40/Akademia-Studenta/models"
)

// Translator is the outbound translation capability used by the fill
// workflow. *TranslationService implements it; tests substitute a stub.
type Translator interface {
	Translate(text, sourceLang, targetLang string) (string, error)
	TranslateHTML(html, sourceLang, targetLang string) (string, error)
	IsAvailable() bool
}

// NeedsTranslation reports whether a short bilingual field (title,
// excerpt) still awaits translation: empty or equal to a placeholder.
func NeedsTranslation(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || v == models.PlaceholderTitleEN || v == models.PlaceholderTitlePL
}

// containsPlaceholder matches the placeholder sentinel anywhere in a
// longer field, case-insensitively. Content keeps its placeholder inside
// generated markup, so an exact comparison is not enough there.
func containsPlaceholder(value string) bool {
	v := strings.ToLower(value)
	return strings.Contains(v, strings.ToLower(models.PlaceholderTitleEN)) ||
		strings.Contains(v, strings.ToLower(models.PlaceholderTitlePL))
}

// TranslateBlogPost backfills the non-customer language of a customer
// submission. The post is mutated in memory only; the caller persists
// after a fully successful pass. Returns whether any field changed.
//
// The workflow is idempotent: a fully translated post yields (false, nil).
// A post without a customer language, or an unavailable translator, is a
// no-op. On a per-field provider failure the remaining fields are skipped
// and the error returned; fields already filled in this pass stay set on
// the object but are not persisted here.
func TranslateBlogPost(post *models.BlogPost, ts Translator) (bool, error) {
	if !models.ValidLang(post.CustomerLanguage) {
		return false, nil
	}
	if !ts.IsAvailable() {
		return false, nil
	}

	var (
		src, dst                                      string
		titleSrc, contentSrc, excerptSrc, categorySrc string
		titleDst, contentDst, excerptDst, categoryDst *string
	)
	if post.CustomerLanguage == models.LangEN {
		src, dst = models.LangEN, models.LangPL
		titleSrc, titleDst = post.TitleEN, &post.TitlePL
		contentSrc, contentDst = post.ContentEN, &post.ContentPL
		excerptSrc, excerptDst = post.ExcerptEN, &post.ExcerptPL
		categorySrc, categoryDst = post.CategoryEN, &post.CategoryPL
	} else {
		src, dst = models.LangPL, models.LangEN
		titleSrc, titleDst = post.TitlePL, &post.TitleEN
		contentSrc, contentDst = post.ContentPL, &post.ContentEN
		excerptSrc, excerptDst = post.ExcerptPL, &post.ExcerptEN
		categorySrc, categoryDst = post.CategoryPL, &post.CategoryEN
	}

	changed := false

	if NeedsTranslation(*titleDst) {
		translated, err := ts.Translate(titleSrc, src, dst)
		if err != nil {
			return false, err
		}
		*titleDst = translated
		changed = true
	}

	if *contentDst == "" || containsPlaceholder(*contentDst) {
		translated, err := ts.TranslateHTML(contentSrc, src, dst)
		if err != nil {
			return false, err
		}
		*contentDst = translated
		changed = true
	}

	if excerptSrc != "" && (*excerptDst == "" || containsPlaceholder(*excerptDst)) {
		translated, err := ts.Translate(excerptSrc, src, dst)
		if err != nil {
			return false, err
		}
		*excerptDst = translated
		changed = true
	}

	if categorySrc != "" && *categoryDst == "" {
		translated, err := ts.Translate(categorySrc, src, dst)
		if err != nil {
			return false, err
		}
		*categoryDst = translated
		changed = true
	}

	return changed, nil
}
