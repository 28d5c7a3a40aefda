package utils

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Napier40/Akademia-Studenta/models"
)

// NormalizeLang maps a requested locale onto a supported one. Regional
// variants degrade to their base language ("en-US" -> "en", "pl-PL" ->
// "pl"); anything else is unsupported.
func NormalizeLang(lang string) (string, bool) {
	s := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	if models.ValidLang(s) {
		return s, true
	}
	return "", false
}

// ResolveLang picks the content language for a request. Precedence:
// explicit ?lang= override, then the sticky Lang header sent by the
// client, then Accept-Language negotiation. Defaults to English.
func ResolveLang(c *gin.Context) string {
	if l, ok := NormalizeLang(c.Query("lang")); ok {
		return l
	}
	if l, ok := NormalizeLang(c.GetHeader("Lang")); ok {
		return l
	}
	for _, part := range strings.Split(c.GetHeader("Accept-Language"), ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if l, ok := NormalizeLang(tag); ok {
			return l
		}
	}
	return models.LangEN
}
