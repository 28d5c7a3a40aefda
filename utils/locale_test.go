package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(target string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestNormalizeLang(t *testing.T) {
	for input, want := range map[string]string{
		"en":    "en",
		"EN":    "en",
		"pl":    "pl",
		"pl-PL": "pl",
		"en-US": "en",
		"en_GB": "en",
	} {
		got, ok := NormalizeLang(input)
		assert.True(t, ok, "input %q", input)
		assert.Equal(t, want, got)
	}

	for _, input := range []string{"", "de", "ru-RU", "english"} {
		_, ok := NormalizeLang(input)
		assert.False(t, ok, "input %q", input)
	}
}

func TestResolveLangPrecedence(t *testing.T) {
	// Explicit query override wins over everything.
	c := testContext("/blog?lang=pl", map[string]string{"Lang": "en", "Accept-Language": "en-US"})
	assert.Equal(t, "pl", ResolveLang(c))

	// Sticky header beats Accept-Language.
	c = testContext("/blog", map[string]string{"Lang": "pl", "Accept-Language": "en-US,en;q=0.9"})
	assert.Equal(t, "pl", ResolveLang(c))

	// Accept-Language negotiation.
	c = testContext("/blog", map[string]string{"Accept-Language": "de-DE,pl;q=0.8,en;q=0.5"})
	assert.Equal(t, "pl", ResolveLang(c))

	// Unsupported everywhere degrades to the default.
	c = testContext("/blog?lang=fr", map[string]string{"Accept-Language": "de-DE,ru;q=0.8"})
	assert.Equal(t, "en", ResolveLang(c))

	// Nothing requested at all.
	c = testContext("/blog", nil)
	assert.Equal(t, "en", ResolveLang(c))
}
