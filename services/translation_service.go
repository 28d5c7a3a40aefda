package services

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrTranslationUnavailable is returned when no API key is configured.
// Callers that can degrade gracefully check IsAvailable first.
var ErrTranslationUnavailable = errors.New("translation service not available")

// TranslationService translates EN <-> PL content through the DeepL API.
// Successful translations are cached in Redis for 30 days so repeated
// fills of the same text do not spend provider quota.
type TranslationService struct {
	apiURL string
	apiKey string
	client *http.Client
	redis  *redis.Client
}

// NewTranslationService builds the service. apiKey may be empty, in which
// case the service reports unavailable and every call degrades to the
// original text. rdb may be nil to disable caching.
func NewTranslationService(apiURL, apiKey string, rdb *redis.Client) *TranslationService {
	if apiURL == "" {
		apiURL = "https://api-free.deepl.com/v2"
	}
	return &TranslationService{
		apiURL: strings.TrimRight(apiURL, "/"),
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
		redis:  rdb,
	}
}

// IsAvailable reports whether the service is configured.
func (ts *TranslationService) IsAvailable() bool {
	return ts.apiKey != ""
}

// Translate translates plain text between the supported languages.
func (ts *TranslationService) Translate(text, sourceLang, targetLang string) (string, error) {
	return ts.translate(text, sourceLang, targetLang, false)
}

// TranslateHTML translates markup content, instructing the provider to
// preserve tags.
func (ts *TranslationService) TranslateHTML(html, sourceLang, targetLang string) (string, error) {
	return ts.translate(html, sourceLang, targetLang, true)
}

func (ts *TranslationService) translate(text, sourceLang, targetLang string, html bool) (string, error) {
	if !ts.IsAvailable() {
		return text, ErrTranslationUnavailable
	}
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	cacheKey := ts.cacheKey(text, sourceLang, targetLang, html)
	if ts.redis != nil {
		if cached, err := ts.redis.Get(context.Background(), cacheKey).Result(); err == nil && cached != "" {
			return cached, nil
		}
	}

	// DeepL rejects a bare EN target.
	target := strings.ToUpper(targetLang)
	if target == "EN" {
		target = "EN-US"
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("source_lang", strings.ToUpper(sourceLang))
	form.Set("target_lang", target)
	if html {
		form.Set("tag_handling", "html")
	}

	req, err := http.NewRequest("POST", ts.apiURL+"/translate", strings.NewReader(form.Encode()))
	if err != nil {
		return text, err
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+ts.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.client.Do(req)
	if err != nil {
		return text, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return text, fmt.Errorf("deepl API error (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Translations []struct {
			Text string `json:"text"`
		} `json:"translations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return text, err
	}
	if len(result.Translations) == 0 || result.Translations[0].Text == "" {
		return text, fmt.Errorf("no translation returned")
	}

	translated := result.Translations[0].Text
	if ts.redis != nil {
		ts.redis.Set(context.Background(), cacheKey, translated, 30*24*time.Hour)
	}
	return translated, nil
}

func (ts *TranslationService) cacheKey(text, sourceLang, targetLang string, html bool) string {
	kind := "text"
	if html {
		kind = "html"
	}
	hash := md5.Sum([]byte(text))
	return fmt.Sprintf("translation:%s:%s:%s:%x", strings.ToLower(sourceLang), strings.ToLower(targetLang), kind, hash)
}

// TranslationUsage is the provider quota snapshot.
type TranslationUsage struct {
	CharacterCount int64   `json:"character_count"`
	CharacterLimit int64   `json:"character_limit"`
	PercentageUsed float64 `json:"percentage_used"`
}

// Usage queries the provider for current character quota consumption.
func (ts *TranslationService) Usage() (*TranslationUsage, error) {
	if !ts.IsAvailable() {
		return nil, ErrTranslationUnavailable
	}

	req, err := http.NewRequest("GET", ts.apiURL+"/usage", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+ts.apiKey)

	resp, err := ts.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("deepl usage error (%d): %s", resp.StatusCode, string(body))
	}

	var raw struct {
		CharacterCount int64 `json:"character_count"`
		CharacterLimit int64 `json:"character_limit"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	usage := &TranslationUsage{
		CharacterCount: raw.CharacterCount,
		CharacterLimit: raw.CharacterLimit,
	}
	if raw.CharacterLimit > 0 {
		usage.PercentageUsed = float64(raw.CharacterCount) / float64(raw.CharacterLimit) * 100
	}
	return usage, nil
}
