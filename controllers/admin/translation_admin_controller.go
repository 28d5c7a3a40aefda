package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Napier40/Akademia-Studenta/models"
	"github.com/Napier40/Akademia-Studenta/services"
)

// TranslationAdminController exposes on-demand translation and provider
// quota lookups to the admin panel.
type TranslationAdminController struct {
	ts *services.TranslationService
}

func NewTranslationAdminController(ts *services.TranslationService) *TranslationAdminController {
	return &TranslationAdminController{ts: ts}
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// POST /admin/translate
func (tc *TranslationAdminController) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "text is required"})
		return
	}
	source := strings.ToLower(strings.TrimSpace(req.Source))
	target := strings.ToLower(strings.TrimSpace(req.Target))
	if !models.ValidLang(source) || !models.ValidLang(target) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "source and target must be en or pl"})
		return
	}
	if !tc.ts.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "result": nil, "error": "translation service not available"})
		return
	}

	translated, err := tc.ts.Translate(req.Text, source, target)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "translation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result": gin.H{
			"translation": translated,
			"source":      source,
			"target":      target,
		},
	})
}

// GET /admin/translation-usage
func (tc *TranslationAdminController) Usage(c *gin.Context) {
	if !tc.ts.IsAvailable() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "result": nil, "error": "translation service not available"})
		return
	}
	usage, err := tc.ts.Usage()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch usage"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": usage})
}
