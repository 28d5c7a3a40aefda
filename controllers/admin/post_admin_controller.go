package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/models"
	"github.com/Napier40/Akademia-Studenta/services"
	"github.com/Napier40/Akademia-Studenta/utils"
)

// PostAdminController manages blog posts: CRUD, status transitions and
// the translation-fill trigger for customer submissions.
type PostAdminController struct {
	db *gorm.DB
	ts *services.TranslationService
}

func NewPostAdminController(db *gorm.DB, ts *services.TranslationService) *PostAdminController {
	return &PostAdminController{db: db, ts: ts}
}

type adminPostPayload struct {
	TitleEN       string   `json:"title_en"`
	TitlePL       string   `json:"title_pl"`
	ContentEN     string   `json:"content_en"`
	ContentPL     string   `json:"content_pl"`
	ExcerptEN     string   `json:"excerpt_en"`
	ExcerptPL     string   `json:"excerpt_pl"`
	CategoryEN    string   `json:"category_en"`
	CategoryPL    string   `json:"category_pl"`
	FeaturedImage string   `json:"featured_image"`
	Tags          []string `json:"tags"`
	Status        string   `json:"status"`
}

// Admin-authored posts carry both languages; there is no placeholder
// fallback on this path.
func validateAdminPost(req *adminPostPayload) []string {
	var problems []string
	for field, value := range map[string]string{
		"title_en":   req.TitleEN,
		"title_pl":   req.TitlePL,
		"content_en": req.ContentEN,
		"content_pl": req.ContentPL,
	} {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, field+" is required")
		}
	}
	if req.Status != "" && !models.ValidPostStatus(req.Status) {
		problems = append(problems, "status must be one of draft, published, pending, archived")
	}
	return problems
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func jsonFrom(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

// GET /admin/posts
// Query: ?status=pending&page=1&page_size=20
func (pc *PostAdminController) List(c *gin.Context) {
	page := 1
	pageSize := 20
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}

	q := pc.db.Model(&models.BlogPost{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to count posts"})
		return
	}
	var posts []models.BlogPost
	if err := q.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total_count": total,
			"data":        posts,
		},
	})
}

// POST /admin/posts
func (pc *PostAdminController) Create(c *gin.Context) {
	var req adminPostPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	if problems := validateAdminPost(&req); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": strings.Join(problems, "; ")})
		return
	}
	if req.Status == "" {
		req.Status = models.PostStatusDraft
	}

	slug, err := utils.UniqueSlug(pc.db, utils.Slugify(req.TitleEN))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to generate slug"})
		return
	}

	post := models.BlogPost{
		Slug:          slug,
		TitleEN:       req.TitleEN,
		TitlePL:       req.TitlePL,
		ContentEN:     req.ContentEN,
		ContentPL:     req.ContentPL,
		ExcerptEN:     req.ExcerptEN,
		ExcerptPL:     req.ExcerptPL,
		CategoryEN:    req.CategoryEN,
		CategoryPL:    req.CategoryPL,
		FeaturedImage: req.FeaturedImage,
		Tags:          jsonFrom(req.Tags),
	}
	post.SetStatus(req.Status)

	if err := pc.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "result": post})
}

// PUT /admin/posts/:id
// The slug is immutable: edits never regenerate it.
func (pc *PostAdminController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req adminPostPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	if problems := validateAdminPost(&req); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": strings.Join(problems, "; ")})
		return
	}

	var post models.BlogPost
	if err := pc.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch post"})
		return
	}

	post.TitleEN = req.TitleEN
	post.TitlePL = req.TitlePL
	post.ContentEN = req.ContentEN
	post.ContentPL = req.ContentPL
	post.ExcerptEN = req.ExcerptEN
	post.ExcerptPL = req.ExcerptPL
	post.CategoryEN = req.CategoryEN
	post.CategoryPL = req.CategoryPL
	post.FeaturedImage = req.FeaturedImage
	post.Tags = jsonFrom(req.Tags)
	if req.Status != "" {
		post.SetStatus(req.Status)
	}

	if err := pc.db.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to update post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": post})
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

// POST /admin/posts/:id/status
// Free transitions among draft/published/archived; pending customer posts
// are approved by moving to published or sent back to draft.
func (pc *PostAdminController) TransitionStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req statusPayload
	if err := c.ShouldBindJSON(&req); err != nil || !models.ValidPostStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "status must be one of draft, published, pending, archived"})
		return
	}

	var post models.BlogPost
	if err := pc.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch post"})
		return
	}

	post.SetStatus(req.Status)
	if err := pc.db.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to update post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"id": post.ID, "status": post.Status, "published_at": post.PublishedAt}})
}

// DELETE /admin/posts/:id
// Removes the post and its comments in one transaction.
func (pc *PostAdminController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := pc.db.Transaction(func(tx *gorm.DB) error {
		var post models.BlogPost
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"id": id}})
}

// POST /admin/posts/:id/fill-translation
// Backfills placeholder fields of a customer submission. Persists only
// after a fully successful pass.
func (pc *PostAdminController) FillTranslation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var post models.BlogPost
	if err := pc.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch post"})
		return
	}

	changed, err := services.TranslateBlogPost(&post, pc.ts)
	if err != nil {
		utils.LogError(err, "fill translation")
		c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"translated": false}})
		return
	}
	if changed {
		if err := pc.db.Save(&post).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to save post"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"translated": changed}})
}
