package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/config"
	"github.com/Napier40/Akademia-Studenta/models"
	"github.com/Napier40/Akademia-Studenta/utils"
)

// BlogController serves the public blog: published listings, post detail
// with approved comments, and customer post submissions.
type BlogController struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewBlogController(db *gorm.DB, cfg *config.Config) *BlogController {
	return &BlogController{db: db, cfg: cfg}
}

func jsonFrom(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

func parseJSONStrings(j datatypes.JSON) []string {
	if len(j) == 0 {
		return []string{}
	}
	var out []string
	_ = json.Unmarshal(j, &out)
	return out
}

// likePattern builds a case-insensitive LIKE pattern from user input,
// escaping the LIKE wildcards so the input matches literally.
func likePattern(s string) string {
	escaped := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`).Replace(strings.ToLower(s))
	return "%" + escaped + "%"
}

func parsePagination(c *gin.Context, defaultSize int) (page, pageSize int) {
	page = 1
	pageSize = defaultSize
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			if n > 100 {
				n = 100
			}
			pageSize = n
		}
	}
	return page, pageSize
}

// GET /blog
// Query: ?page=1&page_size=10&search=...&category=...&lang=pl
func (bc *BlogController) List(c *gin.Context) {
	lang := utils.ResolveLang(c)
	search := strings.TrimSpace(c.Query("search"))
	category := strings.TrimSpace(c.Query("category"))
	page, pageSize := parsePagination(c, 10)

	q := bc.db.Model(&models.BlogPost{}).Where("status = ?", models.PostStatusPublished)
	if search != "" {
		p := likePattern(search)
		if lang == models.LangPL {
			q = q.Where("(LOWER(title_pl) LIKE ? OR LOWER(content_pl) LIKE ? OR LOWER(excerpt_pl) LIKE ?)", p, p, p)
		} else {
			q = q.Where("(LOWER(title_en) LIKE ? OR LOWER(content_en) LIKE ? OR LOWER(excerpt_en) LIKE ?)", p, p, p)
		}
	}
	if category != "" {
		if lang == models.LangPL {
			q = q.Where("category_pl = ?", category)
		} else {
			q = q.Where("category_en = ?", category)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to count posts"})
		return
	}

	var posts []models.BlogPost
	if err := q.Order("published_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch posts"})
		return
	}

	items := make([]gin.H, 0, len(posts))
	for i := range posts {
		items = append(items, bc.toListItem(&posts[i], lang))
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total_count": total,
			"data":        items,
		},
	})
}

// GET /blog/categories
// Distinct categories of published posts in the requested language.
func (bc *BlogController) Categories(c *gin.Context) {
	lang := utils.ResolveLang(c)
	column := "category_en"
	if lang == models.LangPL {
		column = "category_pl"
	}

	var categories []string
	err := bc.db.Model(&models.BlogPost{}).
		Where("status = ?", models.PostStatusPublished).
		Where(column+" <> ''").
		Distinct().
		Order(column).
		Pluck(column, &categories).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": categories})
}

// GET /blog/:slug
// Post detail. Increments the view counter and includes approved comments.
func (bc *BlogController) GetBySlug(c *gin.Context) {
	lang := utils.ResolveLang(c)
	slug := c.Param("slug")

	var post models.BlogPost
	err := bc.db.Where("slug = ? AND status = ?", slug, models.PostStatusPublished).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch post"})
		return
	}

	// Atomic increment; concurrent views must never lose a count.
	if err := bc.db.Model(&post).UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error; err != nil {
		utils.LogError(err, fmt.Sprintf("increment views for post %d", post.ID))
	}
	post.ViewsCount++

	var comments []models.Comment
	err = bc.db.Where("post_id = ? AND status = ?", post.ID, models.CommentStatusApproved).
		Order("created_at DESC").Find(&comments).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch comments"})
		return
	}

	commentItems := make([]gin.H, 0, len(comments))
	for i := range comments {
		commentItems = append(commentItems, toCommentItem(&comments[i]))
	}

	result := bc.toListItem(&post, lang)
	result["content"] = post.Content(lang)
	result["comments"] = commentItems
	c.JSON(http.StatusOK, gin.H{"success": true, "result": result})
}

type customerPostPayload struct {
	Language      string   `json:"language"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Excerpt       string   `json:"excerpt"`
	Category      string   `json:"category"`
	FeaturedImage string   `json:"featured_image"`
	Tags          []string `json:"tags"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
}

func validateCustomerPost(req *customerPostPayload) []string {
	var problems []string
	if strings.TrimSpace(req.Title) == "" {
		problems = append(problems, "title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		problems = append(problems, "content is required")
	}
	if req.Language == "" {
		problems = append(problems, "language is required")
	} else if !models.ValidLang(req.Language) {
		problems = append(problems, "language must be en or pl")
	}
	return problems
}

// buildCustomerPost assembles the bilingual record for a submission: the
// submitted language carries the input, the opposite language gets
// placeholder text, and the status is forced to pending regardless of
// anything in the payload.
func buildCustomerPost(req *customerPostPayload, slug, excerpt string) models.BlogPost {
	post := models.BlogPost{
		Slug:             slug,
		FeaturedImage:    req.FeaturedImage,
		Tags:             jsonFrom(req.Tags),
		Status:           models.PostStatusPending,
		IsCustomerPost:   true,
		CustomerLanguage: req.Language,
		CustomerName:     strings.TrimSpace(req.Name),
		CustomerEmail:    strings.TrimSpace(req.Email),
	}
	if req.Language == models.LangEN {
		post.TitleEN = req.Title
		post.ContentEN = req.Content
		post.ExcerptEN = excerpt
		post.CategoryEN = req.Category
		post.TitlePL = models.PlaceholderTitlePL
		post.ContentPL = models.PlaceholderContentPL
	} else {
		post.TitlePL = req.Title
		post.ContentPL = req.Content
		post.ExcerptPL = excerpt
		post.CategoryPL = req.Category
		post.TitleEN = models.PlaceholderTitleEN
		post.ContentEN = models.PlaceholderContentEN
	}
	return post
}

// POST /blog/submit
// Customer post submission in a single language. The opposite language is
// filled with placeholder text and the post awaits admin approval; the
// translation sweep backfills it later.
func (bc *BlogController) SubmitCustomerPost(c *gin.Context) {
	var req customerPostPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	req.Language = strings.ToLower(strings.TrimSpace(req.Language))
	if problems := validateCustomerPost(&req); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": strings.Join(problems, "; ")})
		return
	}

	slug, err := utils.UniqueSlug(bc.db, utils.Slugify(req.Title))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to generate slug"})
		return
	}

	excerpt := strings.TrimSpace(req.Excerpt)
	if excerpt == "" {
		excerpt = utils.ExtractExcerpt(req.Content, 300)
	}

	post := buildCustomerPost(&req, slug, excerpt)

	if err := bc.db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to create post"})
		return
	}

	if bc.cfg != nil && bc.cfg.MailConfigured() {
		go bc.notifySubmission(&post)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"result": gin.H{
			"id":     post.ID,
			"slug":   post.Slug,
			"status": post.Status,
		},
	})
}

func (bc *BlogController) notifySubmission(post *models.BlogPost) {
	body := fmt.Sprintf("New customer post #%d awaiting review\n\nTitle: %s\nLanguage: %s\nSubmitted by: %s <%s>",
		post.ID, post.Title(post.CustomerLanguage), post.CustomerLanguage, post.CustomerName, post.CustomerEmail)
	err := utils.SendEmail(bc.cfg.AdminEmail, "New blog post submission", body,
		bc.cfg.SMTPHost, bc.cfg.SMTPPort, bc.cfg.SMTPUser, bc.cfg.SMTPPass)
	if err != nil {
		utils.LogError(err, fmt.Sprintf("notify admin about post submission %d", post.ID))
	}
}

func (bc *BlogController) toListItem(p *models.BlogPost, lang string) gin.H {
	item := gin.H{
		"id":             p.ID,
		"slug":           p.Slug,
		"title":          p.Title(lang),
		"excerpt":        p.Excerpt(lang),
		"category":       p.Category(lang),
		"featured_image": p.FeaturedImage,
		"tags":           parseJSONStrings(p.Tags),
		"views_count":    p.ViewsCount,
		"created_at":     p.CreatedAt.Format(time.RFC3339),
	}
	if p.PublishedAt != nil {
		item["published_at"] = p.PublishedAt.Format(time.RFC3339)
	}
	return item
}

func toCommentItem(cm *models.Comment) gin.H {
	author := cm.AuthorName
	if cm.IsAnonymous() {
		author = "Anonymous"
	}
	item := gin.H{
		"id":         cm.ID,
		"author":     author,
		"content":    cm.Content,
		"created_at": cm.CreatedAt.Format(time.RFC3339),
	}
	if cm.Rating != nil {
		item["rating"] = *cm.Rating
	}
	return item
}
