package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/models"
)

// Comment content length bounds enforced at submission.
const (
	commentMinLen = 10
	commentMaxLen = 2000
)

// CommentController handles public comment submission. Moderation lives
// in the admin controllers.
type CommentController struct {
	db *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{db: db}
}

type commentPayload struct {
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Content     string `json:"content"`
	Rating      *int   `json:"rating"`
}

func validateComment(req *commentPayload) []string {
	var problems []string
	content := strings.TrimSpace(req.Content)
	if content == "" {
		problems = append(problems, "content is required")
	} else if n := utf8.RuneCountInString(content); n < commentMinLen || n > commentMaxLen {
		problems = append(problems, fmt.Sprintf("content must be between %d and %d characters", commentMinLen, commentMaxLen))
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		problems = append(problems, "rating must be between 1 and 5")
	}
	if req.AuthorEmail != "" {
		if _, err := mail.ParseAddress(req.AuthorEmail); err != nil {
			problems = append(problems, "author_email is not a valid email address")
		}
	}
	return problems
}

// POST /blog/:slug/comments
// Anonymous commenting is allowed: a comment without an author name is
// anonymous. New comments always start pending and become visible only
// after admin approval.
func (cc *CommentController) Submit(c *gin.Context) {
	slug := c.Param("slug")

	var post models.BlogPost
	err := cc.db.Where("slug = ? AND status = ?", slug, models.PostStatusPublished).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch post"})
		return
	}

	var req commentPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "invalid request"})
		return
	}
	if problems := validateComment(&req); len(problems) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": strings.Join(problems, "; ")})
		return
	}

	comment := models.Comment{
		PostID:      post.ID,
		AuthorName:  strings.TrimSpace(req.AuthorName),
		AuthorEmail: strings.TrimSpace(req.AuthorEmail),
		Content:     strings.TrimSpace(req.Content),
		Rating:      req.Rating,
		Status:      models.CommentStatusPending,
		IPAddress:   c.ClientIP(),
	}
	if err := cc.db.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"result": gin.H{
			"id":     comment.ID,
			"status": comment.Status,
		},
	})
}
