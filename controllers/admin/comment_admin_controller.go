package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/models"
)

// CommentAdminController moderates comments. A pending comment moves to
// exactly one of approved/rejected/spam; repeating an action is a no-op,
// never an error.
type CommentAdminController struct {
	db *gorm.DB
}

func NewCommentAdminController(db *gorm.DB) *CommentAdminController {
	return &CommentAdminController{db: db}
}

// GET /admin/comments
// Query: ?status=pending&post_id=3&page=1&page_size=20
func (cc *CommentAdminController) List(c *gin.Context) {
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

	q := cc.db.Model(&models.Comment{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if v := c.Query("post_id"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			q = q.Where("post_id = ?", n)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to count comments"})
		return
	}
	var comments []models.Comment
	if err := q.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total_count": total,
			"data":        comments,
		},
	})
}

func (cc *CommentAdminController) moderate(c *gin.Context, apply func(*models.Comment)) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var comment models.Comment
	if err := cc.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "comment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch comment"})
		return
	}

	apply(&comment)
	if err := cc.db.Save(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to update comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"id": comment.ID, "status": comment.Status}})
}

// POST /admin/comments/:id/approve
func (cc *CommentAdminController) Approve(c *gin.Context) {
	cc.moderate(c, (*models.Comment).Approve)
}

// POST /admin/comments/:id/reject
func (cc *CommentAdminController) Reject(c *gin.Context) {
	cc.moderate(c, (*models.Comment).Reject)
}

// POST /admin/comments/:id/spam
func (cc *CommentAdminController) MarkSpam(c *gin.Context) {
	cc.moderate(c, (*models.Comment).MarkSpam)
}

// DELETE /admin/comments/:id
func (cc *CommentAdminController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := cc.db.Delete(&models.Comment{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to delete comment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"id": id}})
}
