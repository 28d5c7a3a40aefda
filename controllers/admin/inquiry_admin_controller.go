package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/models"
)

// InquiryAdminController tracks contact inquiries through their workflow.
// Transition ordering between in_progress and resolved is deliberately
// not enforced; closing is allowed from any state.
type InquiryAdminController struct {
	db *gorm.DB
}

func NewInquiryAdminController(db *gorm.DB) *InquiryAdminController {
	return &InquiryAdminController{db: db}
}

// GET /admin/inquiries
// Query: ?status=new&page=1&page_size=20
func (ic *InquiryAdminController) List(c *gin.Context) {
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

	q := ic.db.Model(&models.ContactInquiry{})
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to count inquiries"})
		return
	}
	var inquiries []models.ContactInquiry
	if err := q.Order("created_at DESC").Offset((page - 1) * pageSize).Limit(pageSize).Find(&inquiries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch inquiries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total_count": total,
			"data":        inquiries,
		},
	})
}

func (ic *InquiryAdminController) transition(c *gin.Context, apply func(*models.ContactInquiry)) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var inquiry models.ContactInquiry
	if err := ic.db.First(&inquiry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "result": nil, "error": "inquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to fetch inquiry"})
		return
	}

	apply(&inquiry)
	if err := ic.db.Save(&inquiry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to update inquiry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"id": inquiry.ID, "status": inquiry.Status, "resolved_at": inquiry.ResolvedAt}})
}

// POST /admin/inquiries/:id/in-progress
func (ic *InquiryAdminController) MarkInProgress(c *gin.Context) {
	ic.transition(c, (*models.ContactInquiry).MarkInProgress)
}

// POST /admin/inquiries/:id/resolve
func (ic *InquiryAdminController) Resolve(c *gin.Context) {
	ic.transition(c, (*models.ContactInquiry).MarkResolved)
}

// POST /admin/inquiries/:id/close
func (ic *InquiryAdminController) Close(c *gin.Context) {
	ic.transition(c, (*models.ContactInquiry).Close)
}
