package admin

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/config"
	"github.com/Napier40/Akademia-Studenta/models"
	"github.com/Napier40/Akademia-Studenta/utils"
)

// AdminController handles admin authentication and the dashboard.
type AdminController struct {
	db  *gorm.DB
	rdb *redis.Client
	cfg *config.Config
}

func NewAdminController(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *AdminController {
	return &AdminController{db: db, rdb: rdb, cfg: cfg}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /admin/login
func (ac *AdminController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "result": nil, "error": "username and password are required"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(ac.cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(ac.cfg.AdminPassword)) == 1
	if !userOK || !passOK {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "result": nil, "error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminJWT(req.Username, ac.cfg.JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "result": nil, "error": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "result": gin.H{"token": token}})
}

// POST /admin/logout
// Revokes the presented token by blacklisting it until it expires.
func (ac *AdminController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || ac.rdb == nil {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	ttl := 72 * time.Hour
	if claims, err := utils.ParseJWT(token, ac.cfg.JWTSecret); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			if until := time.Until(time.Unix(int64(exp), 0)); until > 0 {
				ttl = until
			}
		}
	}
	ac.rdb.Set(context.Background(), "blacklist:"+token, 1, ttl)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /admin/dashboard
// Moderation queue counters and recent activity.
func (ac *AdminController) Dashboard(c *gin.Context) {
	var (
		totalPosts      int64
		publishedPosts  int64
		draftPosts      int64
		pendingPosts    int64
		totalComments   int64
		pendingComments int64
		totalInquiries  int64
		newInquiries    int64
	)
	ac.db.Model(&models.BlogPost{}).Count(&totalPosts)
	ac.db.Model(&models.BlogPost{}).Where("status = ?", models.PostStatusPublished).Count(&publishedPosts)
	ac.db.Model(&models.BlogPost{}).Where("status = ?", models.PostStatusDraft).Count(&draftPosts)
	ac.db.Model(&models.BlogPost{}).Where("status = ?", models.PostStatusPending).Count(&pendingPosts)
	ac.db.Model(&models.Comment{}).Count(&totalComments)
	ac.db.Model(&models.Comment{}).Where("status = ?", models.CommentStatusPending).Count(&pendingComments)
	ac.db.Model(&models.ContactInquiry{}).Count(&totalInquiries)
	ac.db.Model(&models.ContactInquiry{}).Where("status = ?", models.InquiryStatusNew).Count(&newInquiries)

	var recentPosts []models.BlogPost
	ac.db.Order("created_at DESC").Limit(5).Find(&recentPosts)

	var pendingList []models.Comment
	ac.db.Where("status = ?", models.CommentStatusPending).Order("created_at DESC").Limit(5).Find(&pendingList)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result": gin.H{
			"posts": gin.H{
				"total":     totalPosts,
				"published": publishedPosts,
				"draft":     draftPosts,
				"pending":   pendingPosts,
			},
			"comments": gin.H{
				"total":   totalComments,
				"pending": pendingComments,
			},
			"inquiries": gin.H{
				"total": totalInquiries,
				"new":   newInquiries,
			},
			"recent_posts":     recentPosts,
			"pending_comments": pendingList,
		},
	})
}
