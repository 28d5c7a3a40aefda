package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/config"
	"github.com/Napier40/Akademia-Studenta/controllers/admin"
	"github.com/Napier40/Akademia-Studenta/middleware"
	"github.com/Napier40/Akademia-Studenta/services"
)

// SetupAdminRoutes registers the back office. Everything except login
// sits behind JWT auth; the controllers assume already-authorized calls.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config, ts *services.TranslationService) {
	adminController := admin.NewAdminController(db, rdb, cfg)
	postController := admin.NewPostAdminController(db, ts)
	commentController := admin.NewCommentAdminController(db)
	inquiryController := admin.NewInquiryAdminController(db)
	translationController := admin.NewTranslationAdminController(ts)

	r.POST("/admin/login", adminController.Login)

	adminGroup := r.Group("/admin", middleware.JWTAuthMiddleware(rdb, cfg.JWTSecret))
	{
		adminGroup.POST("/logout", adminController.Logout)
		adminGroup.GET("/dashboard", adminController.Dashboard)

		adminGroup.GET("/posts", postController.List)
		adminGroup.POST("/posts", postController.Create)
		adminGroup.PUT("/posts/:id", postController.Update)
		adminGroup.DELETE("/posts/:id", postController.Delete)
		adminGroup.POST("/posts/:id/status", postController.TransitionStatus)
		adminGroup.POST("/posts/:id/fill-translation", postController.FillTranslation)

		adminGroup.GET("/comments", commentController.List)
		adminGroup.POST("/comments/:id/approve", commentController.Approve)
		adminGroup.POST("/comments/:id/reject", commentController.Reject)
		adminGroup.POST("/comments/:id/spam", commentController.MarkSpam)
		adminGroup.DELETE("/comments/:id", commentController.Delete)

		adminGroup.GET("/inquiries", inquiryController.List)
		adminGroup.POST("/inquiries/:id/in-progress", inquiryController.MarkInProgress)
		adminGroup.POST("/inquiries/:id/resolve", inquiryController.Resolve)
		adminGroup.POST("/inquiries/:id/close", inquiryController.Close)

		adminGroup.POST("/translate", translationController.Translate)
		adminGroup.GET("/translation-usage", translationController.Usage)
	}
}
