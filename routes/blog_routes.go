package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/config"
	"github.com/Napier40/Akademia-Studenta/controllers"
	"github.com/Napier40/Akademia-Studenta/middleware"
	"github.com/Napier40/Akademia-Studenta/utils"
)

// SetupBlogRoutes registers the public surface: blog reads, comment and
// customer post submission, and the contact form. Submissions are rate
// limited per client IP.
func SetupBlogRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, limiter *utils.RateLimiter) {
	blogController := controllers.NewBlogController(db, cfg)
	commentController := controllers.NewCommentController(db)
	contactController := controllers.NewContactController(db, cfg)

	rateLimited := middleware.RateLimitMiddleware(limiter)

	blog := r.Group("/blog")
	{
		blog.GET("", blogController.List)
		blog.GET("/categories", blogController.Categories)
		blog.GET("/:slug", blogController.GetBySlug)
		blog.POST("/submit", rateLimited, blogController.SubmitCustomerPost)
		blog.POST("/:slug/comments", rateLimited, commentController.Submit)
	}

	r.POST("/contact", rateLimited, contactController.Submit)
}
