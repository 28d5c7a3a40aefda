package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/config"
	"github.com/Napier40/Akademia-Studenta/middleware"
	"github.com/Napier40/Akademia-Studenta/services"
	"github.com/Napier40/Akademia-Studenta/utils"
)

// SetupRouter creates the gin.Engine and registers all routes. All
// dependencies are injected; nothing here reads globals.
func SetupRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, ts *services.TranslationService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Lang"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// One shared limiter for all public submission endpoints.
	limiter := utils.NewRateLimiter(20, time.Hour)

	SetupBlogRoutes(r, db, cfg, limiter)
	SetupAdminRoutes(r, db, rdb, cfg, ts)

	return r
}
