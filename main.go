package main

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/config"
	"github.com/Napier40/Akademia-Studenta/database"
	"github.com/Napier40/Akademia-Studenta/routes"
	"github.com/Napier40/Akademia-Studenta/services"
	"github.com/Napier40/Akademia-Studenta/utils"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	if err := database.SeedPosts(db); err != nil {
		log.Fatalf("failed to seed posts: %v", err)
	}
	log.Println("Sample posts seeded (if needed)")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Println("Connected to Redis")

	translationService := services.NewTranslationService(cfg.DeepLAPIURL, cfg.DeepLAPIKey, rdb)
	if translationService.IsAvailable() {
		if _, err := services.StartTranslationCron(db, translationService, cfg.TranslationCronSpec); err != nil {
			log.Fatalf("failed to start translation cron: %v", err)
		}
		log.Println("Translation cron started")
	} else {
		log.Println("Translation service not configured, background fill disabled")
	}

	r := routes.SetupRouter(db, rdb, cfg, translationService)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
