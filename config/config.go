package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string

	Port      string
	JWTSecret string

	AdminUsername string
	AdminPassword string

	// DeepL translation API. An empty key leaves the translation service
	// in the unavailable state; nothing else breaks.
	DeepLAPIKey string
	DeepLAPIURL string

	// Cron spec for the background translation-fill sweep.
	TranslationCronSpec string

	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	AdminEmail string
}

// LoadConfig reads the environment (optionally seeded from .env).
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              getenvOrDefault("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		RedisAddr:           getenvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		Port:                getenvOrDefault("PORT", "8080"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		AdminUsername:       os.Getenv("ADMIN_USERNAME"),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
		DeepLAPIKey:         os.Getenv("DEEPL_API_KEY"),
		DeepLAPIURL:         getenvOrDefault("DEEPL_API_URL", "https://api-free.deepl.com/v2"),
		TranslationCronSpec: getenvOrDefault("TRANSLATION_CRON", "@every 15m"),
		SMTPHost:            os.Getenv("SMTP_HOST"),
		SMTPPort:            getenvOrDefault("SMTP_PORT", "587"),
		SMTPUser:            os.Getenv("SMTP_USER"),
		SMTPPass:            os.Getenv("SMTP_PASS"),
		AdminEmail:          os.Getenv("ADMIN_EMAIL"),
	}
}

// Validate collects every missing required setting so startup can abort
// with a single aggregated error instead of failing one variable at a time.
func (c *Config) Validate() error {
	var missing []string
	if c.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.DBUser == "" {
		missing = append(missing, "DB_USER")
	}
	if c.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.AdminUsername == "" {
		missing = append(missing, "ADMIN_USERNAME")
	}
	if c.AdminPassword == "" {
		missing = append(missing, "ADMIN_PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missing)
	}
	return nil
}

// MailConfigured reports whether outbound notification email can be sent.
func (c *Config) MailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.AdminEmail != ""
}

// getenvOrDefault returns the environment variable value if set, otherwise def.
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
