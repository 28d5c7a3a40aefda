package utils

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/models"
)

// Slugify turns a post title into a URL slug: lowercase, spaces become
// hyphens, everything outside [a-z0-9-] is dropped.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' {
			b.WriteRune(r)
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "post"
	}
	return out
}

// UniqueSlug resolves slug collisions by appending a UTC timestamp to the
// second. Slugs are immutable after creation, so the check runs once at
// creation time only.
func UniqueSlug(db *gorm.DB, base string) (string, error) {
	var count int64
	if err := db.Model(&models.BlogPost{}).Where("slug = ?", base).Count(&count).Error; err != nil {
		return "", err
	}
	if count == 0 {
		return base, nil
	}
	return fmt.Sprintf("%s-%s", base, time.Now().UTC().Format("20060102150405")), nil
}
