package database

import (
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/models"
)

// Migrate creates or updates the schema for all content tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.BlogPost{},
		&models.Comment{},
		&models.ContactInquiry{},
	)
}
