package database

import (
	"time"

	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/models"
)

// SeedPosts inserts a couple of published bilingual posts so a fresh
// install has visible content. Does nothing when posts already exist.
func SeedPosts(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.BlogPost{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	posts := []models.BlogPost{
		{
			Slug:       "welcome-to-our-blog",
			TitleEN:    "Welcome to Our Blog",
			TitlePL:    "Witamy na naszym blogu",
			ContentEN:  "Welcome to our bilingual blog! This blog supports both English and Polish, allowing you to reach a wider audience. Feel free to explore and leave comments below.",
			ContentPL:  "Witamy na naszym dwujęzycznym blogu! Ten blog obsługuje zarówno język angielski, jak i polski, co pozwala dotrzeć do szerszej publiczności. Zapraszamy do eksploracji i pozostawienia komentarzy poniżej.",
			ExcerptEN:  "Welcome to our bilingual blog! Learn about our features and capabilities.",
			ExcerptPL:  "Witamy na naszym dwujęzycznym blogu! Poznaj nasze funkcje i możliwości.",
			CategoryEN: "Announcements",
			CategoryPL: "Ogłoszenia",
			Status:     models.PostStatusPublished,
		},
		{
			Slug:       "tips-for-academic-success",
			TitleEN:    "Tips for Academic Success",
			TitlePL:    "Wskazówki dla sukcesu akademickiego",
			ContentEN:  "Academic success does not happen by accident. It requires dedication, proper planning, and the right strategies: manage your time, study actively, seek help when needed, and keep a healthy balance.",
			ContentPL:  "Sukces akademicki nie dzieje się przypadkowo. Wymaga poświęcenia, odpowiedniego planowania i właściwych strategii: zarządzaj czasem, ucz się aktywnie, szukaj pomocy, gdy jest potrzebna, i utrzymuj zdrową równowagę.",
			ExcerptEN:  "Discover essential tips and strategies for achieving academic success.",
			ExcerptPL:  "Odkryj niezbędne wskazówki i strategie osiągania sukcesu akademickiego.",
			CategoryEN: "Tips & Advice",
			CategoryPL: "Porady i wskazówki",
			Status:     models.PostStatusPublished,
		},
	}

	for i := range posts {
		published := now
		posts[i].PublishedAt = &published
		if err := db.Create(&posts[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
