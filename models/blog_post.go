package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Post statuses. Customer submissions always start in pending; there is no
// separate rejected state for posts, an admin moves a rejected submission
// back to draft instead.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusPending   = "pending"
	PostStatusArchived  = "archived"
)

// Supported content languages.
const (
	LangEN = "en"
	LangPL = "pl"
)

// Placeholder strings written into the missing language of a customer
// submission. The translation fill workflow keys off these exact values,
// so they must not be changed while untranslated posts exist.
const (
	PlaceholderTitleEN   = "Pending Translation"
	PlaceholderTitlePL   = "Oczekuje na tłumaczenie"
	PlaceholderContentEN = "Pending Translation - this content will be translated soon."
	PlaceholderContentPL = "Oczekuje na tłumaczenie - ta treść zostanie wkrótce przetłumaczona."
)

// BlogPost holds a bilingual blog entry. Each localized field is stored as
// a parallel EN/PL column pair; either side may be empty independently.
type BlogPost struct {
	gorm.Model
	Slug          string         `gorm:"type:VARCHAR(255);uniqueIndex;not null" json:"slug"`
	TitleEN       string         `gorm:"type:VARCHAR(255);not null" json:"title_en"`
	TitlePL       string         `gorm:"type:VARCHAR(255);not null" json:"title_pl"`
	ContentEN     string         `gorm:"type:TEXT;not null" json:"content_en"`
	ContentPL     string         `gorm:"type:TEXT;not null" json:"content_pl"`
	ExcerptEN     string         `gorm:"type:VARCHAR(500)" json:"excerpt_en"`
	ExcerptPL     string         `gorm:"type:VARCHAR(500)" json:"excerpt_pl"`
	CategoryEN    string         `gorm:"type:VARCHAR(100);index" json:"category_en"`
	CategoryPL    string         `gorm:"type:VARCHAR(100);index" json:"category_pl"`
	FeaturedImage string         `gorm:"type:VARCHAR(500)" json:"featured_image"`
	Tags          datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	Status        string         `gorm:"type:VARCHAR(20);not null;default:draft;index" json:"status"`
	ViewsCount    int64          `gorm:"default:0" json:"views_count"`

	// Customer submission metadata. CustomerLanguage is the language the
	// submitter wrote in and drives the translation fill direction.
	IsCustomerPost   bool   `gorm:"default:false" json:"is_customer_post"`
	CustomerLanguage string `gorm:"type:VARCHAR(2)" json:"customer_language"`
	CustomerName     string `gorm:"type:VARCHAR(100)" json:"customer_name"`
	CustomerEmail    string `gorm:"type:VARCHAR(120)" json:"customer_email"`

	PublishedAt *time.Time `json:"published_at"`

	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

// ValidPostStatus reports whether s is one of the known post statuses.
func ValidPostStatus(s string) bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusPending, PostStatusArchived:
		return true
	}
	return false
}

// ValidLang reports whether s is a supported content language.
func ValidLang(s string) bool {
	return s == LangEN || s == LangPL
}

// SetStatus applies a status transition. PublishedAt is stamped on the
// first entry into published and never touched again, so it survives
// published -> archived -> published cycles.
func (p *BlogPost) SetStatus(status string) {
	if status == PostStatusPublished && p.PublishedAt == nil {
		now := time.Now().UTC()
		p.PublishedAt = &now
	}
	p.Status = status
}

// Title returns the title for the requested language. There is no
// read-time fallback: an empty field is returned as-is. Missing
// translations are handled at write time via placeholder text.
func (p *BlogPost) Title(lang string) string {
	if lang == LangPL {
		return p.TitlePL
	}
	return p.TitleEN
}

// Content returns the content for the requested language.
func (p *BlogPost) Content(lang string) string {
	if lang == LangPL {
		return p.ContentPL
	}
	return p.ContentEN
}

// Excerpt returns the excerpt for the requested language.
func (p *BlogPost) Excerpt(lang string) string {
	if lang == LangPL {
		return p.ExcerptPL
	}
	return p.ExcerptEN
}

// Category returns the category for the requested language.
func (p *BlogPost) Category(lang string) string {
	if lang == LangPL {
		return p.CategoryPL
	}
	return p.CategoryEN
}
