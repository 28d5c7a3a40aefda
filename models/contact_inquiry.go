package models

import (
	"time"

	"gorm.io/gorm"
)

// Inquiry statuses. Forward transitions are admin-driven; ordering between
// in_progress and resolved is not enforced.
const (
	InquiryStatusNew        = "new"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusResolved   = "resolved"
	InquiryStatusClosed     = "closed"
)

// ContactInquiry is a message submitted through the public contact form.
type ContactInquiry struct {
	gorm.Model
	Name                string     `gorm:"type:VARCHAR(100);not null" json:"name"`
	Email               string     `gorm:"type:VARCHAR(120);not null" json:"email"`
	Phone               string     `gorm:"type:VARCHAR(20)" json:"phone"`
	Subject             string     `gorm:"type:VARCHAR(200);not null" json:"subject"`
	Message             string     `gorm:"type:TEXT;not null" json:"message"`
	SubscribeNewsletter bool       `gorm:"default:false" json:"subscribe_newsletter"`
	Status              string     `gorm:"type:VARCHAR(20);not null;default:new;index" json:"status"`
	IPAddress           string     `gorm:"type:VARCHAR(45)" json:"-"`
	ResolvedAt          *time.Time `json:"resolved_at"`
}

// MarkInProgress moves the inquiry to in_progress.
func (i *ContactInquiry) MarkInProgress() {
	i.Status = InquiryStatusInProgress
}

// MarkResolved moves the inquiry to resolved. ResolvedAt is stamped
// exactly once; resolving an already-resolved inquiry changes nothing.
func (i *ContactInquiry) MarkResolved() {
	if i.Status == InquiryStatusResolved {
		return
	}
	i.Status = InquiryStatusResolved
	if i.ResolvedAt == nil {
		now := time.Now().UTC()
		i.ResolvedAt = &now
	}
}

// Close closes the inquiry. Allowed from any state.
func (i *ContactInquiry) Close() {
	i.Status = InquiryStatusClosed
}
