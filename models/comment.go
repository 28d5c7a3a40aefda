package models

import "gorm.io/gorm"

// Comment moderation statuses. A comment starts pending and moves to
// exactly one terminal state through an explicit admin action. Only
// approved comments are ever shown publicly.
const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
	CommentStatusSpam     = "spam"
)

// Comment belongs to exactly one BlogPost. Author fields are optional;
// a comment with no author name is anonymous.
type Comment struct {
	gorm.Model
	PostID      uint   `gorm:"not null;index" json:"post_id"`
	AuthorName  string `gorm:"type:VARCHAR(100)" json:"author_name"`
	AuthorEmail string `gorm:"type:VARCHAR(120)" json:"author_email"`
	Content     string `gorm:"type:TEXT;not null" json:"content"`
	Rating      *int   `json:"rating"`
	Status      string `gorm:"type:VARCHAR(20);not null;default:pending;index" json:"status"`
	IPAddress   string `gorm:"type:VARCHAR(45)" json:"-"`
}

// IsAnonymous reports whether the comment was submitted without a name.
func (c *Comment) IsAnonymous() bool {
	return c.AuthorName == ""
}

// Approve marks the comment as approved. Re-approving is a no-op.
func (c *Comment) Approve() {
	c.Status = CommentStatusApproved
}

// Reject marks the comment as rejected.
func (c *Comment) Reject() {
	c.Status = CommentStatusRejected
}

// MarkSpam marks the comment as spam.
func (c *Comment) MarkSpam() {
	c.Status = CommentStatusSpam
}
