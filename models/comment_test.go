package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentModeration(t *testing.T) {
	comment := Comment{Status: CommentStatusPending}

	comment.Approve()
	assert.Equal(t, CommentStatusApproved, comment.Status)

	// Approving twice is a no-op, not an error.
	comment.Approve()
	assert.Equal(t, CommentStatusApproved, comment.Status)

	rejected := Comment{Status: CommentStatusPending}
	rejected.Reject()
	assert.Equal(t, CommentStatusRejected, rejected.Status)

	spam := Comment{Status: CommentStatusPending}
	spam.MarkSpam()
	assert.Equal(t, CommentStatusSpam, spam.Status)
}

func TestCommentIsAnonymous(t *testing.T) {
	assert.True(t, (&Comment{}).IsAnonymous())
	assert.True(t, (&Comment{AuthorEmail: "a@b.pl"}).IsAnonymous())
	assert.False(t, (&Comment{AuthorName: "Anna"}).IsAnonymous())
}
