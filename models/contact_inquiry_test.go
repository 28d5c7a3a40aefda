package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkResolvedStampsOnce(t *testing.T) {
	inquiry := ContactInquiry{Status: InquiryStatusNew}

	inquiry.MarkResolved()
	assert.Equal(t, InquiryStatusResolved, inquiry.Status)
	assert.NotNil(t, inquiry.ResolvedAt)

	first := *inquiry.ResolvedAt
	inquiry.MarkResolved()
	assert.Equal(t, InquiryStatusResolved, inquiry.Status)
	assert.Equal(t, first, *inquiry.ResolvedAt, "resolved_at must not change on repeat resolve")
}

func TestInquiryTransitions(t *testing.T) {
	inquiry := ContactInquiry{Status: InquiryStatusNew}

	inquiry.MarkInProgress()
	assert.Equal(t, InquiryStatusInProgress, inquiry.Status)

	// Direct new -> resolved is also allowed; ordering is not enforced.
	direct := ContactInquiry{Status: InquiryStatusNew}
	direct.MarkResolved()
	assert.Equal(t, InquiryStatusResolved, direct.Status)

	direct.Close()
	assert.Equal(t, InquiryStatusClosed, direct.Status)
	assert.NotNil(t, direct.ResolvedAt)
}
