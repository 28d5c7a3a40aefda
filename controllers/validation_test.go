package controllers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Napier40/Akademia-Studenta/models"
)

func intPtr(n int) *int { return &n }

func TestValidateComment(t *testing.T) {
	ok := commentPayload{Content: "This is a perfectly fine comment.", Rating: intPtr(5)}
	assert.Empty(t, validateComment(&ok))

	// Rating is optional.
	noRating := commentPayload{Content: "This is a perfectly fine comment."}
	assert.Empty(t, validateComment(&noRating))

	empty := commentPayload{}
	assert.Contains(t, validateComment(&empty), "content is required")

	short := commentPayload{Content: "too short"}
	problems := validateComment(&short)
	assert.Len(t, problems, 1)
	assert.Contains(t, problems[0], "between 10 and 2000")

	long := commentPayload{Content: strings.Repeat("x", 2001)}
	assert.NotEmpty(t, validateComment(&long))

	badRating := commentPayload{Content: "This is a perfectly fine comment.", Rating: intPtr(6)}
	assert.Contains(t, validateComment(&badRating), "rating must be between 1 and 5")

	zeroRating := commentPayload{Content: "This is a perfectly fine comment.", Rating: intPtr(0)}
	assert.NotEmpty(t, validateComment(&zeroRating))

	badEmail := commentPayload{Content: "This is a perfectly fine comment.", AuthorEmail: "not-an-email"}
	assert.Contains(t, validateComment(&badEmail), "author_email is not a valid email address")
}

func TestValidateCommentCountsRunesNotBytes(t *testing.T) {
	// 2000 Polish characters is 4000+ bytes but exactly at the limit.
	atLimit := commentPayload{Content: strings.Repeat("ż", 2000)}
	assert.Empty(t, validateComment(&atLimit))

	over := commentPayload{Content: strings.Repeat("ż", 2001)}
	assert.NotEmpty(t, validateComment(&over))

	// 10 runes is enough even when multibyte.
	minimal := commentPayload{Content: strings.Repeat("ó", 10)}
	assert.Empty(t, validateComment(&minimal))
}

func TestValidateInquiry(t *testing.T) {
	valid := inquiryPayload{
		Name:    "Jan Kowalski",
		Email:   "jan@example.com",
		Subject: "Question about courses",
		Message: "I would like to know more about your autumn schedule.",
	}
	assert.Empty(t, validateInquiry(&valid))

	empty := inquiryPayload{}
	problems := validateInquiry(&empty)
	assert.Contains(t, problems, "name is required")
	assert.Contains(t, problems, "email is required")
	assert.Contains(t, problems, "subject is required")
	assert.Contains(t, problems, "message is required")

	bounds := valid
	bounds.Name = "J"
	bounds.Subject = "Hey"
	bounds.Message = "Too short."
	problems = validateInquiry(&bounds)
	assert.Len(t, problems, 3)

	phone := valid
	phone.Phone = strings.Repeat("1", 21)
	assert.Contains(t, validateInquiry(&phone), "phone must be at most 20 characters")

	badEmail := valid
	badEmail.Email = "jan@@example"
	assert.Contains(t, validateInquiry(&badEmail), "email is not a valid email address")
}

func TestValidateInquiryCountsRunesNotBytes(t *testing.T) {
	valid := inquiryPayload{
		Name:    strings.Repeat("ż", 100),
		Email:   "jan@example.com",
		Subject: strings.Repeat("ó", 200),
		Message: strings.Repeat("ą", 2000),
		Phone:   strings.Repeat("9", 20),
	}
	assert.Empty(t, validateInquiry(&valid))

	over := valid
	over.Message = strings.Repeat("ą", 2001)
	assert.Contains(t, validateInquiry(&over), "message must be between 20 and 2000 characters")
}

func TestLikePatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%hello%", likePattern("Hello"))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%foo\_bar%`, likePattern("foo_bar"))
	assert.Equal(t, `%a\\b%`, likePattern(`a\b`))
}

func TestValidateCustomerPost(t *testing.T) {
	valid := customerPostPayload{Language: "en", Title: "My Trip", Content: "<p>Body</p>"}
	assert.Empty(t, validateCustomerPost(&valid))

	empty := customerPostPayload{}
	problems := validateCustomerPost(&empty)
	assert.Contains(t, problems, "title is required")
	assert.Contains(t, problems, "content is required")
	assert.Contains(t, problems, "language is required")

	badLang := valid
	badLang.Language = "de"
	assert.Contains(t, validateCustomerPost(&badLang), "language must be en or pl")
}

func TestBuildCustomerPostFillsOppositeLanguage(t *testing.T) {
	req := customerPostPayload{
		Language: models.LangEN,
		Title:    "Hello World",
		Content:  "Some content",
		Category: "News",
		Name:     "  Jan ",
	}
	post := buildCustomerPost(&req, "hello-world", "Some content")

	assert.Equal(t, models.PostStatusPending, post.Status)
	assert.True(t, post.IsCustomerPost)
	assert.Equal(t, models.LangEN, post.CustomerLanguage)
	assert.Equal(t, "Hello World", post.TitleEN)
	assert.Equal(t, models.PlaceholderTitlePL, post.TitlePL)
	assert.Equal(t, models.PlaceholderContentPL, post.ContentPL)
	assert.Equal(t, "Jan", post.CustomerName)
	assert.Empty(t, post.CategoryPL, "the opposite category stays empty for the fill sweep")
}

func TestBuildCustomerPostPolishSubmission(t *testing.T) {
	req := customerPostPayload{
		Language: models.LangPL,
		Title:    "Witaj świecie",
		Content:  "Jakaś treść",
	}
	post := buildCustomerPost(&req, "witaj-wiecie", "Jakaś treść")

	assert.Equal(t, "Witaj świecie", post.TitlePL)
	assert.Equal(t, models.PlaceholderTitleEN, post.TitleEN)
	assert.Equal(t, models.PlaceholderContentEN, post.ContentEN)
	assert.Equal(t, models.PostStatusPending, post.Status)
}
