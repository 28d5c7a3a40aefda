package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return db, mock
}

func publicContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", target, nil)
	return c, w
}

func TestListQueriesPublishedPostsOnly(t *testing.T) {
	db, mock := newMockDB(t)
	bc := NewBlogController(db, nil)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "blog_posts" WHERE status = \$1`).
		WithArgs(models.PostStatusPublished).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "blog_posts" WHERE status = \$1 .+ ORDER BY published_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "title_en", "status"}).
			AddRow(1, "hello-world", "Hello World", models.PostStatusPublished))

	c, w := publicContext(t, "/blog")
	bc.List(c)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "hello-world")
	// Drafts and pending submissions never reach this query: the status
	// filter is part of the statement, asserted by the expectations above.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySlugFiltersToApprovedComments(t *testing.T) {
	db, mock := newMockDB(t)
	bc := NewBlogController(db, nil)

	mock.ExpectQuery(`SELECT \* FROM "blog_posts" WHERE \(?slug = \$1 AND status = \$2\)?`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "title_en", "content_en", "status", "views_count"}).
			AddRow(1, "hello-world", "Hello World", "<p>Some content</p>", models.PostStatusPublished, 3))
	mock.ExpectExec(`UPDATE "blog_posts" SET "views_count"=views_count \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE \(?post_id = \$1 AND status = \$2\)?`).
		WithArgs(sqlmock.AnyArg(), models.CommentStatusApproved).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "author_name", "content", "status"}).
			AddRow(7, 1, "", "Great post, thanks for sharing!", models.CommentStatusApproved))

	c, w := publicContext(t, "/blog/hello-world")
	c.Params = gin.Params{{Key: "slug", Value: "hello-world"}}
	bc.GetBySlug(c)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Anonymous")
	assert.Contains(t, w.Body.String(), "Great post")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBySlugUnpublishedIs404(t *testing.T) {
	db, mock := newMockDB(t)
	bc := NewBlogController(db, nil)

	// A draft or pending post does not satisfy the published filter, so the
	// lookup comes back empty and the handler answers 404.
	mock.ExpectQuery(`SELECT \* FROM "blog_posts" WHERE \(?slug = \$1 AND status = \$2\)?`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "status"}))

	c, w := publicContext(t, "/blog/still-a-draft")
	c.Params = gin.Params{{Key: "slug", Value: "still-a-draft"}}
	bc.GetBySlug(c)

	assert.Equal(t, 404, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
