package services

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/Napier40/Akademia-Studenta/models"
	"github.com/Napier40/Akademia-Studenta/utils"
)

// StartTranslationCron runs a background sweep that backfills pending
// customer posts whose opposite-language fields still carry placeholders.
// Each successfully filled post is persisted; failed posts are logged and
// retried on the next tick.
func StartTranslationCron(db *gorm.DB, ts *TranslationService, spec string) (*cron.Cron, error) {
	if spec == "" {
		spec = "@every 15m"
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { RunTranslationSweep(db, ts) }); err != nil {
		return nil, fmt.Errorf("invalid translation cron spec %q: %w", spec, err)
	}
	c.Start()
	return c, nil
}

// RunTranslationSweep performs one fill pass over all pending customer
// posts.
func RunTranslationSweep(db *gorm.DB, ts *TranslationService) {
	if !ts.IsAvailable() {
		return
	}

	var posts []models.BlogPost
	err := db.Where("is_customer_post = ? AND status = ?", true, models.PostStatusPending).Find(&posts).Error
	if err != nil {
		utils.LogError(err, "translation sweep: load pending posts")
		return
	}

	for i := range posts {
		post := &posts[i]
		changed, err := TranslateBlogPost(post, ts)
		if err != nil {
			utils.LogError(err, fmt.Sprintf("translation sweep: post %d", post.ID))
			continue
		}
		if !changed {
			continue
		}
		if err := db.Save(post).Error; err != nil {
			utils.LogError(err, fmt.Sprintf("translation sweep: save post %d", post.ID))
			continue
		}
		log.Printf("Translated customer post %d (%s)", post.ID, post.Slug)
	}
}
