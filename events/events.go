package events

import (
	"context"
	"time"

	"newsroom/models"
)

// Publisher announces content milestones to downstream consumers
// (newsletter delivery, search indexing). Failures never affect the
// originating operation; callers log and move on.
type Publisher interface {
	ArticlePublished(ctx context.Context, article *models.Article) error
	NewsletterCreated(ctx context.Context, newsletter *models.Newsletter) error
	Close() error
}

type ArticleMessage struct {
	ArticleID   uint       `json:"article_id"`
	Title       string     `json:"title"`
	AuthorID    uint       `json:"author_id"`
	PublisherID *uint      `json:"publisher_id,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	Timestamp   time.Time  `json:"timestamp"`
}

type NewsletterMessage struct {
	NewsletterID uint      `json:"newsletter_id"`
	Title        string    `json:"title"`
	AuthorID     uint      `json:"author_id"`
	PublisherID  *uint     `json:"publisher_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) ArticlePublished(context.Context, *models.Article) error     { return nil }
func (Noop) NewsletterCreated(context.Context, *models.Newsletter) error { return nil }
func (Noop) Close() error                                                { return nil }
