package repository

import (
	"context"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// InsertFacebookPosts persists matched posts. Rows are insert-only;
	// duplicates on (campaign_id, post_id) are skipped. Returns the
	// number of rows actually inserted.
	InsertFacebookPosts(ctx context.Context, opt InsertFacebookPostsOptions) (int, error)
	// InsertWebsiteMentions persists matched pages. Rows are insert-only;
	// duplicates on (campaign_id, url, scanned_at::date) are skipped.
	InsertWebsiteMentions(ctx context.Context, opt InsertWebsiteMentionsOptions) (int, error)
}
