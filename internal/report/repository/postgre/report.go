package postgre

import (
	"context"
	"fmt"
	"time"

	"scanner-srv/internal/report/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// InsertFacebookPosts persists matched posts one by one inside a
// transaction so a single bad row does not lose the batch.
func (r *implRepository) InsertFacebookPosts(ctx context.Context, opt repository.InsertFacebookPostsOptions) (int, error) {
	if len(opt.Posts) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("InsertFacebookPosts begin: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO scanner.facebook_posts
			(id, campaign_id, post_id, group_id, author_name, content, permalink,
			 matched_keywords, evaluation, sentiment, posted_at, scanned_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (campaign_id, post_id) DO NOTHING
	`

	now := time.Now()
	inserted := 0
	for _, post := range opt.Posts {
		result, err := tx.ExecContext(ctx, query,
			uuid.New().String(), opt.CampaignID, post.PostID, post.GroupID,
			post.AuthorName, post.Content, post.Permalink,
			pq.StringArray(post.MatchedKeywords), post.Evaluation, post.Sentiment,
			post.PostedAt, post.ScannedAt, now,
		)
		if err != nil {
			return 0, fmt.Errorf("InsertFacebookPosts: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("InsertFacebookPosts rows affected: %w", err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("InsertFacebookPosts commit: %w", err)
	}

	return inserted, nil
}

// InsertWebsiteMentions persists matched pages inside a transaction.
func (r *implRepository) InsertWebsiteMentions(ctx context.Context, opt repository.InsertWebsiteMentionsOptions) (int, error) {
	if len(opt.Mentions) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("InsertWebsiteMentions begin: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO scanner.website_mentions
			(id, campaign_id, url, title, excerpt,
			 matched_keywords, evaluation, sentiment, scanned_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (campaign_id, url, (((scanned_at AT TIME ZONE 'UTC')::date))) DO NOTHING
	`

	now := time.Now()
	inserted := 0
	for _, mention := range opt.Mentions {
		result, err := tx.ExecContext(ctx, query,
			uuid.New().String(), opt.CampaignID, mention.URL, mention.Title,
			mention.Excerpt, pq.StringArray(mention.MatchedKeywords),
			mention.Evaluation, mention.Sentiment, mention.ScannedAt, now,
		)
		if err != nil {
			return 0, fmt.Errorf("InsertWebsiteMentions: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("InsertWebsiteMentions rows affected: %w", err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("InsertWebsiteMentions commit: %w", err)
	}

	return inserted, nil
}
