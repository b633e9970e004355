package usecase

import (
	"context"
	"time"

	"scanner-srv/internal/model"
	reportRepo "scanner-srv/internal/report/repository"
)

// persistItems writes matched items as report rows. Rows are insert
// only; the repository skips duplicates, so the returned count is the
// number of genuinely new rows.
func (uc *implUseCase) persistItems(ctx context.Context, c model.Campaign, items []fetchedItem) (int, error) {
	now := time.Now()

	var posts []model.FacebookPost
	var mentions []model.WebsiteMention
	for _, it := range items {
		switch {
		case it.Post != nil:
			p := *it.Post
			p.MatchedKeywords = it.Matched
			p.Evaluation = it.Evaluation
			p.Sentiment = it.Sentiment
			p.ScannedAt = now
			posts = append(posts, p)
		case it.Page != nil:
			mentions = append(mentions, model.WebsiteMention{
				CampaignID:      c.ID,
				URL:             it.Page.URL,
				Title:           it.Page.Title,
				Excerpt:         it.Page.Excerpt,
				MatchedKeywords: it.Matched,
				Evaluation:      it.Evaluation,
				Sentiment:       it.Sentiment,
				ScannedAt:       now,
			})
		}
	}

	total := 0
	if len(posts) > 0 {
		n, err := uc.reportRepo.InsertFacebookPosts(ctx, reportRepo.InsertFacebookPostsOptions{
			CampaignID: c.ID,
			Posts:      posts,
		})
		if err != nil {
			uc.l.Errorf(ctx, "scan.usecase.persistItems: insert posts failed for %s: %v", c.ID, err)
			return total, err
		}
		total += n
	}
	if len(mentions) > 0 {
		n, err := uc.reportRepo.InsertWebsiteMentions(ctx, reportRepo.InsertWebsiteMentionsOptions{
			CampaignID: c.ID,
			Mentions:   mentions,
		})
		if err != nil {
			uc.l.Errorf(ctx, "scan.usecase.persistItems: insert mentions failed for %s: %v", c.ID, err)
			return total, err
		}
		total += n
	}

	return total, nil
}
