package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"scanner-srv/internal/model"
	"scanner-srv/internal/scan"
	"scanner-srv/internal/settings"
	"scanner-srv/pkg/facebook"
	"scanner-srv/pkg/website"
)

// excerptMaxLen bounds the page excerpt stored on a report row.
const excerptMaxLen = 2000

func (uc *implUseCase) fetchFacebook(ctx context.Context, c model.Campaign, stats *scanStats) ([]fetchedItem, error) {
	groups := c.FacebookSources()
	items := uc.fetchGroupItems(ctx, c, groups, stats)
	return items, allSourcesFailed(len(groups), stats)
}

func (uc *implUseCase) fetchWebsites(ctx context.Context, c model.Campaign, stats *scanStats) ([]fetchedItem, error) {
	urls := c.WebsiteSources()
	items := uc.fetchPageItems(ctx, urls, stats)
	return items, allSourcesFailed(len(urls), stats)
}

func (uc *implUseCase) fetchCombined(ctx context.Context, c model.Campaign, stats *scanStats) ([]fetchedItem, error) {
	groups := c.FacebookSources()
	urls := c.WebsiteSources()

	items := uc.fetchGroupItems(ctx, c, groups, stats)
	items = append(items, uc.fetchPageItems(ctx, urls, stats)...)
	return items, allSourcesFailed(len(groups)+len(urls), stats)
}

// allSourcesFailed reports whether every attempted source errored. A scan
// with nothing left to work on cannot produce a meaningful result.
func allSourcesFailed(attempted int, stats *scanStats) error {
	if attempted > 0 && len(stats.SourceErrors) >= attempted {
		return scan.ErrAllSourcesFailed
	}
	return nil
}

// fetchGroupItems pulls posts from every Facebook group concurrently.
// Per-group failures are recorded and the rest of the scan proceeds.
func (uc *implUseCase) fetchGroupItems(ctx context.Context, c model.Campaign, groups []string, stats *scanStats) []fetchedItem {
	if len(groups) == 0 {
		return nil
	}

	token, err := uc.resolveFacebookToken(ctx, c.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "scan.usecase.fetchGroupItems: no facebook token for campaign %s: %v", c.ID, err)
		for _, g := range groups {
			stats.SourceErrors = append(stats.SourceErrors, sourceError{Source: g, Err: err})
		}
		return nil
	}
	client := uc.newFacebookClient(token)

	var since time.Time
	if c.ScanStartDate != nil {
		since = *c.ScanStartDate
	}

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		sem   = make(chan struct{}, uc.cfg.SourceWorkers)
		items []fetchedItem
	)

	for _, groupID := range groups {
		wg.Add(1)
		sem <- struct{}{}
		go func(groupID string) {
			defer wg.Done()
			defer func() { <-sem }()

			posts, err := safeFetchPosts(ctx, client, groupID, since)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.l.Warnf(ctx, "scan.usecase.fetchGroupItems: group %s: %v", groupID, err)
				stats.SourceErrors = append(stats.SourceErrors, sourceError{Source: groupID, Err: err})
				return
			}
			for _, p := range posts {
				items = append(items, fetchedItem{
					Source: groupID,
					Post:   toModelPost(c.ID, p),
				})
			}
		}(groupID)
	}
	wg.Wait()

	return items
}

// fetchPageItems pulls every website source concurrently. Per-page
// failures are recorded and the rest of the scan proceeds.
func (uc *implUseCase) fetchPageItems(ctx context.Context, urls []string, stats *scanStats) []fetchedItem {
	if len(urls) == 0 {
		return nil
	}

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		sem   = make(chan struct{}, uc.cfg.SourceWorkers)
		items []fetchedItem
	)

	for _, pageURL := range urls {
		wg.Add(1)
		sem <- struct{}{}
		go func(pageURL string) {
			defer wg.Done()
			defer func() { <-sem }()

			page, err := safeFetchPage(ctx, uc.websiteClient, pageURL)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				uc.l.Warnf(ctx, "scan.usecase.fetchPageItems: page %s: %v", pageURL, err)
				stats.SourceErrors = append(stats.SourceErrors, sourceError{Source: pageURL, Err: err})
				return
			}
			items = append(items, fetchedItem{
				Source: pageURL,
				Page: &websitePage{
					URL:     page.URL,
					Title:   page.Title,
					Excerpt: truncate(page.Content, excerptMaxLen),
				},
			})
		}(pageURL)
	}
	wg.Wait()

	return items
}

// safeFetchPosts contains a panicking client to its own source. The
// worker goroutines run outside the scan-level recover, so a panic here
// would otherwise kill the process.
func safeFetchPosts(ctx context.Context, client facebook.IClient, groupID string, since time.Time) (posts []facebook.Post, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fetch panicked: %v", r)
		}
	}()
	return client.FetchGroupPosts(ctx, groupID, since)
}

func safeFetchPage(ctx context.Context, client website.IClient, pageURL string) (page website.Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("fetch panicked: %v", r)
		}
	}()
	return client.FetchPage(ctx, pageURL)
}

// resolveFacebookToken prefers the campaign owner's settings token and
// falls back to the service-wide token.
func (uc *implUseCase) resolveFacebookToken(ctx context.Context, userID string) (string, error) {
	setting, err := uc.settingsUC.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, settings.ErrNotFound) {
		return "", err
	}
	if err == nil && setting.FacebookAccessToken != "" {
		return setting.FacebookAccessToken, nil
	}
	if uc.cfg.FallbackFacebookToken != "" {
		return uc.cfg.FallbackFacebookToken, nil
	}
	return "", errors.New("no facebook access token configured")
}

func toModelPost(campaignID string, p facebook.Post) *model.FacebookPost {
	post := &model.FacebookPost{
		CampaignID: campaignID,
		PostID:     p.ID,
		GroupID:    p.GroupID,
		AuthorName: p.AuthorName,
		Content:    p.Content,
		Permalink:  p.Permalink,
	}
	if !p.PostedAt.IsZero() {
		postedAt := p.PostedAt
		post.PostedAt = &postedAt
	}
	return post
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
