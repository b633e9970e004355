package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// FetchGroupPosts fetches posts from a group feed, paging until exhausted or
// MaxPages. Posts created before since are excluded; pass the zero time to
// fetch without a lower bound.
func (c *clientImpl) FetchGroupPosts(ctx context.Context, groupID string, since time.Time) ([]Post, error) {
	endpoint := c.feedURL(groupID, since)

	var posts []Post
	for page := 0; page < MaxPages && endpoint != ""; page++ {
		body, statusCode, err := c.httpClient.Get(ctx, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
		}

		switch {
		case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
			return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, statusCode)
		case statusCode != http.StatusOK:
			return nil, fmt.Errorf("%w: status %d", ErrUnreachable, statusCode)
		}

		var resp feedResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
		if resp.Error != nil {
			if resp.Error.Code == 190 || resp.Error.Code == 200 {
				return nil, fmt.Errorf("%w: %s", ErrUnauthorized, resp.Error.Message)
			}
			return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, resp.Error.Message)
		}

		pagePosts, err := decodePosts(groupID, resp.Data, since)
		if err != nil {
			return nil, err
		}
		posts = append(posts, pagePosts...)

		endpoint = resp.Paging.Next
	}

	return posts, nil
}

func (c *clientImpl) feedURL(groupID string, since time.Time) string {
	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("fields", "id,message,from,permalink_url,created_time")
	params.Set("limit", fmt.Sprintf("%d", DefaultPageSize))
	if !since.IsZero() {
		params.Set("since", fmt.Sprintf("%d", since.Unix()))
	}
	return fmt.Sprintf("%s/%s/feed?%s", c.baseURL, url.PathEscape(groupID), params.Encode())
}

func decodePosts(groupID string, items []feedPost, since time.Time) ([]Post, error) {
	var posts []Post
	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("%w: post without id", ErrMalformedResponse)
		}

		var postedAt time.Time
		if item.CreatedTime != "" {
			parsed, err := parseGraphTime(item.CreatedTime)
			if err != nil {
				return nil, fmt.Errorf("%w: bad created_time %q", ErrMalformedResponse, item.CreatedTime)
			}
			postedAt = parsed
		}

		if !since.IsZero() && !postedAt.IsZero() && postedAt.Before(since) {
			continue
		}

		posts = append(posts, Post{
			ID:         item.ID,
			GroupID:    groupID,
			AuthorID:   item.From.ID,
			AuthorName: item.From.Name,
			Content:    item.Message,
			Permalink:  item.PermalinkURL,
			PostedAt:   postedAt,
		})
	}
	return posts, nil
}

// parseGraphTime parses the Graph API timestamp format (RFC3339 with
// numeric zone and no colon, e.g. 2024-01-02T15:04:05+0000).
func parseGraphTime(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02T15:04:05-0700", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
