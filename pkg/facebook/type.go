package facebook

import (
	"time"

	pkghttp "scanner-srv/pkg/http"
)

// ClientConfig holds the configuration for the Graph API client.
type ClientConfig struct {
	AccessToken string
	BaseURL     string
}

// clientImpl implements IClient.
type clientImpl struct {
	accessToken string
	baseURL     string
	httpClient  pkghttp.IClient
}

// Post is a single post fetched from a Facebook group feed.
type Post struct {
	ID         string
	GroupID    string
	AuthorID   string
	AuthorName string
	Content    string
	Permalink  string
	PostedAt   time.Time
}

// feedResponse is the Graph API group feed response body.
type feedResponse struct {
	Data []feedPost `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
	Error *graphError `json:"error"`
}

type feedPost struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	From    struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"from"`
	PermalinkURL string `json:"permalink_url"`
	CreatedTime  string `json:"created_time"`
}

type graphError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}
