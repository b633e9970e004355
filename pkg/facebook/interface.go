package facebook

import (
	"context"
	"time"

	pkghttp "scanner-srv/pkg/http"
)

// IClient defines the interface for fetching posts from Facebook groups.
// Implementations are safe for concurrent use.
type IClient interface {
	FetchGroupPosts(ctx context.Context, groupID string, since time.Time) ([]Post, error)
}

// NewClient creates a new Graph API client. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &clientImpl{
		accessToken: cfg.AccessToken,
		baseURL:     baseURL,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   DefaultTimeout,
			Retries:   pkghttp.DefaultRetries,
			RetryWait: pkghttp.DefaultRetryWait,
		}),
	}
}
