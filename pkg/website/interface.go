package website

import (
	"context"

	pkghttp "scanner-srv/pkg/http"
)

// IClient defines the interface for fetching and extracting web pages.
// Implementations are safe for concurrent use.
type IClient interface {
	FetchPage(ctx context.Context, pageURL string) (Page, error)
}

// NewClient creates a new website fetcher. Returns the interface.
func NewClient(cfg ClientConfig) IClient {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &clientImpl{
		userAgent: userAgent,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   timeout,
			Retries:   pkghttp.DefaultRetries,
			RetryWait: pkghttp.DefaultRetryWait,
		}),
	}
}
