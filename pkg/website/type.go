package website

import (
	"time"

	pkghttp "scanner-srv/pkg/http"
)

// ClientConfig holds the configuration for the website fetcher.
type ClientConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// clientImpl implements IClient.
type clientImpl struct {
	userAgent  string
	httpClient pkghttp.IClient
}

// Page is the extracted content of a fetched web page.
type Page struct {
	URL       string
	Title     string
	Content   string
	FetchedAt time.Time
}
