package facebook

import "time"

const (
	// BaseURL is the Facebook Graph API base URL.
	BaseURL = "https://graph.facebook.com/v19.0"
	// DefaultPageSize is the number of posts requested per page.
	DefaultPageSize = 100
	// MaxPages bounds pagination for a single group fetch.
	MaxPages = 10
	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 30 * time.Second
)
