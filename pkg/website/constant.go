package website

import "time"

const (
	// DefaultUserAgent identifies the scanner to fetched sites.
	DefaultUserAgent = "Mozilla/5.0 (compatible; scanner-srv/1.0)"
	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 30 * time.Second
	// MaxContentLen caps the extracted text length per page.
	MaxContentLen = 100_000
)
