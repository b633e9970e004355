package jwt

import "time"

const (
	// MinSecretKeyLen is the minimum length for HS256 secret key.
	MinSecretKeyLen = 32

	// defaultTTL is used when no TTL is configured.
	defaultTTL = 24 * time.Hour
)
