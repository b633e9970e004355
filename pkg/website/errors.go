package website

import "errors"

var (
	// ErrUnreachable means the page could not be fetched.
	ErrUnreachable = errors.New("website: source unreachable")
	// ErrUnauthorized means the page refused access.
	ErrUnauthorized = errors.New("website: unauthorized")
	// ErrMalformedResponse means the page body could not be parsed.
	ErrMalformedResponse = errors.New("website: malformed response")
)
