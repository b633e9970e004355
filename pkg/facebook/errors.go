package facebook

import "errors"

var (
	// ErrUnreachable means the Graph API could not be reached.
	ErrUnreachable = errors.New("facebook: source unreachable")
	// ErrUnauthorized means the access token was rejected or lacks permission.
	ErrUnauthorized = errors.New("facebook: unauthorized")
	// ErrMalformedResponse means the Graph API returned an unparseable body.
	ErrMalformedResponse = errors.New("facebook: malformed response")
)
