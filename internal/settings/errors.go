package settings

import "errors"

var (
	// ErrNotFound - user has no settings row
	ErrNotFound = errors.New("settings: not found")
)
