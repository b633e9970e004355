package repository

import "errors"

var (
	ErrNotFound    = errors.New("settings not found")
	ErrFailedToGet = errors.New("failed to get")
)
