package repository

import "errors"

var (
	ErrNotFound       = errors.New("campaign not found")
	ErrFailedToGet    = errors.New("failed to get")
	ErrFailedToList   = errors.New("failed to list")
	ErrFailedToUpdate = errors.New("failed to update")
)
