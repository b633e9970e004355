package settings

import (
	"context"

	"scanner-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GetByUserID returns the user's scanning settings with the Facebook
	// access token decrypted. Reads through a short-lived Redis cache.
	GetByUserID(ctx context.Context, userID string) (model.Setting, error)
}
