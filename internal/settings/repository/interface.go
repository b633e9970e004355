package repository

import (
	"context"

	"scanner-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// GetByUserID returns the settings row as stored, token still encrypted.
	GetByUserID(ctx context.Context, userID string) (model.Setting, error)
}
