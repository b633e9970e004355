package repository

import (
	"context"

	"scanner-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// ListDue returns active, non-expired campaigns whose next scan time
	// has arrived (or was never set).
	ListDue(ctx context.Context, opt ListDueOptions) ([]model.Campaign, error)
	GetByID(ctx context.Context, id string) (model.Campaign, error)
	// UpdateNextScanAt advances the campaign schedule.
	UpdateNextScanAt(ctx context.Context, opt UpdateNextScanAtOptions) error
}
