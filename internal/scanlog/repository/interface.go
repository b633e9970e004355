package repository

import (
	"context"

	"scanner-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// Insert appends one log entry. The scan log table is append-only:
	// no update or delete operations exist.
	Insert(ctx context.Context, opt InsertOptions) (model.ScanLog, error)
	// List returns entries for a campaign, newest first.
	List(ctx context.Context, opt ListOptions) ([]model.ScanLog, int64, error)
	// ListByCampaignAsc returns all entries for a campaign, oldest first.
	// Used for session reconstruction.
	ListByCampaignAsc(ctx context.Context, campaignID string) ([]model.ScanLog, error)
}
