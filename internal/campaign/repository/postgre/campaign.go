package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"scanner-srv/internal/campaign/repository"
	"scanner-srv/internal/model"

	"github.com/lib/pq"
)

const campaignColumns = `id, user_id, name, description, sources, keywords, source_type, scan_frequency, scan_unit,
		status, ai_filter_enabled, ai_instruction, scan_start_date, campaign_end_date, next_scan_at, created_at, updated_at`

// ListDue returns campaigns eligible for a scan at opt.Now.
func (r *implRepository) ListDue(ctx context.Context, opt repository.ListDueOptions) ([]model.Campaign, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM scanner.campaigns
		WHERE status = $1
		  AND (campaign_end_date IS NULL OR campaign_end_date >= $2)
		  AND (next_scan_at IS NULL OR next_scan_at <= $2)
		ORDER BY next_scan_at NULLS FIRST
	`, campaignColumns)

	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opt.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, model.CampaignStatusActive, opt.Now)
	if err != nil {
		return nil, fmt.Errorf("ListDue: %w", err)
	}
	defer rows.Close()

	var campaigns []model.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("ListDue scan: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	return campaigns, rows.Err()
}

// GetByID returns a single campaign.
func (r *implRepository) GetByID(ctx context.Context, id string) (model.Campaign, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM scanner.campaigns
		WHERE id = $1
	`, campaignColumns)

	row := r.db.QueryRowContext(ctx, query, id)
	c, err := scanCampaign(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Campaign{}, repository.ErrNotFound
		}
		return model.Campaign{}, fmt.Errorf("GetByID: %w", err)
	}

	return c, nil
}

// UpdateNextScanAt advances the campaign schedule.
func (r *implRepository) UpdateNextScanAt(ctx context.Context, opt repository.UpdateNextScanAtOptions) error {
	query := `
		UPDATE scanner.campaigns
		SET next_scan_at = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, opt.ID, opt.NextScanAt)
	if err != nil {
		return fmt.Errorf("UpdateNextScanAt: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdateNextScanAt rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (model.Campaign, error) {
	var (
		c             model.Campaign
		description   sql.NullString
		aiInstruction sql.NullString
		sources       pq.StringArray
		keywords      pq.StringArray
		startDate     sql.NullTime
		endDate       sql.NullTime
		nextScanAt    sql.NullTime
	)

	if err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &description, &sources, &keywords,
		&c.SourceType, &c.ScanFrequency, &c.ScanUnit, &c.Status,
		&c.AIFilterEnabled, &aiInstruction,
		&startDate, &endDate, &nextScanAt, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return model.Campaign{}, err
	}

	c.Description = description.String
	c.AIInstruction = aiInstruction.String
	c.Sources = []string(sources)
	c.Keywords = []string(keywords)
	if startDate.Valid {
		c.ScanStartDate = &startDate.Time
	}
	if endDate.Valid {
		c.CampaignEndDate = &endDate.Time
	}
	if nextScanAt.Valid {
		c.NextScanAt = &nextScanAt.Time
	}

	return c, nil
}
