package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"scanner-srv/internal/model"
	"scanner-srv/internal/scanlog/repository"
)

const scanLogColumns = `id, campaign_id, status, message, details, source_type, log_type, created_at`

// Insert appends one log entry.
func (r *implRepository) Insert(ctx context.Context, opt repository.InsertOptions) (model.ScanLog, error) {
	query := fmt.Sprintf(`
		INSERT INTO scanner.scan_logs (campaign_id, status, message, details, source_type, log_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, scanLogColumns)

	var details interface{}
	if opt.Details != nil {
		body, err := json.Marshal(opt.Details)
		if err != nil {
			return model.ScanLog{}, fmt.Errorf("Insert marshal details: %w", err)
		}
		details = string(body)
	}

	row := r.db.QueryRowContext(ctx, query,
		opt.CampaignID, opt.Status, opt.Message, details, opt.SourceType, opt.LogType, time.Now(),
	)

	entry, err := scanLog(row)
	if err != nil {
		return model.ScanLog{}, fmt.Errorf("Insert: %w", err)
	}

	return entry, nil
}

// List returns entries for a campaign, newest first, with the total count.
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.ScanLog, int64, error) {
	countQuery := `SELECT COUNT(*) FROM scanner.scan_logs WHERE campaign_id = $1`
	query := fmt.Sprintf(`
		SELECT %s
		FROM scanner.scan_logs
		WHERE campaign_id = $1
	`, scanLogColumns)
	args := []interface{}{opt.CampaignID}

	if opt.Status != "" {
		countQuery += ` AND status = $2`
		query += ` AND status = $2`
		args = append(args, opt.Status)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("List count: %w", err)
	}

	query += ` ORDER BY created_at DESC, id DESC`
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opt.Limit)
	}
	if opt.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("List: %w", err)
	}
	defer rows.Close()

	var logs []model.ScanLog
	for rows.Next() {
		entry, err := scanLog(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("List scan: %w", err)
		}
		logs = append(logs, entry)
	}

	return logs, total, rows.Err()
}

// ListByCampaignAsc returns all entries for a campaign, oldest first.
func (r *implRepository) ListByCampaignAsc(ctx context.Context, campaignID string) ([]model.ScanLog, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM scanner.scan_logs
		WHERE campaign_id = $1
		ORDER BY created_at ASC, id ASC
	`, scanLogColumns)

	rows, err := r.db.QueryContext(ctx, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("ListByCampaignAsc: %w", err)
	}
	defer rows.Close()

	var logs []model.ScanLog
	for rows.Next() {
		entry, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("ListByCampaignAsc scan: %w", err)
		}
		logs = append(logs, entry)
	}

	return logs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLog(row rowScanner) (model.ScanLog, error) {
	var (
		entry   model.ScanLog
		details sql.NullString
	)

	if err := row.Scan(
		&entry.ID, &entry.CampaignID, &entry.Status, &entry.Message,
		&details, &entry.SourceType, &entry.LogType, &entry.CreatedAt,
	); err != nil {
		return model.ScanLog{}, err
	}

	if details.Valid && details.String != "" {
		if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
			return model.ScanLog{}, fmt.Errorf("unmarshal details: %w", err)
		}
	}

	return entry, nil
}
