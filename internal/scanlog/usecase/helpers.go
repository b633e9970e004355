package usecase

import (
	"time"

	"scanner-srv/internal/model"
	"scanner-srv/internal/scanlog"
	"scanner-srv/internal/scanlog/repository"
	"scanner-srv/pkg/paginator"
)

func toInsertOptions(input scanlog.AppendInput) repository.InsertOptions {
	return repository.InsertOptions{
		CampaignID: input.CampaignID,
		Status:     input.Status,
		Message:    input.Message,
		Details:    input.Details,
		SourceType: input.SourceType,
		LogType:    input.LogType,
	}
}

func toListOptions(input scanlog.ListInput) repository.ListOptions {
	return repository.ListOptions{
		CampaignID: input.CampaignID,
		Status:     input.Status,
		Limit:      input.PaginateQuery.Limit,
		Offset:     input.PaginateQuery.Offset(),
	}
}

func buildListOutput(input scanlog.ListInput, logs []model.ScanLog, total int64) scanlog.ListOutput {
	return scanlog.ListOutput{
		Logs: logs,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(logs)),
			PerPage:     input.PaginateQuery.Limit,
			CurrentPage: input.PaginateQuery.Page,
		},
	}
}

// logEvent is the payload published on each append.
type logEvent struct {
	ID         int64                  `json:"id"`
	CampaignID string                 `json:"campaign_id"`
	Status     string                 `json:"status"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	SourceType string                 `json:"source_type,omitempty"`
	LogType    string                 `json:"log_type"`
	CreatedAt  time.Time              `json:"created_at"`
}

func buildLogEvent(entry model.ScanLog) logEvent {
	return logEvent{
		ID:         entry.ID,
		CampaignID: entry.CampaignID,
		Status:     entry.Status,
		Message:    entry.Message,
		Details:    entry.Details,
		SourceType: entry.SourceType,
		LogType:    entry.LogType,
		CreatedAt:  entry.CreatedAt,
	}
}
