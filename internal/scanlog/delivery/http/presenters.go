package http

import (
	"time"

	"scanner-srv/internal/model"
	"scanner-srv/internal/scanlog"
	"scanner-srv/pkg/paginator"
)

type listScanLogsReq struct {
	CampaignID string
	Status     string
	Page       int
	Limit      int64
}

func (r listScanLogsReq) toInput() scanlog.ListInput {
	return scanlog.ListInput{
		CampaignID: r.CampaignID,
		Status:     r.Status,
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type listScanSessionsReq struct {
	CampaignID string
	Limit      int
}

func (r listScanSessionsReq) toInput() scanlog.ListSessionsInput {
	return scanlog.ListSessionsInput{
		CampaignID: r.CampaignID,
		Limit:      r.Limit,
	}
}

type scanLogResp struct {
	ID         int64                  `json:"id"`
	CampaignID string                 `json:"campaign_id"`
	Status     string                 `json:"status"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	SourceType string                 `json:"source_type,omitempty"`
	LogType    string                 `json:"log_type"`
	CreatedAt  time.Time              `json:"created_at"`
}

type listScanLogsResp struct {
	Logs      []scanLogResp               `json:"logs"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type scanSessionResp struct {
	CampaignID string        `json:"campaign_id"`
	StartedAt  time.Time     `json:"started_at"`
	EndedAt    *time.Time    `json:"ended_at,omitempty"`
	Status     string        `json:"status"`
	Logs       []scanLogResp `json:"logs"`
}

func newScanLogResp(entry model.ScanLog) scanLogResp {
	return scanLogResp{
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

func (h *handler) newListScanLogsResp(o scanlog.ListOutput) listScanLogsResp {
	logs := make([]scanLogResp, 0, len(o.Logs))
	for _, entry := range o.Logs {
		logs = append(logs, newScanLogResp(entry))
	}
	return listScanLogsResp{
		Logs:      logs,
		Paginator: o.Paginator.ToResponse(),
	}
}

func (h *handler) newListScanSessionsResp(sessions []model.ScanSession) []scanSessionResp {
	resp := make([]scanSessionResp, 0, len(sessions))
	for _, session := range sessions {
		logs := make([]scanLogResp, 0, len(session.Logs))
		for _, entry := range session.Logs {
			logs = append(logs, newScanLogResp(entry))
		}
		resp = append(resp, scanSessionResp{
			CampaignID: session.CampaignID,
			StartedAt:  session.StartedAt,
			EndedAt:    session.EndedAt,
			Status:     session.Status,
			Logs:       logs,
		})
	}
	return resp
}
