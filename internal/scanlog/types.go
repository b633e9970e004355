package scanlog

import (
	"scanner-srv/internal/model"
	"scanner-srv/pkg/paginator"
)

type AppendInput struct {
	CampaignID string
	Status     string
	Message    string
	Details    map[string]interface{}
	SourceType string
	LogType    string
}

type ListInput struct {
	CampaignID    string
	Status        string
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Logs      []model.ScanLog
	Paginator paginator.Paginator
}

type ListSessionsInput struct {
	CampaignID string
	Limit      int
}
