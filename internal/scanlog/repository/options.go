package repository

type InsertOptions struct {
	CampaignID string
	Status     string
	Message    string
	Details    map[string]interface{}
	SourceType string
	LogType    string
}

type ListOptions struct {
	CampaignID string
	Status     string
	Limit      int64
	Offset     int64
}
