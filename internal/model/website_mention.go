package model

import "time"

// WebsiteMention is a matched web page persisted as a report row.
type WebsiteMention struct {
	ID         string
	CampaignID string

	URL     string
	Title   string
	Excerpt string

	MatchedKeywords []string
	Evaluation      string
	Sentiment       *string

	ScannedAt time.Time
	CreatedAt time.Time
}
