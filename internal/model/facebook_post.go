package model

import "time"

// Sentiment values produced by AI enrichment. A nil sentiment on a report
// row means enrichment failed for that item.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// EvaluationUnavailable is stored when AI enrichment fails for an item.
const EvaluationUnavailable = "AI evaluation unavailable"

// FacebookPost is a matched post persisted as a report row.
type FacebookPost struct {
	ID         string
	CampaignID string

	PostID     string
	GroupID    string
	AuthorName string
	Content    string
	Permalink  string

	MatchedKeywords []string
	Evaluation      string
	Sentiment       *string

	PostedAt  *time.Time
	ScannedAt time.Time
	CreatedAt time.Time
}
