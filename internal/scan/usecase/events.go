package usecase

import (
	"context"
	"encoding/json"
	"time"

	"scanner-srv/internal/model"
)

// Scan event types published to Kafka.
const (
	EventScanCompleted = "scan.completed"
	EventScanFailed    = "scan.failed"
)

type scanEvent struct {
	Type       string    `json:"type"`
	CampaignID string    `json:"campaign_id"`
	UserID     string    `json:"user_id"`
	Fetched    int       `json:"fetched"`
	Matched    int       `json:"matched"`
	Persisted  int       `json:"persisted"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// publishEvent emits a scan outcome event. Publishing is best effort; a
// broker failure never affects the scan result.
func (uc *implUseCase) publishEvent(ctx context.Context, c model.Campaign, succeeded bool, stats *scanStats) {
	if uc.producer == nil {
		return
	}

	eventType := EventScanCompleted
	if !succeeded {
		eventType = EventScanFailed
	}

	payload, err := json.Marshal(scanEvent{
		Type:       eventType,
		CampaignID: c.ID,
		UserID:     c.UserID,
		Fetched:    stats.Fetched,
		Matched:    stats.Matched,
		Persisted:  stats.Persisted,
		StartedAt:  stats.StartedAt,
		FinishedAt: time.Now(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "scan.usecase.publishEvent: marshal failed for %s: %v", c.ID, err)
		return
	}

	if err := uc.producer.Publish([]byte(c.ID), payload); err != nil {
		uc.l.Warnf(ctx, "scan.usecase.publishEvent: publish %s failed for %s: %v", eventType, c.ID, err)
	}
}
