package model

import "time"

// Scan log statuses.
const (
	ScanLogStatusInfo    = "info"
	ScanLogStatusSuccess = "success"
	ScanLogStatusError   = "error"
)

// Scan log types. A scan attempt emits any number of progress entries
// and exactly one final entry.
const (
	LogTypeProgress = "progress"
	LogTypeFinal    = "final"
)

// ScanLog is a single append-only entry in a campaign's scan history.
type ScanLog struct {
	ID         int64
	CampaignID string
	Status     string // info | success | error
	Message    string

	// Details carries structured context for the entry, e.g. failed
	// sources for a fetch, found_items for a final entry.
	Details map[string]interface{}

	SourceType string
	LogType    string // progress | final

	CreatedAt time.Time
}

// IsFinal reports whether the entry terminates a scan session.
func (s *ScanLog) IsFinal() bool {
	return s.LogType == LogTypeFinal
}

// ScanSession is a derived grouping of scan logs: one run of a campaign
// scan, closed by its final entry. Never stored; reconstructed from the
// log stream on read.
type ScanSession struct {
	CampaignID string
	StartedAt  time.Time
	EndedAt    *time.Time
	Status     string // completed | failed | running
	Logs       []ScanLog
}

// Scan session statuses.
const (
	SessionStatusRunning   = "running"
	SessionStatusCompleted = "completed"
	SessionStatusFailed    = "failed"
)
