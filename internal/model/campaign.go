package model

import (
	"strings"
	"time"
)

// Campaign source types.
const (
	SourceTypeFacebook = "facebook"
	SourceTypeWebsite  = "website"
	SourceTypeCombined = "combined"
)

// Campaign statuses.
const (
	CampaignStatusActive = "active"
	CampaignStatusPaused = "paused"
)

// Scan cadence units.
const (
	ScanUnitMinute = "minute"
	ScanUnitHour   = "hour"
	ScanUnitDay    = "day"
)

// Campaign is a monitoring campaign owned by a user.
type Campaign struct {
	ID          string
	UserID      string
	Name        string
	Description string

	// Sources lists what the campaign watches: Facebook group IDs and
	// website URLs, mixed.
	Sources  []string
	Keywords []string

	SourceType string // facebook | website | combined

	// ScanFrequency and ScanUnit form the cadence, e.g. every 2 hours.
	ScanFrequency int
	ScanUnit      string // minute | hour | day

	Status string // active | paused

	// AIFilterEnabled turns sentiment enrichment on for social items.
	AIFilterEnabled bool
	// AIInstruction overrides the user's prompt template when set.
	AIInstruction string

	ScanStartDate   *time.Time
	CampaignEndDate *time.Time
	NextScanAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the campaign is eligible for scanning at all.
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

// IsExpired reports whether the campaign end date has passed.
func (c *Campaign) IsExpired(now time.Time) bool {
	return c.CampaignEndDate != nil && now.After(*c.CampaignEndDate)
}

// IsDue reports whether the campaign should be scanned now. A campaign
// that has never been scheduled (nil NextScanAt) is due immediately.
func (c *Campaign) IsDue(now time.Time) bool {
	if c.NextScanAt == nil {
		return true
	}
	return !now.Before(*c.NextScanAt)
}

// CadenceDuration converts the scan cadence to a duration.
// Unrecognized units fall back to hours; frequencies below one count as one.
func (c *Campaign) CadenceDuration() time.Duration {
	frequency := c.ScanFrequency
	if frequency < 1 {
		frequency = 1
	}

	var unit time.Duration
	switch c.ScanUnit {
	case ScanUnitMinute:
		unit = time.Minute
	case ScanUnitDay:
		unit = 24 * time.Hour
	default:
		unit = time.Hour
	}

	return time.Duration(frequency) * unit
}

// IsWebsiteSource reports whether a source entry is a website URL.
// Anything with an http scheme that is not a facebook.com link counts;
// everything else is treated as a Facebook group ID.
func IsWebsiteSource(source string) bool {
	s := strings.ToLower(strings.TrimSpace(source))
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	return !strings.Contains(s, "facebook.com")
}

// FacebookSources returns the campaign sources that are Facebook groups.
func (c *Campaign) FacebookSources() []string {
	var out []string
	for _, s := range c.Sources {
		if !IsWebsiteSource(s) {
			out = append(out, s)
		}
	}
	return out
}

// WebsiteSources returns the campaign sources that are website URLs.
func (c *Campaign) WebsiteSources() []string {
	var out []string
	for _, s := range c.Sources {
		if IsWebsiteSource(s) {
			out = append(out, s)
		}
	}
	return out
}
