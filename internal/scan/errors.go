package scan

import "errors"

// Domain errors
var (
	// ErrCampaignNotFound - campaign does not exist
	ErrCampaignNotFound = errors.New("scan: campaign not found")

	// ErrCampaignNotActive - campaign is paused
	ErrCampaignNotActive = errors.New("scan: campaign is not active")

	// ErrCampaignExpired - campaign end date has passed
	ErrCampaignExpired = errors.New("scan: campaign has expired")

	// ErrScanInProgress - another scan holds the campaign lock
	ErrScanInProgress = errors.New("scan: scan already in progress")

	// ErrAllSourcesFailed - not a single source could be fetched
	ErrAllSourcesFailed = errors.New("scan: all sources failed")
)
