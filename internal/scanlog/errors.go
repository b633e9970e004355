package scanlog

import "errors"

// Domain errors
var (
	// ErrCampaignRequired - campaign ID is required for every entry
	ErrCampaignRequired = errors.New("scanlog: campaign_id is required")

	// ErrInvalidStatus - status is outside the scan status set
	ErrInvalidStatus = errors.New("scanlog: invalid status")

	// ErrInvalidLogType - log type is neither progress nor final
	ErrInvalidLogType = errors.New("scanlog: invalid log type")

	// ErrCampaignNotFound - campaign does not exist
	ErrCampaignNotFound = errors.New("scanlog: campaign not found")
)
