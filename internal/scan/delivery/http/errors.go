package http

import (
	"errors"

	"scanner-srv/internal/scan"
	pkgErrors "scanner-srv/pkg/errors"
)

var (
	errCampaignRequired  = pkgErrors.NewHTTPError(400, "Campaign ID is required")
	errCampaignNotFound  = pkgErrors.NewHTTPError(404, "Campaign not found")
	errCampaignNotActive = pkgErrors.NewHTTPError(400, "Campaign is not active")
	errCampaignExpired   = pkgErrors.NewHTTPError(400, "Campaign has expired")
	errScanInProgress    = pkgErrors.NewHTTPError(409, "A scan is already running for this campaign")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scan.ErrCampaignNotFound):
		return errCampaignNotFound
	case errors.Is(err, scan.ErrCampaignNotActive):
		return errCampaignNotActive
	case errors.Is(err, scan.ErrCampaignExpired):
		return errCampaignExpired
	case errors.Is(err, scan.ErrScanInProgress):
		return errScanInProgress
	default:
		panic(err)
	}
}
