package http

import (
	"errors"

	"scanner-srv/internal/scanlog"
	pkgErrors "scanner-srv/pkg/errors"
)

var (
	errCampaignRequired = pkgErrors.NewHTTPError(400, "Campaign ID is required")
	errCampaignNotFound = pkgErrors.NewHTTPError(404, "Campaign not found")
	errInvalidStatus    = pkgErrors.NewHTTPError(400, "Invalid scan log status")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scanlog.ErrCampaignRequired):
		return errCampaignRequired
	case errors.Is(err, scanlog.ErrCampaignNotFound):
		return errCampaignNotFound
	case errors.Is(err, scanlog.ErrInvalidStatus):
		return errInvalidStatus
	default:
		panic(err)
	}
}
