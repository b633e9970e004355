package http

import (
	"scanner-srv/internal/model"
	"scanner-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processTriggerScanRequest(c *gin.Context) (triggerScanReq, model.Scope, error) {
	req := triggerScanReq{
		CampaignID: c.Param("campaign_id"),
	}
	if req.CampaignID == "" {
		return triggerScanReq{}, model.Scope{}, errCampaignRequired
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
