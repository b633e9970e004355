package http

import (
	"context"

	"scanner-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Trigger a campaign scan
// @Description Start a scan for one campaign. The scan runs in the background; its progress is visible in the campaign's scan logs.
// @Tags Scan
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Success 202 {object} triggerScanResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/scans [post]
func (h *handler) TriggerScan(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processTriggerScanRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "scan.delivery.http.TriggerScan: processTriggerScanRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// Detached from the request; a scan can outlive it by minutes.
	go func(ctx context.Context) {
		if err := h.uc.TriggerCampaign(ctx, sc, req.toInput()); err != nil {
			h.l.Errorf(ctx, "scan.delivery.http.TriggerScan: usecase TriggerCampaign failed: %v", err)
		}
	}(context.WithoutCancel(ctx))

	response.Accepted(c, triggerScanResp{CampaignID: req.CampaignID})
}

// @Summary Trigger scans for all due campaigns
// @Description Scan every campaign whose next scan time has arrived. Called by the scheduler.
// @Tags Scan
// @Accept json
// @Produce json
// @Success 200 {object} triggerDueResp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /internal/api/v1/scans/trigger-due [post]
func (h *handler) TriggerDueScans(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.TriggerDue(ctx)
	if err != nil {
		h.l.Errorf(ctx, "scan.delivery.http.TriggerDueScans: usecase TriggerDue failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTriggerDueResp(o))
}
