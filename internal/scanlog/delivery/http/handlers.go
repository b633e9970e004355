package http

import (
	"scanner-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary List scan logs
// @Description Paginate the append-only scan log entries of a campaign, newest first
// @Tags ScanLog
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Number of records per page (default 15)"
// @Success 200 {object} listScanLogsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/scan-logs [get]
func (h *handler) ListScanLogs(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListScanLogsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "scanlog.delivery.http.ListScanLogs: processListScanLogsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "scanlog.delivery.http.ListScanLogs: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListScanLogsResp(o))
}

// @Summary List scan sessions
// @Description Group a campaign's scan logs into sessions, newest first
// @Tags ScanLog
// @Accept json
// @Produce json
// @Param campaign_id path string true "Campaign ID"
// @Param limit query int false "Maximum number of sessions (default all)"
// @Success 200 {array} scanSessionResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/campaigns/{campaign_id}/scan-sessions [get]
func (h *handler) ListScanSessions(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListScanSessionsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "scanlog.delivery.http.ListScanSessions: processListScanSessionsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListSessions(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "scanlog.delivery.http.ListScanSessions: usecase ListSessions failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListScanSessionsResp(o))
}
