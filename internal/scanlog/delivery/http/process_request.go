package http

import (
	"strconv"

	"scanner-srv/internal/model"
	"scanner-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processListScanLogsRequest(c *gin.Context) (listScanLogsReq, model.Scope, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "15"), 10, 64)

	req := listScanLogsReq{
		CampaignID: c.Param("campaign_id"),
		Status:     c.Query("status"),
		Page:       page,
		Limit:      limit,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processListScanSessionsRequest(c *gin.Context) (listScanSessionsReq, model.Scope, error) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	req := listScanSessionsReq{
		CampaignID: c.Param("campaign_id"),
		Limit:      limit,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
