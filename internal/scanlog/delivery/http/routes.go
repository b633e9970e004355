package http

import (
	"scanner-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/campaigns/:campaign_id/scan-logs", h.ListScanLogs)
		api.GET("/campaigns/:campaign_id/scan-sessions", h.ListScanSessions)
	}
}
