package http

import (
	"scanner-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/campaigns/:campaign_id/scans", h.TriggerScan)
	}

	internal := r.Group("/internal/api/v1")
	internal.Use(mw.ServiceAuth())
	{
		internal.POST("/scans/trigger-due", h.TriggerDueScans)
	}
}
