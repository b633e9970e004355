package http

import (
	"scanner-srv/internal/middleware"
	"scanner-srv/internal/scan"
	"scanner-srv/pkg/discord"
	"scanner-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for scan HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      scan.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc scan.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
