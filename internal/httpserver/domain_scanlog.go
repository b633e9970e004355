package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	campaignPostgre "scanner-srv/internal/campaign/repository/postgre"
	"scanner-srv/internal/middleware"
	scanlogHTTP "scanner-srv/internal/scanlog/delivery/http"
	scanlogPostgre "scanner-srv/internal/scanlog/repository/postgre"
	scanlogUsecase "scanner-srv/internal/scanlog/usecase"
)

func (srv *HTTPServer) setupScanLogDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := scanlogPostgre.New(srv.postgresDB, srv.l)
	campaignRepo := campaignPostgre.New(srv.postgresDB, srv.l)

	uc := scanlogUsecase.New(repo, campaignRepo, srv.amqpConn, srv.config.RabbitMQ.Exchange, srv.l)
	srv.scanlogUC = uc

	handler := scanlogHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "ScanLog domain registered")
	return nil
}
