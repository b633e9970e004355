package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	campaignPostgre "scanner-srv/internal/campaign/repository/postgre"
	"scanner-srv/internal/middleware"
	reportPostgre "scanner-srv/internal/report/repository/postgre"
	scanHTTP "scanner-srv/internal/scan/delivery/http"
	scanUsecase "scanner-srv/internal/scan/usecase"
	"scanner-srv/pkg/facebook"
	"scanner-srv/pkg/website"
)

// setupScanDomain initializes the scan domain (repo -> usecase -> delivery).
// Must run after setupScanLogDomain and setupSettingsDomain.
func (srv *HTTPServer) setupScanDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	campaignRepo := campaignPostgre.New(srv.postgresDB, srv.l)
	reportRepo := reportPostgre.New(srv.postgresDB, srv.l)

	uc := scanUsecase.New(
		campaignRepo,
		reportRepo,
		srv.scanlogUC,
		srv.settingsUC,
		srv.newFacebookClient,
		website.NewClient(website.ClientConfig{}),
		srv.geminiClient,
		srv.redisClient,
		srv.producer,
		srv.minioClient,
		scanUsecase.Config{
			CampaignWorkers:       srv.config.Scheduler.CampaignWorkers,
			SourceWorkers:         srv.config.Scheduler.SourceWorkers,
			LockTTLSeconds:        srv.config.Scheduler.LockTTL,
			EnrichTimeoutSeconds:  srv.config.Scheduler.EnrichTimeout,
			SnapshotBucket:        srv.config.MinIO.Bucket,
			FallbackFacebookToken: srv.config.Facebook.AccessToken,
		},
		srv.l,
	)

	handler := scanHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Scan domain registered")
	return nil
}

func (srv *HTTPServer) newFacebookClient(accessToken string) facebook.IClient {
	return facebook.NewClient(facebook.ClientConfig{
		AccessToken: accessToken,
		BaseURL:     srv.config.Facebook.BaseURL,
	})
}
