package httpserver

import (
	"context"

	"scanner-srv/internal/middleware"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.scopeManager, srv.cookieConfig, srv.config.InternalConfig.InternalKey, srv.config, srv.encrypter)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.setupSettingsDomain(ctx); err != nil {
		return err
	}

	root := srv.gin.Group("")
	if err := srv.setupScanLogDomain(ctx, root, mw); err != nil {
		return err
	}
	if err := srv.setupScanDomain(ctx, root, mw); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
