package httpserver

import (
	"context"

	settingsPostgre "scanner-srv/internal/settings/repository/postgre"
	settingsUsecase "scanner-srv/internal/settings/usecase"
)

// setupSettingsDomain initializes the settings usecase shared by the scan
// pipeline. Settings have no HTTP surface of their own here; they are
// managed by the campaign service.
func (srv *HTTPServer) setupSettingsDomain(ctx context.Context) error {
	repo := settingsPostgre.New(srv.postgresDB, srv.l)

	srv.settingsUC = settingsUsecase.New(repo, srv.redisClient, srv.encrypter, srv.l)

	srv.l.Infof(ctx, "Settings domain initialized")
	return nil
}
