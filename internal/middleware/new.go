package middleware

import (
	"scanner-srv/config"
	"scanner-srv/pkg/encrypter"
	"scanner-srv/pkg/log"
	"scanner-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	scopeManager scope.Manager
	cookieConfig config.CookieConfig
	internalKey  string
	config       *config.Config
	encrypter    encrypter.Encrypter
}

func New(l log.Logger, scopeManager scope.Manager, cookieConfig config.CookieConfig, internalKey string, cfg *config.Config, enc encrypter.Encrypter) Middleware {
	return Middleware{
		l:            l,
		scopeManager: scopeManager,
		cookieConfig: cookieConfig,
		internalKey:  internalKey,
		config:       cfg,
		encrypter:    enc,
	}
}
