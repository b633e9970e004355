package usecase

import (
	"scanner-srv/internal/settings"
	"scanner-srv/internal/settings/repository"
	"scanner-srv/pkg/encrypter"
	"scanner-srv/pkg/log"
	"scanner-srv/pkg/redis"
)

type implUseCase struct {
	repo      repository.PostgresRepository
	redis     redis.IRedis
	encrypter encrypter.Encrypter
	l         log.Logger
}

// New - Factory function
func New(
	repo repository.PostgresRepository,
	redisClient redis.IRedis,
	enc encrypter.Encrypter,
	l log.Logger,
) settings.UseCase {
	return &implUseCase{
		repo:      repo,
		redis:     redisClient,
		encrypter: enc,
		l:         l,
	}
}
