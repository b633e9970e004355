package usecase

import (
	"scanner-srv/internal/campaign/repository"
	"scanner-srv/internal/scanlog"
	scanlogRepo "scanner-srv/internal/scanlog/repository"
	"scanner-srv/pkg/log"
	"scanner-srv/pkg/rabbitmq"
)

type implUseCase struct {
	repo         scanlogRepo.PostgresRepository
	campaignRepo repository.PostgresRepository
	amqp         rabbitmq.IRabbitMQ
	exchange     string
	l            log.Logger
}

// New - Factory function. amqp may be nil; entries are then only persisted.
func New(
	repo scanlogRepo.PostgresRepository,
	campaignRepo repository.PostgresRepository,
	amqp rabbitmq.IRabbitMQ,
	exchange string,
	l log.Logger,
) scanlog.UseCase {
	return &implUseCase{
		repo:         repo,
		campaignRepo: campaignRepo,
		amqp:         amqp,
		exchange:     exchange,
		l:            l,
	}
}
