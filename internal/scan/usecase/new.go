package usecase

import (
	campaignRepo "scanner-srv/internal/campaign/repository"
	reportRepo "scanner-srv/internal/report/repository"
	"scanner-srv/internal/scan"
	"scanner-srv/internal/scanlog"
	"scanner-srv/internal/settings"
	"scanner-srv/pkg/gemini"
	"scanner-srv/pkg/kafka"
	"scanner-srv/pkg/log"
	"scanner-srv/pkg/minio"
	"scanner-srv/pkg/redis"
	"scanner-srv/pkg/website"
)

// Config tunes scan execution.
type Config struct {
	// CampaignWorkers bounds campaigns scanned concurrently per tick.
	CampaignWorkers int
	// SourceWorkers bounds sources fetched concurrently per scan.
	SourceWorkers int
	// LockTTLSeconds is the Redis scan lock TTL.
	LockTTLSeconds int
	// EnrichTimeoutSeconds bounds each per-item AI call.
	EnrichTimeoutSeconds int
	// SnapshotBucket stores raw fetch snapshots. Empty disables archiving.
	SnapshotBucket string
	// FallbackFacebookToken is used when a user has no settings row.
	FallbackFacebookToken string
}

type implUseCase struct {
	campaignRepo campaignRepo.PostgresRepository
	reportRepo   reportRepo.PostgresRepository
	scanlogUC    scanlog.UseCase
	settingsUC   settings.UseCase

	newFacebookClient scan.FacebookClientFactory
	websiteClient     website.IClient
	gemini            gemini.IGemini

	// Optional side channels. Any of these may be nil.
	redis    redis.IRedis
	producer kafka.IProducer
	storage  minio.MinIO

	cfg Config
	l   log.Logger
}

// New - Factory function
func New(
	campaigns campaignRepo.PostgresRepository,
	reports reportRepo.PostgresRepository,
	scanlogUC scanlog.UseCase,
	settingsUC settings.UseCase,
	newFacebookClient scan.FacebookClientFactory,
	websiteClient website.IClient,
	geminiClient gemini.IGemini,
	redisClient redis.IRedis,
	producer kafka.IProducer,
	storage minio.MinIO,
	cfg Config,
	l log.Logger,
) scan.UseCase {
	if cfg.CampaignWorkers <= 0 {
		cfg.CampaignWorkers = 4
	}
	if cfg.SourceWorkers <= 0 {
		cfg.SourceWorkers = 5
	}
	if cfg.LockTTLSeconds <= 0 {
		cfg.LockTTLSeconds = 600
	}
	if cfg.EnrichTimeoutSeconds <= 0 {
		cfg.EnrichTimeoutSeconds = 30
	}
	return &implUseCase{
		campaignRepo:      campaigns,
		reportRepo:        reports,
		scanlogUC:         scanlogUC,
		settingsUC:        settingsUC,
		newFacebookClient: newFacebookClient,
		websiteClient:     websiteClient,
		gemini:            geminiClient,
		redis:             redisClient,
		producer:          producer,
		storage:           storage,
		cfg:               cfg,
		l:                 l,
	}
}
