package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"scanner-srv/config"
	configKafka "scanner-srv/config/kafka"
	configMinio "scanner-srv/config/minio"
	configPostgre "scanner-srv/config/postgre"
	configRabbitMQ "scanner-srv/config/rabbitmq"
	configRedis "scanner-srv/config/redis"
	campaignPostgre "scanner-srv/internal/campaign/repository/postgre"
	reportPostgre "scanner-srv/internal/report/repository/postgre"
	"scanner-srv/internal/scan"
	scanUsecase "scanner-srv/internal/scan/usecase"
	scanlogPostgre "scanner-srv/internal/scanlog/repository/postgre"
	scanlogUsecase "scanner-srv/internal/scanlog/usecase"
	settingsPostgre "scanner-srv/internal/settings/repository/postgre"
	settingsUsecase "scanner-srv/internal/settings/usecase"
	"scanner-srv/pkg/encrypter"
	"scanner-srv/pkg/facebook"
	"scanner-srv/pkg/gemini"
	"scanner-srv/pkg/kafka"
	"scanner-srv/pkg/log"
	"scanner-srv/pkg/minio"
	"scanner-srv/pkg/rabbitmq"
	"scanner-srv/pkg/redis"
	"scanner-srv/pkg/website"
)

// The scheduler polls for due campaigns on a cron cadence and scans them.
// It shares the scan pipeline with the API's manual trigger endpoint.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)

	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf(ctx, "Redis not available; overlap locks disabled: %v", err)
		redisClient = nil
	}

	amqpConn, err := configRabbitMQ.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Warnf(ctx, "RabbitMQ not available; scan log fan-out disabled: %v", err)
		amqpConn = nil
	}

	producer, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka not available; scan events disabled: %v", err)
		producer = nil
	}

	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Warnf(ctx, "MinIO not available; snapshot archiving disabled: %v", err)
		minioClient = nil
	}

	geminiClient, err := gemini.NewGemini(gemini.GeminiConfig{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Warnf(ctx, "Gemini not configured; AI enrichment will store placeholders: %v", err)
		geminiClient = nil
	}

	uc := buildScanUseCase(cfg, postgresDB, redisClient, amqpConn, producer, minioClient, geminiClient, logger)

	c := cron.New()
	_, err = c.AddFunc(cfg.Scheduler.PollCron, func() {
		out, err := uc.TriggerDue(ctx)
		if err != nil {
			logger.Errorf(ctx, "scheduler: trigger due failed: %v", err)
			return
		}
		if out.Due > 0 {
			logger.Infof(ctx, "scheduler: %d due, %d scanned, %d skipped, %d failed",
				out.Due, out.Scanned, out.Skipped, out.Failed)
		}
	})
	if err != nil {
		logger.Errorf(ctx, "scheduler: invalid poll cron %q: %v", cfg.Scheduler.PollCron, err)
		return
	}

	c.Start()
	logger.Infof(ctx, "scheduler: started, polling on %q", cfg.Scheduler.PollCron)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info(ctx, "scheduler: shutting down, waiting for running scans")
	<-c.Stop().Done()
	logger.Info(ctx, "scheduler: stopped")
}

func buildScanUseCase(
	cfg *config.Config,
	db *sql.DB,
	redisClient redis.IRedis,
	amqpConn rabbitmq.IRabbitMQ,
	producer kafka.IProducer,
	minioClient minio.MinIO,
	geminiClient gemini.IGemini,
	logger log.Logger,
) scan.UseCase {
	enc := encrypter.New(cfg.Encrypter.Key)

	campaignRepo := campaignPostgre.New(db, logger)
	reportRepo := reportPostgre.New(db, logger)

	settingsUC := settingsUsecase.New(settingsPostgre.New(db, logger), redisClient, enc, logger)
	scanlogUC := scanlogUsecase.New(scanlogPostgre.New(db, logger), campaignRepo, amqpConn, cfg.RabbitMQ.Exchange, logger)

	newFacebookClient := func(accessToken string) facebook.IClient {
		return facebook.NewClient(facebook.ClientConfig{
			AccessToken: accessToken,
			BaseURL:     cfg.Facebook.BaseURL,
		})
	}

	return scanUsecase.New(
		campaignRepo,
		reportRepo,
		scanlogUC,
		settingsUC,
		newFacebookClient,
		website.NewClient(website.ClientConfig{}),
		geminiClient,
		redisClient,
		producer,
		minioClient,
		scanUsecase.Config{
			CampaignWorkers:       cfg.Scheduler.CampaignWorkers,
			SourceWorkers:         cfg.Scheduler.SourceWorkers,
			LockTTLSeconds:        cfg.Scheduler.LockTTL,
			EnrichTimeoutSeconds:  cfg.Scheduler.EnrichTimeout,
			SnapshotBucket:        cfg.MinIO.Bucket,
			FallbackFacebookToken: cfg.Facebook.AccessToken,
		},
		logger,
	)
}
