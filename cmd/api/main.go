package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scanner-srv/config"
	configKafka "scanner-srv/config/kafka"
	configMinio "scanner-srv/config/minio"
	configPostgre "scanner-srv/config/postgre"
	configRabbitMQ "scanner-srv/config/rabbitmq"
	configRedis "scanner-srv/config/redis"
	"scanner-srv/internal/httpserver"
	"scanner-srv/pkg/discord"
	"scanner-srv/pkg/encrypter"
	"scanner-srv/pkg/gemini"
	pkgJWT "scanner-srv/pkg/jwt"
	"scanner-srv/pkg/log"
	"scanner-srv/pkg/scope"
)

// @title       SMAP Scanner Service API
// @description SMAP Scanner Service API documentation.
// @version     1
// @host        scanner-srv.tantai.dev
// @schemes     https
// @BasePath    /scanner
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name smap_auth_token
// @description Authentication token stored in HttpOnly cookie. Set by the identity service.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	// 5. Initialize PostgreSQL
	ctx := context.Background()
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 6. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 7. Initialize Redis (optional; scan locks and settings cache degrade without it)
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Warnf(ctx, "Redis not available (optional): %v", err)
		redisClient = nil
	} else {
		logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)
	}

	// 8. Initialize RabbitMQ (optional; scan log fan-out degrades without it)
	amqpConn, err := configRabbitMQ.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Warnf(ctx, "RabbitMQ not available (optional): %v", err)
		amqpConn = nil
	} else {
		logger.Infof(ctx, "RabbitMQ connected successfully")
	}

	// 9. Initialize Kafka producer (optional; scan events degrade without it)
	producer, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka not available (optional): %v", err)
		producer = nil
	} else {
		logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)
	}

	// 10. Initialize MinIO (optional; raw snapshot archiving degrades without it)
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Warnf(ctx, "MinIO not available (optional): %v", err)
		minioClient = nil
	} else {
		logger.Infof(ctx, "MinIO connected to %s", cfg.MinIO.Endpoint)
	}

	// 11. Initialize Gemini client
	geminiClient, err := gemini.NewGemini(gemini.GeminiConfig{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Warnf(ctx, "Gemini not configured; AI enrichment will store placeholders: %v", err)
		geminiClient = nil
	}

	// 12. Initialize scope manager (token verification only; tokens are issued by the identity service)
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	scopeManager := scope.New(jwtManager)
	logger.Infof(ctx, "JWT manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 13. Initialize HTTP server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		PostgresDB: postgresDB,

		RedisClient:  redisClient,
		AMQPConn:     amqpConn,
		Producer:     producer,
		MinIOClient:  minioClient,
		GeminiClient: geminiClient,

		Config:       cfg,
		ScopeManager: scopeManager,
		CookieConfig: cfg.Cookie,
		Encrypter:    encrypterInstance,

		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
