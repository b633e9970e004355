package httpserver

import (
	"database/sql"
	"errors"

	"scanner-srv/config"
	"scanner-srv/internal/scanlog"
	"scanner-srv/internal/settings"
	"scanner-srv/pkg/discord"
	"scanner-srv/pkg/encrypter"
	"scanner-srv/pkg/gemini"
	"scanner-srv/pkg/kafka"
	"scanner-srv/pkg/log"
	"scanner-srv/pkg/minio"
	"scanner-srv/pkg/rabbitmq"
	"scanner-srv/pkg/redis"
	"scanner-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB *sql.DB

	// External clients. Redis, AMQP, Kafka, MinIO and Gemini are optional;
	// the features backed by them degrade when absent.
	redisClient  redis.IRedis
	amqpConn     rabbitmq.IRabbitMQ
	producer     kafka.IProducer
	minioClient  minio.MinIO
	geminiClient gemini.IGemini

	// Authentication & Security Configuration
	config       *config.Config
	scopeManager scope.Manager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Cross-domain usecases wired during mapHandlers.
	settingsUC settings.UseCase
	scanlogUC  scanlog.UseCase

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB

	RedisClient  redis.IRedis
	AMQPConn     rabbitmq.IRabbitMQ
	Producer     kafka.IProducer
	MinIOClient  minio.MinIO
	GeminiClient gemini.IGemini

	Config       *config.Config
	ScopeManager scope.Manager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB: cfg.PostgresDB,

		redisClient:  cfg.RedisClient,
		amqpConn:     cfg.AMQPConn,
		producer:     cfg.Producer,
		minioClient:  cfg.MinIOClient,
		geminiClient: cfg.GeminiClient,

		config:       cfg.Config,
		scopeManager: cfg.ScopeManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.scopeManager == nil {
		return errors.New("scopeManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	return nil
}
