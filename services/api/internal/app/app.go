package internal

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/pkg/cache"
	"portfolio/pkg/config"
	"portfolio/pkg/database"
	"portfolio/pkg/jwt"
	"portfolio/pkg/logger"
	"portfolio/pkg/middleware"
	"portfolio/pkg/queue"
	"portfolio/pkg/revalidate"
	"portfolio/pkg/s3"
	"portfolio/pkg/storage"
	"portfolio/services/api/internal/model"
	"portfolio/services/api/internal/usecase"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	uploader    usecase.Uploader
	uploadDir   string
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.New(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if cfg.DBAutoMigrate || cfg.DBDriver == "sqlite" {
		if err := model.AutoMigrate(db); err != nil {
			log.Error("Failed to migrate database: %v", err)
			return nil, err
		}
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (rate limiting and session revocation disabled)", err)
		redisClient = nil
	}

	var queueClient *queue.Client
	if cfg.RabbitMQHost != "" {
		queueClient, err = queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
			queueClient = nil
		}
	}

	a := &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		queueClient: queueClient,
		jwtService:  jwt.NewService(cfg.JWTSecret, cfg.AdminSessionTTL),
	}

	switch cfg.UploadDriver {
	case "s3":
		s3Client, err := s3.NewClient(cfg)
		if err != nil {
			log.Error("Failed to create S3 client: %v", err)
			return nil, err
		}
		a.uploader = s3Client
	default:
		local, err := storage.NewLocal(cfg.UploadDir, "/uploads")
		if err != nil {
			log.Error("Failed to prepare upload directory: %v", err)
			return nil, err
		}
		a.uploader = local
		a.uploadDir = local.Dir()
	}

	return a, nil
}

// notifier picks the content-change sink: the broker when connected, otherwise
// the revalidation webhook when configured.
func (a *App) notifier() usecase.ChangeNotifier {
	if a.queueClient != nil {
		return usecase.NewQueueNotifier(a.queueClient, a.log)
	}

	revalidator := revalidate.NewClient(a.cfg.RevalidationURL, a.cfg.RevalidationSecret)
	if revalidator.Enabled() {
		return usecase.NewWebhookNotifier(revalidator, a.log)
	}

	a.log.Warn("No RabbitMQ or NEXT_REVALIDATION_URL configured; content changes are not propagated")
	return usecase.NopNotifier{}
}

func (a *App) Run() error {
	router := a.Router()

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: router,
	}

	go func() {
		a.log.Info("Portfolio API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down portfolio API...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	a.log.Info("Portfolio API exited")
	return shutdownErr
}

// revocations returns nil interfaces without redis so the gate skips the lookup.
func (a *App) revocations() (middleware.RevocationChecker, usecase.SessionRevoker) {
	if a.redisClient == nil {
		return nil, nil
	}
	store := cache.NewSessionStore(a.redisClient)
	return store, store
}
