package internal

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/pkg/config"
	"portfolio/pkg/logger"
	"portfolio/pkg/queue"
	"portfolio/pkg/revalidate"
	"portfolio/services/revalidator/internal/usecase"

	"github.com/gin-gonic/gin"
)

func Run(cfg *config.Config, log *logger.Logger, queueClient *queue.Client) {
	revalidator := revalidate.NewClient(cfg.RevalidationURL, cfg.RevalidationSecret)
	if !revalidator.Enabled() {
		log.Warn("NEXT_REVALIDATION_URL is not set; events will be acknowledged without revalidation")
	}

	revalidateUseCase := usecase.NewRevalidateUseCase(revalidator, log)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/queue", func(c *gin.Context) {
		pending, err := queueClient.GetQueueLength()
		if err != nil {
			log.Error("Failed to inspect %s: %v", queue.RevalidationQueueName, err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Queue unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"queue": queue.RevalidationQueueName, "pending": pending})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		log.Info("Starting revalidation queue consumer...")
		if err := queueClient.ConsumeContentChanged(ctx, revalidateUseCase.HandleContentChanged); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Revalidation consumer stopped: %v", err)
		}
	}()

	go func() {
		log.Info("Revalidator starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down revalidator...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stop()
	select {
	case <-consumerDone:
	case <-shutdownCtx.Done():
		log.Warn("Consumer did not stop in time")
	}

	if err := queueClient.Close(); err != nil {
		log.Error("Error closing RabbitMQ: %v", err)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Revalidator exited")
}
