package main

import (
	"portfolio/pkg/config"
	"portfolio/pkg/logger"
	"portfolio/pkg/queue"
	app "portfolio/services/revalidator/internal/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	if cfg.RabbitMQHost == "" {
		panic("RABBITMQ_HOST must be set for the revalidator")
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v", err)
		panic(err)
	}

	app.Run(cfg, log, queueClient)
}
