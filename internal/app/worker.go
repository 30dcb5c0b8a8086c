package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-stationops/internal/messaging/kafka"
	"go-stationops/internal/messaging/kafka/producer"
	"go-stationops/internal/shared/config"
	"go-stationops/internal/shared/connection"
	"go-stationops/internal/store"

	"go.uber.org/zap"
)

const outboxPollInterval = 3 * time.Second

// RunWorker drains the EmployeeDomain outbox into Kafka until SIGINT/SIGTERM.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	registry, err := openStores(cfg, logger)
	if err != nil {
		return err
	}
	defer registry.Close(context.Background())

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(registry, store.EmployeeDomain)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(
			ctx,
			outboxRepo,
			kafkaWriter,
			logger,
			outboxPollInterval,
		)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()
	<-done

	return nil
}
