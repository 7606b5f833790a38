package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lt-att-backend/internal/config"
	"lt-att-backend/internal/messaging/kafka"
	"lt-att-backend/internal/messaging/kafka/producer"
	"lt-att-backend/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker mem-publish outbox_events ke kafka sampai menerima SIGINT/SIGTERM.
func RunWorker(cfg config.App) error {
	logger := zap.L().Named("app.worker")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	_, sqlDB, err := connectDB(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	if err := connection.EnsureKafkaTopic(cfg.KafkaBroker, cfg.ExportTopic, 1); err != nil {
		logger.Warn("ensure kafka topic failed", zap.String("topic", cfg.ExportTopic), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, kafka.NewOutboxRepository(sqlDB), kafkaWriter, logger, cfg.OutboxPoll)

	logger.Info("worker shutting down")
	return nil
}
