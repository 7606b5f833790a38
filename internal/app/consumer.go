package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lt-att-backend/internal/config"
	"lt-att-backend/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const exportRetryBackoff = 2 * time.Second

// RunConsumer merender export salary report yang diminta lewat kafka.
func RunConsumer(cfg config.App) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, sqlDB, err := connectDB(cfg)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	payrollService := newPayrollService(cfg, sqlDB, gormDB)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          cfg.ExportTopic,
		GroupID:        cfg.ExportGroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeSalaryReportExportRequested(ctx, reader, payrollService, logger, exportRetryBackoff)

	logger.Info("consumer shutting down")
	return nil
}
