package consumer

import (
	"context"
	"encoding/json"
	"time"

	"lt-att-backend/internal/events"
	"lt-att-backend/internal/messaging/kafka"
	"lt-att-backend/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const maxProcessAttempts = 3

// MessageReader dipenuhi oleh *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ExportProcessor dipenuhi oleh payroll.Service.
type ExportProcessor interface {
	ProcessSalaryReportExport(ctx context.Context, exportID string) error
}

// ConsumeSalaryReportExportRequested merender export salary report yang diminta
// lewat outbox. Pesan selalu di-commit setelah diproses atau dibuang.
func ConsumeSalaryReportExportRequested(
	ctx context.Context,
	reader MessageReader,
	processor ExportProcessor,
	logger *zap.Logger,
	retryBackoff time.Duration,
) {
	log := logger.Named("kafka.consumer.salary_report_export")
	log.Info("salary report export consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("salary report export consumer stopped")
				return
			}
			log.Error("fetch salary report export message failed", zap.Error(err))
			continue
		}

		handleExportMessage(ctx, msg, processor, log, retryBackoff)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit salary report export message failed", zap.Error(err))
		}
	}
}

func handleExportMessage(
	ctx context.Context,
	msg kafkago.Message,
	processor ExportProcessor,
	log *zap.Logger,
	retryBackoff time.Duration,
) {
	if eventType := header(msg, kafka.HeaderEventType); eventType != "" && eventType != events.SalaryReportExportRequestedType {
		log.Debug("unrelated event skipped", zap.String("event_type", eventType))
		return
	}

	var event events.SalaryReportExportRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.ExportID == "" {
		log.Error("decode salary report export event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return
	}

	requestID := event.RequestID
	if requestID == "" {
		requestID = header(msg, kafka.HeaderRequestID)
	}
	msgLog := log.With(zap.String("export_id", event.ExportID), zap.String("request_id", requestID))
	msgCtx := contextutil.WithLogger(contextutil.WithRequestID(ctx, requestID), msgLog)

	for attempt := 1; attempt <= maxProcessAttempts; attempt++ {
		err := processor.ProcessSalaryReportExport(msgCtx, event.ExportID)
		if err == nil {
			return
		}
		msgLog.Warn("process salary report export failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt == maxProcessAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}

	msgLog.Error("salary report export abandoned, job stays pending")
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
