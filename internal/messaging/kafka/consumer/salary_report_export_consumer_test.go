package consumer

import (
	"context"
	"errors"
	"testing"

	"lt-att-backend/internal/events"
	"lt-att-backend/internal/messaging/kafka"
	"lt-att-backend/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeProcessor struct {
	errs       []error
	calls      int
	exportID   string
	requestIDs []string
}

func (p *fakeProcessor) ProcessSalaryReportExport(ctx context.Context, exportID string) error {
	p.calls++
	p.exportID = exportID
	p.requestIDs = append(p.requestIDs, contextutil.GetRequestID(ctx))
	if len(p.errs) >= p.calls {
		return p.errs[p.calls-1]
	}
	return nil
}

type fakeReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func exportMessage(value string) kafkago.Message {
	return kafkago.Message{
		Value: []byte(value),
		Headers: []kafkago.Header{
			{Key: kafka.HeaderEventType, Value: []byte(events.SalaryReportExportRequestedType)},
			{Key: kafka.HeaderRequestID, Value: []byte("req-9")},
		},
	}
}

func TestHandleExportMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("processes export", func(t *testing.T) {
		p := &fakeProcessor{}
		handleExportMessage(ctx, exportMessage(`{"export_id":"job-1"}`), p, zap.NewNop(), 0)

		assert.Equal(t, 1, p.calls)
		assert.Equal(t, "job-1", p.exportID)
		// request id dari header dipakai jika payload tidak membawanya
		assert.Equal(t, []string{"req-9"}, p.requestIDs)
	})

	t.Run("retries transient errors", func(t *testing.T) {
		p := &fakeProcessor{errs: []error{errors.New("db down"), nil}}
		handleExportMessage(ctx, exportMessage(`{"export_id":"job-1"}`), p, zap.NewNop(), 0)

		assert.Equal(t, 2, p.calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		boom := errors.New("db down")
		p := &fakeProcessor{errs: []error{boom, boom, boom, boom}}
		handleExportMessage(ctx, exportMessage(`{"export_id":"job-1"}`), p, zap.NewNop(), 0)

		assert.Equal(t, maxProcessAttempts, p.calls)
	})

	t.Run("malformed payload is dropped", func(t *testing.T) {
		p := &fakeProcessor{}
		handleExportMessage(ctx, exportMessage(`not json`), p, zap.NewNop(), 0)
		handleExportMessage(ctx, exportMessage(`{}`), p, zap.NewNop(), 0)

		assert.Equal(t, 0, p.calls)
	})

	t.Run("other event types are ignored", func(t *testing.T) {
		p := &fakeProcessor{}
		msg := exportMessage(`{"export_id":"job-1"}`)
		msg.Headers[0].Value = []byte("employee.created")

		handleExportMessage(ctx, msg, p, zap.NewNop(), 0)

		assert.Equal(t, 0, p.calls)
	})
}

func TestConsumeSalaryReportExportRequested_CommitsEveryMessage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		msgs: []kafkago.Message{
			exportMessage(`{"export_id":"job-1"}`),
			exportMessage(`garbage`),
		},
		cancel: cancel,
	}
	p := &fakeProcessor{}

	ConsumeSalaryReportExportRequested(ctx, reader, p, zap.NewNop(), 0)

	assert.Len(t, reader.committed, 2)
	assert.Equal(t, 1, p.calls)
}
