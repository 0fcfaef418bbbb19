package main

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/zthechelon/portfolio/internal/application/service"
	backupUC "github.com/zthechelon/portfolio/internal/application/usecase/backup"
	"github.com/zthechelon/portfolio/pkg/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// queueReader hands out queued messages, then blocks until ctx is done.
type queueReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []kafka.Message
}

func (r *queueReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *queueReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

// recordingProcessor fails each id in failures that many times before
// succeeding; a negative count fails forever.
type recordingProcessor struct {
	mu       sync.Mutex
	payloads []service.ContactEventPayload
	failures map[uuid.UUID]int
}

func (p *recordingProcessor) Execute(_ context.Context, payload service.ContactEventPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	if n, ok := p.failures[payload.MessageID]; ok && n != 0 {
		p.failures[payload.MessageID] = n - 1
		return errors.New("store unavailable")
	}
	return nil
}

func (p *recordingProcessor) calls() []uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]uuid.UUID, len(p.payloads))
	for i, payload := range p.payloads {
		ids[i] = payload.MessageID
	}
	return ids
}

func (r *queueReader) committedKeys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	keys := make([]string, len(r.committed))
	for i, msg := range r.committed {
		keys[i] = string(msg.Key)
	}
	return keys
}

func contactMessage(t *testing.T, id uuid.UUID) kafka.Message {
	t.Helper()
	value, err := json.Marshal(service.ContactEventPayload{EventType: service.ContactEventTypeSubmitted, MessageID: id})
	require.NoError(t, err)
	return kafka.Message{Key: []byte(id.String()), Value: value}
}

func startConsumer(t *testing.T, reader *queueReader, proc *recordingProcessor) (cancel func()) {
	t.Helper()
	ctx, cancelCtx := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		consumeContactEvents(ctx, reader, proc, backoff.NewConstantBackOff(time.Millisecond), logger.NewNopLogger())
	}()
	return func() {
		cancelCtx()
		<-done
	}
}

func TestConsumeContactEvents(t *testing.T) {
	first := uuid.New()
	flaky := uuid.New()
	last := uuid.New()
	reader := &queueReader{queue: []kafka.Message{
		contactMessage(t, first),
		{Key: []byte("garbage"), Value: []byte("garbage")},
		contactMessage(t, flaky),
		contactMessage(t, last),
	}}
	proc := &recordingProcessor{failures: map[uuid.UUID]int{flaky: 2}}

	stop := startConsumer(t, reader, proc)
	require.Eventually(t, func() bool { return len(reader.committedKeys()) == 4 }, time.Second, 5*time.Millisecond)
	stop()

	// the flaky event is retried until it succeeds before the next one is read
	assert.Equal(t, []uuid.UUID{first, flaky, flaky, flaky, last}, proc.calls())
	assert.Equal(t, []string{first.String(), "garbage", flaky.String(), last.String()}, reader.committedKeys())
}

func TestConsumeContactEventsStopsWhileRetrying(t *testing.T) {
	stuck := uuid.New()
	next := uuid.New()
	reader := &queueReader{queue: []kafka.Message{
		contactMessage(t, stuck),
		contactMessage(t, next),
	}}
	proc := &recordingProcessor{failures: map[uuid.UUID]int{stuck: -1}}

	stop := startConsumer(t, reader, proc)
	require.Eventually(t, func() bool { return len(proc.calls()) >= 3 }, time.Second, time.Millisecond)
	stop()

	// nothing is committed past the failing event, and the next one is never read
	assert.Empty(t, reader.committedKeys())
	assert.NotContains(t, proc.calls(), next)
	assert.Len(t, reader.queue, 1)
}

type countingBackup struct {
	mu    sync.Mutex
	calls int
}

func (b *countingBackup) Execute(context.Context) (*backupUC.BackupOutput, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	return &backupUC.BackupOutput{}, nil
}

func TestRunBackupsStopsWithContext(t *testing.T) {
	b := &countingBackup{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		runBackups(ctx, 5*time.Millisecond, b, logger.NewNopLogger())
	}()

	require.Eventually(t, func() bool {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.calls >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
