package main

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/adapters/event"
	"github.com/zthechelon/portfolio/internal/application/service"
	backupUC "github.com/zthechelon/portfolio/internal/application/usecase/backup"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type contactEventProcessor interface {
	Execute(ctx context.Context, payload service.ContactEventPayload) error
}

type backupRunner interface {
	Execute(ctx context.Context) (*backupUC.BackupOutput, error)
}

// contactRetryBackOff paces retries of one failing event. It never gives up;
// only ctx cancellation ends a retry loop.
func contactRetryBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 30 * time.Second
	return b
}

// consumeContactEvents runs until ctx is done. Malformed messages are
// committed and skipped. A processing failure is retried in place: the reader
// only moves on once the event succeeded, so no commit can skip it. If ctx
// ends first the event stays uncommitted and the group redelivers it.
func consumeContactEvents(ctx context.Context, reader messageReader, uc contactEventProcessor, retry backoff.BackOff, log logger.Logger) {
	log.Info("Worker listening", zap.String("topic", event.TopicContactEvents))

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			log.Error("Failed to read message from Kafka", err)
			continue
		}

		log.Debug("Received message", zap.String("topic", msg.Topic), zap.String("key", string(msg.Key)))

		payload, err := event.DecodeContactEvent(msg)
		if err != nil {
			log.Error("Failed to unmarshal event, skipping", err)
			commitMessage(ctx, reader, msg, log)
			continue
		}

		messageID := zap.String("message_id", payload.MessageID.String())
		process := func() (struct{}, error) {
			return struct{}{}, uc.Execute(ctx, payload)
		}
		notify := func(err error, next time.Duration) {
			log.Error("Failed to process contact event, retrying", err, messageID, zap.Duration("retry_in", next))
		}
		if _, err := backoff.Retry(ctx, process,
			backoff.WithBackOff(retry),
			backoff.WithMaxElapsedTime(0),
			backoff.WithNotify(notify),
		); err != nil {
			log.Warn("Worker stopping with contact event unprocessed", messageID, zap.Error(err))
			return
		}

		commitMessage(ctx, reader, msg, log)
	}
}

func commitMessage(ctx context.Context, reader messageReader, msg kafka.Message, log logger.Logger) {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}

// runBackups takes one backup per interval until ctx is done.
func runBackups(ctx context.Context, interval time.Duration, uc backupRunner, log logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("Content backups scheduled", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := uc.Execute(ctx); err != nil {
				log.Error("Content backup failed", err)
			}
		}
	}
}
