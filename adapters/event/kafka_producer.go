package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/zthechelon/portfolio/internal/application/service"
	"github.com/zthechelon/portfolio/internal/config"
	"github.com/zthechelon/portfolio/pkg/logger"
)

const (
	TopicContactEvents   = "contact.events"
	ContactNotifierGroup = "contact-notifier-group"
)

// messageWriter is the part of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ContactEventsWriter messageWriter
	logger              logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// writer 'contact.events'
	contactWriter := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  TopicContactEvents,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producers successfully.", zap.Strings("brokers", brokers))

	return &KafkaProducerClient{
		ContactEventsWriter: contactWriter,
		logger:              log,
	}, nil
}

func (c *KafkaProducerClient) PublishContactEvent(ctx context.Context, payload service.ContactEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal contact event failed: %w", err)
	}

	err = c.ContactEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.MessageID.String()),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write contact event failed: %w", err)
	}

	c.logger.Debug("Published contact event",
		zap.String("event_type", payload.EventType),
		zap.String("message_id", payload.MessageID.String()),
	)
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContactEventsWriter != nil {
		if err := c.ContactEventsWriter.Close(); err != nil {
			c.logger.Warn("Failed to close contact events writer", zap.Error(err))
		}
	}
	c.logger.Info("Closed Kafka Producers")
}

type nopPublisher struct{}

// NewNopPublisher drops events. Used when Kafka is not configured.
func NewNopPublisher() service.ContactEventPublisher { return nopPublisher{} }

func (nopPublisher) PublishContactEvent(context.Context, service.ContactEventPayload) error {
	return nil
}

// DecodeContactEvent parses a message read from TopicContactEvents.
func DecodeContactEvent(msg kafka.Message) (service.ContactEventPayload, error) {
	var payload service.ContactEventPayload
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		return payload, fmt.Errorf("unmarshal contact event: %w", err)
	}
	return payload, nil
}
