package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"gatherly/internal/shared/config"
	"gatherly/pkg/logger"
)

// Publisher publishes booking lifecycle messages.
type Publisher interface {
	Publish(ctx context.Context, notification *BookingNotification) error
	Close() error
}

// KafkaPublisher writes booking notifications to Kafka. Messages are
// keyed by booking id so retries for the same booking stay ordered.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

func NewKafkaPublisher(cfg config.KafkaConfig, log *logger.Logger) (*KafkaPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Info("kafka booking publisher created", "topic", cfg.BookingTopic)
	return &KafkaPublisher{
		producer: producer,
		topic:    cfg.BookingTopic,
		log:      log,
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, notification *BookingNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(notification.BookingID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("type"), Value: []byte(notification.Type)},
			{Key: []byte("event_id"), Value: []byte(notification.EventID)},
			{Key: []byte("occurred_at"), Value: []byte(notification.OccurredAt.Format(time.RFC3339))},
		},
		Timestamp: notification.OccurredAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	p.log.Info("booking notification published",
		"type", string(notification.Type),
		"booking_id", notification.BookingID,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

// NoopPublisher drops every message. Used when Kafka is disabled so the
// booking path never grows a nil check.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, notification *BookingNotification) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
