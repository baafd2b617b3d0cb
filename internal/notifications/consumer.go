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

// Consumer reads booking notifications off Kafka and hands them to the
// email sender. Runs until its context is cancelled.
type Consumer struct {
	group  sarama.ConsumerGroup
	topics []string
	email  EmailSender
	log    *logger.Logger
}

func NewConsumer(cfg config.KafkaConfig, email EmailSender, log *logger.Logger) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second
	saramaConfig.Consumer.Return.Errors = true

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		group:  group,
		topics: []string{cfg.BookingTopic},
		email:  email,
		log:    log,
	}, nil
}

// Run consumes until ctx is cancelled. Consume returns between
// rebalances, so it loops.
func (c *Consumer) Run(ctx context.Context) error {
	go func() {
		for err := range c.group.Errors() {
			c.log.Error("consumer group error", "error", err)
		}
	}()

	handler := &bookingHandler{email: c.email, log: c.log}
	for {
		if err := c.group.Consume(ctx, c.topics, handler); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.log.Error("consume failed, retrying", "error", err)
			time.Sleep(time.Second)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (c *Consumer) Close() error {
	return c.group.Close()
}

type bookingHandler struct {
	email EmailSender
	log   *logger.Logger
}

func (h *bookingHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *bookingHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *bookingHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		var notification BookingNotification
		if err := json.Unmarshal(message.Value, &notification); err != nil {
			// poison message, commit and move on
			h.log.Error("failed to decode booking notification",
				"offset", message.Offset, "error", err)
			session.MarkMessage(message, "")
			continue
		}

		var err error
		switch notification.Type {
		case TypeBookingConfirmed:
			err = h.email.SendBookingConfirmation(&notification)
		case TypeBookingCancelled:
			err = h.email.SendBookingCancellation(&notification)
		default:
			h.log.Warn("unknown notification type", "type", string(notification.Type))
		}
		if err != nil {
			h.log.Error("failed to deliver booking email",
				"booking_id", notification.BookingID, "error", err)
		}

		session.MarkMessage(message, "")
	}
	return nil
}
