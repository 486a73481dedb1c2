// Package kafka publishes engine events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dispatch/internal/core/ports"

	"github.com/IBM/sarama"
)

const DefaultTopic = "dispatch.events"

// Envelope is the JSON value of every message.
type Envelope struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Publisher implements ports.EventPublisher with a sarama SyncProducer.
// Events of one call are sent as a single batch; messages are keyed by the
// event key so all events of an order land in one partition.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewPublisher connects to brokers. The producer waits for all in-sync replicas.
func NewPublisher(brokers []string, topic string, logger *slog.Logger) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Info("kafka producer created", "brokers", strings.Join(brokers, ","), "topic", topic)
	return NewPublisherWithProducer(producer, topic, logger), nil
}

func NewPublisherWithProducer(producer sarama.SyncProducer, topic string, logger *slog.Logger) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "kafka_publisher"),
	}
}

func (p *Publisher) Publish(ctx context.Context, events ...ports.Event) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]*sarama.ProducerMessage, 0, len(events))
	for _, event := range events {
		message, err := p.message(event)
		if err != nil {
			return err
		}
		messages = append(messages, message)
	}

	if err := p.producer.SendMessages(messages); err != nil {
		return fmt.Errorf("failed to send %d messages to topic %s: %w", len(messages), p.topic, err)
	}

	for _, m := range messages {
		p.logger.DebugContext(ctx, "event published",
			"topic", m.Topic,
			"partition", m.Partition,
			"offset", m.Offset,
		)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

func (p *Publisher) message(event ports.Event) (*sarama.ProducerMessage, error) {
	data, err := json.Marshal(Envelope{
		ID:         event.ID.String(),
		Type:       event.Type,
		OccurredAt: event.OccurredAt,
		Payload:    event.Payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event %s: %w", event.Type, err)
	}

	return &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Key),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("occurred_at"), Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}, nil
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...ports.Event) error { return nil }
