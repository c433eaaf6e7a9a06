package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/IBM/sarama"

	"pulse/types"
)

// ProducerConfig holds Kafka producer configuration
type ProducerConfig struct {
	Brokers []string
	Topic   string
}

// Producer publishes merged stories for downstream consumers. Publishing is
// best-effort; the session logs and moves on when the broker is unreachable.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Printf("✅ Kafka producer started (topic: %s)", config.Topic)
	return &Producer{producer: producer, topic: config.Topic}, nil
}

// PublishStories emits one message per story, keyed by item ID.
func (p *Producer) PublishStories(ctx context.Context, items []*types.NewsItem) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	messages := make([]*sarama.ProducerMessage, 0, len(items))
	for _, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("failed to marshal story %s: %w", item.ID, err)
		}
		messages = append(messages, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(item.ID),
			Value: sarama.ByteEncoder(payload),
		})
	}

	return p.producer.SendMessages(messages)
}

// Close gracefully shuts down the producer
func (p *Producer) Close() error {
	log.Println("Closing Kafka producer...")
	return p.producer.Close()
}
