package kafka

import (
	"context"
	"encoding/json"

	"github.com/CellkomStore/cellkom_store_app/internal/events"
	"github.com/segmentio/kafka-go"
)

// Publisher pushes change events to a Kafka topic. Events are keyed by
// entity ID so all changes to one entity land on the same partition.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a Kafka-backed change feed publisher.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

var _ events.Publisher = (*Publisher)(nil)

// Publish writes one change event to the topic.
func (p *Publisher) Publish(ctx context.Context, event events.ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EntityID),
		Value: data,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
