package kafka

import (
	"context"
	"log"

	"github.com/glossandgo/booking/config"
	"github.com/segmentio/kafka-go"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(cfg config.KafkaConfig, topic string) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			Topic:   topic,
			GroupID: cfg.GroupID,
		}),
	}
}

// Consume reads messages until ctx is cancelled, passing each payload
// to handle. Handler errors are logged and the message is skipped.
func (c *Consumer) Consume(ctx context.Context, handle func(ctx context.Context, payload []byte) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := handle(ctx, msg.Value); err != nil {
			log.Printf("kafka: handler failed for message key=%s: %v", msg.Key, err)
		}
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
