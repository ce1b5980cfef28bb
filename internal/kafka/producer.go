package kafka

import (
	"context"
	"fmt"

	segkafka "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key, value []byte) error
	Close() error
}

// WriterProducer ships messages through a shared kafka-go writer; the topic
// is set per message so one writer serves every topic.
type WriterProducer struct {
	writer *segkafka.Writer
}

func NewWriterProducer(brokers []string) *WriterProducer {
	return &WriterProducer{
		writer: &segkafka.Writer{
			Addr:         segkafka.TCP(brokers...),
			Balancer:     &segkafka.LeastBytes{},
			RequiredAcks: segkafka.RequireOne,
		},
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, topic string, key, value []byte) error {
	err := p.writer.WriteMessages(ctx, segkafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write to %s: %w", topic, err)
	}
	return nil
}

func (p *WriterProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer logs messages instead of shipping them, used when no
// brokers are configured (local development, tests).
type ConsoleProducer struct{}

func NewConsoleProducer() *ConsoleProducer {
	return &ConsoleProducer{}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key, value []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	zap.L().Info("event (console producer)",
		zap.String("topic", topic),
		zap.ByteString("key", key),
		zap.ByteString("value", value),
	)
	return nil
}

func (p *ConsoleProducer) Close() error {
	return nil
}
