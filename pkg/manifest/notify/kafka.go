package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const DefaultTopic = "manifest.import.completed"

type KafkaConfig struct {
	Brokers  []string `yaml:"brokers"`
	Topic    string   `yaml:"topic"`
	Attempts int      `yaml:"attempts"`
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

type _MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer   _MessageWriter
	topic    string
	attempts uint
	delay    time.Duration
}

type KafkaOptionFunc func(*KafkaPublisher)

func WithRetryDelay(delay time.Duration) KafkaOptionFunc {
	return func(p *KafkaPublisher) {
		p.delay = delay
	}
}

func NewKafkaPublisher(cfg KafkaConfig, opts ...KafkaOptionFunc) (*KafkaPublisher, error) {
	if !cfg.Enabled() {
		return nil, errors.New("kafka: no broker configured")
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(writer, cfg, opts...), nil
}

func newKafkaPublisher(writer _MessageWriter, cfg KafkaConfig, opts ...KafkaOptionFunc) *KafkaPublisher {
	p := &KafkaPublisher{
		writer:   writer,
		topic:    cfg.Topic,
		attempts: 3,
		delay:    200 * time.Millisecond,
	}
	if p.topic == "" {
		p.topic = DefaultTopic
	}
	if cfg.Attempts > 0 {
		p.attempts = uint(cfg.Attempts)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish writes the event keyed by its import record id so that events of one import keep their order.
func (p *KafkaPublisher) Publish(ctx context.Context, event ImportCompleted) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal import event: %w", err)
	}
	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.ImportRecordID),
		Value: value,
	}

	err = retry.Do(
		func() error {
			if err := p.writer.WriteMessages(ctx, msg); err != nil {
				logrus.Debugf("publish import %s: %v", event.ImportRecordID, err)
				return err
			}
			return nil
		},
		retry.Attempts(p.attempts),
		retry.Delay(p.delay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("publish import %s to %s: %w", event.ImportRecordID, p.topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
