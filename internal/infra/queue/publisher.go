package queue

import (
	"context"
	"sync"
	"time"

	"hotel-platform/internal/pkg/config"
	"hotel-platform/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher owns one lazily created writer. A failed write discards the
// writer so the next Publish reconnects and re-declares the topic.
type KafkaPublisher struct {
	cfg       config.QueueConfig
	newWriter func(ctx context.Context) (messageWriter, error)

	mu     sync.Mutex
	writer messageWriter
	closed bool
}

func NewKafkaPublisher(cfg config.QueueConfig) *KafkaPublisher {
	p := &KafkaPublisher{cfg: cfg}
	p.newWriter = p.dialWriter
	return p
}

func (p *KafkaPublisher) Publish(ctx context.Context, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	if p.writer == nil {
		w, err := p.newWriter(ctx)
		if err != nil {
			return errs.Wrap(err, "failed to open queue writer")
		}
		p.writer = w
	}

	err := p.writer.WriteMessages(ctx, kafka.Message{Value: value, Time: time.Now()})
	if err != nil {
		p.discardLocked()
		return errs.Wrap(err, "failed to publish log event")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	if p.writer == nil {
		return nil
	}
	err := p.writer.Close()
	p.writer = nil
	return err
}

func (p *KafkaPublisher) discardLocked() {
	if p.writer == nil {
		return
	}
	if err := p.writer.Close(); err != nil {
		logger().Debug("failed to close discarded writer", "error", err.Error())
	}
	p.writer = nil
}

func (p *KafkaPublisher) dialWriter(ctx context.Context) (messageWriter, error) {
	if err := EnsureTopic(ctx, p.cfg); err != nil {
		return nil, err
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(p.cfg.Brokers...),
		Topic:                  p.cfg.Topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireAll,
		MaxAttempts:            1,
		BatchSize:              1,
		WriteTimeout:           p.cfg.WriteTimeout,
		AllowAutoTopicCreation: false,
		Logger:                 silentLogger(),
		ErrorLogger:            kafkaErrorLogger(),
	}, nil
}
