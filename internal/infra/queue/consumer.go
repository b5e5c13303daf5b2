package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"hotel-platform/internal/domain/logevent"
	"hotel-platform/internal/pkg/config"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/pkg/retry"
	"hotel-platform/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
)

type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConsuming
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConsuming:
		return "consuming"
	default:
		return "disconnected"
	}
}

// MessageReader is the part of *kafka.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type ReaderFactory func(ctx context.Context) (MessageReader, error)

type Ingester interface {
	Ingest(ctx context.Context, raw []byte) (*logevent.Event, error)
}

// Consumer drains the log topic into the ingest use case. Offsets are committed
// only after a message was persisted or deliberately discarded.
type Consumer struct {
	cfg     config.QueueConfig
	ingest  Ingester
	connect ReaderFactory

	state atomic.Int32

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewConsumer(cfg config.QueueConfig, ingest Ingester) *Consumer {
	return NewConsumerWithReader(cfg, ingest, kafkaReaderFactory(cfg))
}

func NewConsumerWithReader(cfg config.QueueConfig, ingest Ingester, connect ReaderFactory) *Consumer {
	return &Consumer{cfg: cfg, ingest: ingest, connect: connect}
}

func (c *Consumer) State() State {
	return State(c.state.Load())
}

// Start connects and begins consuming in the background. A failed connect is
// returned to the caller and leaves the consumer disconnected.
func (c *Consumer) Start(ctx context.Context) error {
	_, err := c.start(ctx)
	return err
}

func (c *Consumer) start(ctx context.Context) (<-chan struct{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil, ErrConsumerRunning
	}

	c.setState(StateConnecting)
	reader, err := c.connect(ctx)
	if err != nil {
		c.setState(StateDisconnected)
		return nil, errs.Wrap(err, "failed to connect to log queue")
	}

	runCtx, cancel := context.WithCancel(context.Background())
	c.running = true
	c.cancel = cancel
	c.done = make(chan struct{})
	c.setState(StateConsuming)

	logger().Info("log consumer started", "topic", c.cfg.Topic, "group_id", c.cfg.GroupID)
	go c.run(runCtx, reader, c.done)
	return c.done, nil
}

// Stop cancels fetching, waits for the in-flight message to be handled and
// acknowledged, then closes the reader. It is a no-op when not running.
func (c *Consumer) Stop(ctx context.Context) error {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.mu.Unlock()

	if cancel == nil {
		c.setState(StateDisconnected)
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run keeps the consumer connected until ctx is cancelled, reconnecting with
// capped backoff after connect failures or a lost connection.
func (c *Consumer) Run(ctx context.Context) {
	attempt := 0
	for {
		done, err := c.start(ctx)
		switch {
		case err == nil:
			attempt = 0
			select {
			case <-ctx.Done():
				return
			case <-done:
			}
			if ctx.Err() != nil {
				return
			}
			logger().Warn("log consumer disconnected, reconnecting")
		case errs.Is(err, ErrConsumerRunning):
			return
		default:
			logger().Warn("log consumer connect failed", "attempt", attempt+1, "error", err.Error())
		}

		wait := retry.Backoff(attempt, c.cfg.ReconnectDelay, c.cfg.ReconnectMax)
		attempt++
		if retry.Sleep(ctx, wait) != nil {
			return
		}
	}
}

func (c *Consumer) run(ctx context.Context, reader MessageReader, done chan struct{}) {
	defer func() {
		if err := reader.Close(); err != nil {
			logger().Warn("failed to close log queue reader", "error", err.Error())
		}
		c.mu.Lock()
		c.running = false
		c.cancel = nil
		c.done = nil
		c.setState(StateDisconnected)
		c.mu.Unlock()
		close(done)
	}()

	// In-flight work finishes even after Stop cancels fetching.
	work := context.WithoutCancel(ctx)

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger().Warn("log queue fetch failed", "error", err.Error())
			}
			return
		}

		c.handle(work, msg)

		if err := reader.CommitMessages(work, msg); err != nil {
			logger().Warn("failed to commit log event offset", "offset", msg.Offset, "error", err.Error())
			return
		}
	}
}

// handle returns once msg is persisted or given up on; either way the offset
// is committed afterwards.
func (c *Consumer) handle(ctx context.Context, msg kafka.Message) {
	for attempt := 0; ; attempt++ {
		_, err := c.ingest.Ingest(ctx, msg.Value)
		if err == nil {
			return
		}

		if errs.Is(err, commands.ErrMalformedEvent) {
			logger().Warn("discarding malformed log event",
				"offset", msg.Offset,
				"error", err.Error())
			return
		}

		if attempt >= c.cfg.MaxRetries {
			logger().Error("dropping log event after retries",
				"offset", msg.Offset,
				"attempts", attempt+1,
				"error", err.Error())
			return
		}

		wait := retry.Backoff(attempt, c.cfg.RetryBackoff, c.cfg.ReconnectMax)
		if retry.Sleep(ctx, wait) != nil {
			return
		}
	}
}

func (c *Consumer) setState(s State) {
	c.state.Store(int32(s))
}

func kafkaReaderFactory(cfg config.QueueConfig) ReaderFactory {
	return func(ctx context.Context) (MessageReader, error) {
		if err := EnsureTopic(ctx, cfg); err != nil {
			return nil, err
		}
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers:        cfg.Brokers,
			Topic:          cfg.Topic,
			GroupID:        cfg.GroupID,
			MinBytes:       1,
			MaxBytes:       10e6,
			MaxWait:        500 * time.Millisecond,
			CommitInterval: 0,
			StartOffset:    kafka.FirstOffset,
			Dialer:         &kafka.Dialer{Timeout: cfg.DialTimeout},
			Logger:         silentLogger(),
			ErrorLogger:    kafkaErrorLogger(),
		}), nil
	}
}
