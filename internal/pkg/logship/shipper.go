package logship

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"hotel-platform/internal/domain/logevent"
	"hotel-platform/internal/pkg/config"
	"hotel-platform/internal/pkg/retry"
)

const defaultWriteTimeout = 5 * time.Second

// Publisher delivers one encoded event to the durable queue.
type Publisher interface {
	Publish(ctx context.Context, value []byte) error
}

// Shipper decouples logging from delivery: Enqueue never blocks, and a single
// worker publishes events in order, retrying each until it is delivered or the
// shipper stops.
type Shipper struct {
	pub          Publisher
	queue        chan []byte
	writeTimeout time.Duration
	backoffMin   time.Duration
	backoffMax   time.Duration

	dropped   atomic.Uint64
	delivered atomic.Uint64

	ctx       context.Context
	cancel    context.CancelFunc
	stop      chan struct{}
	done      chan struct{}
	startOnce sync.Once
	stopOnce  sync.Once
}

func NewShipper(pub Publisher, cfg config.LogShipConfig, writeTimeout time.Duration) *Shipper {
	buffer := cfg.Buffer
	if buffer <= 0 {
		buffer = 1
	}
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Shipper{
		pub:          pub,
		queue:        make(chan []byte, buffer),
		writeTimeout: writeTimeout,
		backoffMin:   cfg.BackoffMin,
		backoffMax:   cfg.BackoffMax,
		ctx:          ctx,
		cancel:       cancel,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

func (s *Shipper) Start() {
	s.startOnce.Do(func() {
		go s.run()
	})
}

// Enqueue hands p to the worker. When the buffer is full p is dropped and
// counted; the caller is never blocked.
func (s *Shipper) Enqueue(p logevent.Payload) bool {
	select {
	case <-s.stop:
		s.dropped.Add(1)
		return false
	default:
	}

	b, err := p.Marshal()
	if err != nil {
		s.dropped.Add(1)
		return false
	}

	select {
	case s.queue <- b:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

func (s *Shipper) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *Shipper) Delivered() uint64 {
	return s.delivered.Load()
}

// Stop asks the worker to flush what is buffered and waits for it until ctx
// expires; after that, pending deliveries are abandoned.
func (s *Shipper) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	s.startOnce.Do(func() {
		close(s.done)
	})

	select {
	case <-s.done:
		s.cancel()
		return nil
	case <-ctx.Done():
		s.cancel()
		<-s.done
		return ctx.Err()
	}
}

func (s *Shipper) run() {
	defer close(s.done)
	for {
		select {
		case b := <-s.queue:
			s.deliver(b)
		case <-s.stop:
			s.flush()
			return
		}
	}
}

func (s *Shipper) deliver(b []byte) {
	for attempt := 0; ; attempt++ {
		if s.publish(b) == nil {
			s.delivered.Add(1)
			return
		}

		wait := retry.Backoff(attempt, s.backoffMin, s.backoffMax)
		select {
		case <-s.stop:
			// One more try during flush; the event is lost if it fails again.
			if s.publish(b) == nil {
				s.delivered.Add(1)
			} else {
				s.dropped.Add(1)
			}
			return
		case <-time.After(wait):
		}
	}
}

// flush makes one attempt per buffered event.
func (s *Shipper) flush() {
	for {
		select {
		case b := <-s.queue:
			if s.ctx.Err() != nil {
				s.dropped.Add(1)
				continue
			}
			if s.publish(b) == nil {
				s.delivered.Add(1)
			} else {
				s.dropped.Add(1)
			}
		default:
			return
		}
	}
}

func (s *Shipper) publish(b []byte) error {
	ctx, cancel := context.WithTimeout(s.ctx, s.writeTimeout)
	defer cancel()
	err := s.pub.Publish(ctx, b)
	if err != nil {
		slog.Debug("log event delivery failed", ComponentKey, "queue", "error", err.Error())
	}
	return err
}
