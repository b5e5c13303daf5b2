//go:build unit

package queue

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-platform/internal/domain/logevent"
	"hotel-platform/internal/pkg/config"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	msgs chan kafka.Message

	mu        sync.Mutex
	committed []int64
	closed    bool
}

func newFakeReader(msgs ...kafka.Message) *fakeReader {
	ch := make(chan kafka.Message, len(msgs)+8)
	for _, m := range msgs {
		ch <- m
	}
	return &fakeReader{msgs: ch}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case m, ok := <-r.msgs:
		if !ok {
			return kafka.Message{}, io.EOF
		}
		return m, nil
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	}
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *fakeReader) commits() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.committed...)
}

func (r *fakeReader) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

type ingestFunc func(ctx context.Context, raw []byte) (*logevent.Event, error)

func (f ingestFunc) Ingest(ctx context.Context, raw []byte) (*logevent.Event, error) {
	return f(ctx, raw)
}

func testQueueConfig() config.QueueConfig {
	return config.QueueConfig{
		Topic:          "logs_queue",
		GroupID:        "logging_service",
		MaxRetries:     3,
		RetryBackoff:   time.Millisecond,
		ReconnectDelay: time.Millisecond,
		ReconnectMax:   5 * time.Millisecond,
	}
}

func staticReader(r MessageReader) ReaderFactory {
	return func(context.Context) (MessageReader, error) { return r, nil }
}

func msg(offset int64, value string) kafka.Message {
	return kafka.Message{Offset: offset, Value: []byte(value)}
}

func TestConsumer_PersistsThenCommitsInOrder(t *testing.T) {
	reader := newFakeReader(msg(1, "a"), msg(2, "b"))
	var mu sync.Mutex
	var seen []string
	ingest := ingestFunc(func(_ context.Context, raw []byte) (*logevent.Event, error) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, string(raw))
		return &logevent.Event{}, nil
	})

	c := NewConsumerWithReader(testQueueConfig(), ingest, staticReader(reader))
	require.NoError(t, c.Start(context.Background()))
	assert.Equal(t, StateConsuming, c.State())

	assert.Eventually(t, func() bool { return len(reader.commits()) == 2 }, time.Second, time.Millisecond)
	require.NoError(t, c.Stop(context.Background()))

	assert.Equal(t, []int64{1, 2}, reader.commits())
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, StateDisconnected, c.State())
	assert.True(t, reader.isClosed())
}

func TestConsumer_MessageOutcomes(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		err       error
		wantCalls int32
	}{
		{name: "malformed is acknowledged without retry", failures: 100, err: errs.Mark(errors.New("bad json"), commands.ErrMalformedEvent), wantCalls: 1},
		{name: "transient failure then success", failures: 1, err: errors.New("db down"), wantCalls: 2},
		{name: "persistent failure is bounded", failures: 100, err: errors.New("db down"), wantCalls: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := newFakeReader(msg(7, `{"level":1}`))
			var calls atomic.Int32
			ingest := ingestFunc(func(context.Context, []byte) (*logevent.Event, error) {
				n := calls.Add(1)
				if int(n) <= tt.failures {
					return nil, tt.err
				}
				return &logevent.Event{}, nil
			})

			c := NewConsumerWithReader(testQueueConfig(), ingest, staticReader(reader))
			require.NoError(t, c.Start(context.Background()))

			assert.Eventually(t, func() bool { return len(reader.commits()) == 1 }, time.Second, time.Millisecond)
			require.NoError(t, c.Stop(context.Background()))

			assert.Equal(t, tt.wantCalls, calls.Load())
			assert.Equal(t, []int64{7}, reader.commits())
		})
	}
}

func TestConsumer_DuplicatesArePersistedTwice(t *testing.T) {
	reader := newFakeReader(msg(1, "same"), msg(2, "same"))
	var calls atomic.Int32
	ingest := ingestFunc(func(context.Context, []byte) (*logevent.Event, error) {
		calls.Add(1)
		return &logevent.Event{}, nil
	})

	c := NewConsumerWithReader(testQueueConfig(), ingest, staticReader(reader))
	require.NoError(t, c.Start(context.Background()))
	assert.Eventually(t, func() bool { return len(reader.commits()) == 2 }, time.Second, time.Millisecond)
	require.NoError(t, c.Stop(context.Background()))

	assert.Equal(t, int32(2), calls.Load())
}

func TestConsumer_ConnectFailure(t *testing.T) {
	c := NewConsumerWithReader(testQueueConfig(), ingestFunc(nil), func(context.Context) (MessageReader, error) {
		return nil, errors.New("connection refused")
	})

	err := c.Start(context.Background())

	assert.Error(t, err)
	assert.Equal(t, StateDisconnected, c.State())
	assert.NoError(t, c.Stop(context.Background()))
}

func TestConsumer_StopWithoutStart(t *testing.T) {
	c := NewConsumerWithReader(testQueueConfig(), ingestFunc(nil), staticReader(newFakeReader()))

	assert.NoError(t, c.Stop(context.Background()))
	assert.Equal(t, StateDisconnected, c.State())
}

func TestConsumer_StartTwice(t *testing.T) {
	c := NewConsumerWithReader(testQueueConfig(), ingestFunc(nil), staticReader(newFakeReader()))
	require.NoError(t, c.Start(context.Background()))
	defer func() { _ = c.Stop(context.Background()) }()

	assert.ErrorIs(t, c.Start(context.Background()), ErrConsumerRunning)
}

func TestConsumer_StopWaitsForInFlightMessage(t *testing.T) {
	reader := newFakeReader(msg(3, "slow"))
	started := make(chan struct{})
	release := make(chan struct{})
	ingest := ingestFunc(func(context.Context, []byte) (*logevent.Event, error) {
		close(started)
		<-release
		return &logevent.Event{}, nil
	})

	c := NewConsumerWithReader(testQueueConfig(), ingest, staticReader(reader))
	require.NoError(t, c.Start(context.Background()))
	<-started

	stopped := make(chan error, 1)
	go func() { stopped <- c.Stop(context.Background()) }()

	select {
	case <-stopped:
		t.Fatal("Stop returned before the in-flight message finished")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-stopped)
	assert.Equal(t, []int64{3}, reader.commits())
}

func TestConsumer_RunReconnectsAfterConnectionLoss(t *testing.T) {
	first := newFakeReader(msg(1, "before"))
	close(first.msgs)
	second := newFakeReader(msg(2, "after"))

	var connects atomic.Int32
	factory := func(context.Context) (MessageReader, error) {
		switch connects.Add(1) {
		case 1:
			return first, nil
		case 2:
			return nil, errors.New("broker restarting")
		default:
			return second, nil
		}
	}
	ingest := ingestFunc(func(context.Context, []byte) (*logevent.Event, error) {
		return &logevent.Event{}, nil
	})

	c := NewConsumerWithReader(testQueueConfig(), ingest, factory)
	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan struct{})
	go func() {
		c.Run(ctx)
		close(runDone)
	}()

	assert.Eventually(t, func() bool { return len(second.commits()) == 1 }, 2*time.Second, time.Millisecond)
	assert.Equal(t, []int64{1}, first.commits())
	assert.Equal(t, StateConsuming, c.State())

	cancel()
	<-runDone
	require.NoError(t, c.Stop(context.Background()))
	assert.True(t, second.isClosed())
}
