//go:build unit

package logship

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"hotel-platform/internal/domain/logevent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu       sync.Mutex
	payloads []logevent.Payload
}

func (s *recordingSink) Enqueue(p logevent.Payload) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, p)
	return true
}

func (s *recordingSink) all() []logevent.Payload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]logevent.Payload(nil), s.payloads...)
}

func newTestLogger(sink Sink) *slog.Logger {
	inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewHandler(inner, sink, "booking_service"))
}

func TestHandler_LevelMapping(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  int
	}{
		{slog.LevelDebug - 4, 0},
		{slog.LevelDebug, 0},
		{slog.LevelInfo, 1},
		{slog.LevelWarn, 2},
		{slog.LevelError, 3},
		{slog.LevelError + 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			sink := &recordingSink{}
			inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug - 4})
			logger := slog.New(NewHandler(inner, sink, "svc"))

			logger.Log(context.Background(), tt.level, "msg")

			got := sink.all()
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, *got[0].Level)
		})
	}
}

func TestHandler_RendersAttributes(t *testing.T) {
	sink := &recordingSink{}
	logger := newTestLogger(sink).With("request_id", "r-1").WithGroup("room")

	logger.Info("reservation conflict", "id", 12, "note", "two words")

	got := sink.all()
	require.Len(t, got, 1)
	assert.Equal(t, `reservation conflict request_id=r-1 room.id=12 room.note="two words"`, got[0].Message)
	assert.Equal(t, "booking_service", got[0].ServiceName)
	assert.Equal(t, 1, *got[0].Level)
}

func TestHandler_WireFormat(t *testing.T) {
	sink := &recordingSink{}
	logger := newTestLogger(sink)

	logger.Warn("disk almost full")

	got := sink.all()
	require.Len(t, got, 1)
	b, err := got[0].Marshal()
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(b, &wire))
	assert.Equal(t, float64(2), wire["level"])
	assert.Equal(t, "disk almost full", wire["message"])
	assert.Equal(t, "booking_service", wire["service_name"])
	_, err = time.Parse(time.RFC3339Nano, wire["timestamp"].(string))
	assert.NoError(t, err)
}

func TestHandler_SuppressesNoise(t *testing.T) {
	sink := &recordingSink{}
	logger := newTestLogger(sink)

	logger.Info("(trapped) error reading bcrypt version")
	logger.Warn("write failed", ComponentKey, "kafka")
	logger.With(ComponentKey, "queue").Error("reader closed")
	logger.Info("kept", ComponentKey, "http")

	got := sink.all()
	require.Len(t, got, 1)
	assert.Equal(t, "kept component=http", got[0].Message)
}

func TestHandler_RespectsInnerLevel(t *testing.T) {
	sink := &recordingSink{}
	inner := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := slog.New(NewHandler(inner, sink, "svc"))

	logger.Info("filtered")
	logger.Error("shipped")

	got := sink.all()
	require.Len(t, got, 1)
	assert.Equal(t, "shipped", got[0].Message)
}

func TestHandler_TruncatesLongMessages(t *testing.T) {
	sink := &recordingSink{}
	logger := newTestLogger(sink)

	long := make([]rune, logevent.MaxMessageLen+50)
	for i := range long {
		long[i] = 'é'
	}
	logger.Info(string(long))

	got := sink.all()
	require.Len(t, got, 1)
	assert.Len(t, []rune(got[0].Message), logevent.MaxMessageLen)
}
