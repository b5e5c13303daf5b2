//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"hotel-platform/internal/domain/logevent"
	"hotel-platform/internal/pkg/clock"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/usecase/commands"
	commandsmock "hotel-platform/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogIngest(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name          string
		raw           string
		wantMalformed bool
		wantLevel     logevent.Level
		wantTimestamp time.Time
	}{
		{
			name:          "valid with zulu timestamp",
			raw:           `{"level":2,"message":"room busy","service_name":"booking_service","timestamp":"2025-01-02T03:04:05Z"}`,
			wantLevel:     logevent.LevelWarn,
			wantTimestamp: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			name:          "valid with offset is normalised to UTC",
			raw:           `{"level":0,"message":"m","service_name":"s","timestamp":"2025-01-02T12:00:00+09:00"}`,
			wantLevel:     logevent.LevelDebug,
			wantTimestamp: time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC),
		},
		{
			name:          "valid without zone",
			raw:           `{"level":1,"message":"m","service_name":"s","timestamp":"2025-01-02T03:04:05.123456"}`,
			wantLevel:     logevent.LevelInfo,
			wantTimestamp: time.Date(2025, 1, 2, 3, 4, 5, 123456000, time.UTC),
		},
		{
			name:          "missing timestamp uses now",
			raw:           `{"level":3,"message":"m","service_name":"s"}`,
			wantLevel:     logevent.LevelError,
			wantTimestamp: now,
		},
		{name: "not json", raw: `level=1`, wantMalformed: true},
		{name: "missing level", raw: `{"message":"m","service_name":"s"}`, wantMalformed: true},
		{name: "level out of range", raw: `{"level":4,"message":"m","service_name":"s"}`, wantMalformed: true},
		{name: "negative level", raw: `{"level":-1,"message":"m","service_name":"s"}`, wantMalformed: true},
		{name: "empty message", raw: `{"level":1,"message":"","service_name":"s"}`, wantMalformed: true},
		{name: "missing service", raw: `{"level":1,"message":"m"}`, wantMalformed: true},
		{name: "message too long", raw: `{"level":1,"message":"` + strings.Repeat("x", 1001) + `","service_name":"s"}`, wantMalformed: true},
		{name: "bad timestamp", raw: `{"level":1,"message":"m","service_name":"s","timestamp":"yesterday"}`, wantMalformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := commandsmock.NewMockLogEventStore(ctrl)
			ingest := commands.NewLogIngest(store, clock.NewMockClock(now))

			if !tt.wantMalformed {
				store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			}

			event, err := ingest.Ingest(context.Background(), []byte(tt.raw))

			if tt.wantMalformed {
				assert.True(t, errs.Is(err, commands.ErrMalformedEvent), "got %v", err)
				assert.Nil(t, event)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, event.Level)
			assert.True(t, tt.wantTimestamp.Equal(event.Timestamp), "timestamp %s", event.Timestamp)
			assert.Equal(t, time.UTC, event.Timestamp.Location())
		})
	}
}

func TestLogIngest_StoreFailureIsTransient(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := commandsmock.NewMockLogEventStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errs.New("connection reset"))
	ingest := commands.NewLogIngest(store, clock.NewRealClock())

	_, err := ingest.Ingest(context.Background(), []byte(`{"level":1,"message":"m","service_name":"s"}`))

	require.Error(t, err)
	assert.False(t, errs.Is(err, commands.ErrMalformedEvent))
}

func TestLogIngest_DuplicatesGetDistinctIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := commandsmock.NewMockLogEventStore(ctrl)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	ingest := commands.NewLogIngest(store, clock.NewRealClock())
	raw := []byte(`{"level":1,"message":"same","service_name":"s"}`)

	first, err := ingest.Ingest(context.Background(), raw)
	require.NoError(t, err)
	second, err := ingest.Ingest(context.Background(), raw)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
