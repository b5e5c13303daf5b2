package commands

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"hotel-platform/internal/domain/logevent"
	"hotel-platform/internal/pkg/clock"
	"hotel-platform/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:generate mockgen -source=logingest.go -destination=../../../tests/mock/commands/logingest.go -package=commandsmock

// ErrMalformedEvent is permanent: redelivering the same bytes cannot succeed.
var ErrMalformedEvent = errs.New("malformed log event")

type LogIngest interface {
	Ingest(ctx context.Context, raw []byte) (*logevent.Event, error)
}

type logIngestImpl struct {
	store    LogEventStore
	validate *validator.Validate
	clock    clock.Clock
}

func NewLogIngest(store LogEventStore, clock clock.Clock) LogIngest {
	return &logIngestImpl{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		clock:    clock,
	}
}

// Ingest parses and validates raw, then persists it as a new event. Errors
// marked with ErrMalformedEvent must not be retried; any other error comes
// from the store.
func (l *logIngestImpl) Ingest(ctx context.Context, raw []byte) (*logevent.Event, error) {
	event, err := l.parse(raw)
	if err != nil {
		return nil, err
	}
	if err := l.store.Save(ctx, event); err != nil {
		return nil, errs.Wrap(err, "failed to persist log event")
	}
	return event, nil
}

func (l *logIngestImpl) parse(raw []byte) (*logevent.Event, error) {
	var p logevent.Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, errs.Mark(err, ErrMalformedEvent)
	}
	if err := l.validate.Struct(p); err != nil {
		return nil, errs.Mark(err, ErrMalformedEvent)
	}

	ts := l.clock.Now()
	if p.Timestamp != "" {
		parsed, err := parseTimestamp(p.Timestamp)
		if err != nil {
			return nil, errs.Mark(err, ErrMalformedEvent)
		}
		ts = parsed
	}

	return &logevent.Event{
		ID:          uuid.New(),
		Level:       logevent.Level(*p.Level),
		Message:     p.Message,
		ServiceName: p.ServiceName,
		Timestamp:   ts.UTC(),
	}, nil
}

// Offset-less timestamps are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// parseTimestamp accepts ISO 8601 date-times with a numeric offset, a "z"/"Z"
// suffix, or no zone at all.
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "z") {
		s = s[:len(s)-1] + "Z"
	}
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
