package logevent

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	MaxMessageLen     = 1000
	MaxServiceNameLen = 255
)

// Event is a persisted log record. Events are append-only.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Level       Level     `json:"level"`
	Message     string    `json:"message"`
	ServiceName string    `json:"service_name"`
	Timestamp   time.Time `json:"timestamp"`
}

// Payload is the queue wire format.
type Payload struct {
	Level       *int   `json:"level" validate:"required,min=0,max=3"`
	Message     string `json:"message" validate:"required,max=1000"`
	ServiceName string `json:"service_name" validate:"required,max=255"`
	Timestamp   string `json:"timestamp,omitempty"`
}

func NewPayload(level Level, message, serviceName string, ts time.Time) Payload {
	l := int(level)
	return Payload{
		Level:       &l,
		Message:     Truncate(message, MaxMessageLen),
		ServiceName: Truncate(serviceName, MaxServiceNameLen),
		Timestamp:   ts.UTC().Format(time.RFC3339Nano),
	}
}

func (p Payload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
