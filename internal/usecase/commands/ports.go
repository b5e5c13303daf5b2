package commands

import (
	"context"

	"hotel-platform/internal/domain/logevent"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// LogEventStore is the append-only sink for ingested log events.
type LogEventStore interface {
	Save(ctx context.Context, event *logevent.Event) error
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, email string) (string, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}
