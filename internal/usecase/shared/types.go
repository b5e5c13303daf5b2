package shared

import "github.com/google/uuid"

// Minimal snapshot for login; never leaves the use case layer
type UserCredentials struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}
