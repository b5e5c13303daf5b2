package readstore

import (
	"context"

	"hotel-platform/internal/domain/user"
	"hotel-platform/internal/infra"
	"hotel-platform/internal/infra/db"
	"hotel-platform/internal/usecase/queries"
	"hotel-platform/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	findUserByIDSQL = `
SELECT id, name, email, created_at
FROM users
WHERE id = $1`

	findCredentialsByEmailSQL = `
SELECT id, email, password_hash
FROM users
WHERE email = $1`
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var v queries.UserView
	err := r.db.QueryRow(ctx, findUserByIDSQL, id).Scan(&v.ID, &v.Name, &v.Email, &v.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	v.CreatedAt = v.CreatedAt.UTC()
	return &v, nil
}

func (r *UserReadStore) FindCredentialsByEmail(ctx context.Context, email user.Email) (*shared.UserCredentials, error) {
	var c shared.UserCredentials
	err := r.db.QueryRow(ctx, findCredentialsByEmailSQL, email.String()).Scan(&c.ID, &c.Email, &c.PasswordHash)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &c, nil
}
