package repository

import (
	"context"

	"hotel-platform/internal/domain/user"
	"hotel-platform/internal/infra"
	"hotel-platform/internal/infra/db"
)

const (
	createUserSQL = `
INSERT INTO users (id, name, email, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)`
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, createUserSQL, u.ID(), u.Name().String(), u.Email().String(), u.PasswordHash(), u.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}
