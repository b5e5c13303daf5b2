package commands

import (
	"context"
	"log/slog"

	"hotel-platform/internal/domain/user"
	"hotel-platform/internal/infra"
	"hotel-platform/internal/pkg/clock"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/usecase/queries"
	"hotel-platform/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

const TokenTypeBearer = "bearer"

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	TokenType   string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*queries.UserView, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow         shared.UnitOfWork
	credentials shared.CredentialsReader
	hasher      PasswordHasher
	tokens      TokenIssuer
	clock       clock.Clock
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	credentials shared.CredentialsReader,
	hasher PasswordHasher,
	tokens TokenIssuer,
	clock clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		uow:         uow,
		credentials: credentials,
		hasher:      hasher,
		tokens:      tokens,
		clock:       clock,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*queries.UserView, error) {
	name, err := user.NewName(in.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}
	u := user.NewUser(name, email, hash, a.clock.Now())

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("user registered", "user_id", u.ID().String())

	return &queries.UserView{
		ID:        u.ID(),
		Name:      u.Name().String(),
		Email:     u.Email().String(),
		CreatedAt: u.CreatedAt(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	creds, err := a.credentials.FindCredentialsByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as password mismatch to prevent user enumeration attacks
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if err := a.hasher.Compare(creds.PasswordHash, in.Password); err != nil {
		slog.Warn("login failed", "user_id", creds.ID.String())
		return nil, ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(creds.ID, creds.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      creds.ID,
		AccessToken: token,
		TokenType:   TokenTypeBearer,
	}, nil
}
