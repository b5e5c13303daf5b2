package shared

import (
	"context"

	"hotel-platform/internal/domain/hotel"
	"hotel-platform/internal/domain/reservation"
	"hotel-platform/internal/domain/user"
	"hotel-platform/internal/infra/db"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: READ COMMITTED transaction with a bounded lock wait; serialization failures and deadlocks are retried
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Rooms() RoomRepository
	Reservations() ReservationRepository
	Hotels() HotelRepository
	Users() UserRepository
	DB() db.DBTX
}

type RoomRepository interface {
	// LockForUpdate takes the room's row lock; it is the serialization point for admission
	LockForUpdate(ctx context.Context, tx db.DBTX, roomID uuid.UUID) (*hotel.Room, error)
	Create(ctx context.Context, tx db.DBTX, room *hotel.Room) error
}

type ReservationRepository interface {
	Overlaps(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay reservation.Stay, exclude *uuid.UUID) (bool, error)
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type HotelRepository interface {
	Create(ctx context.Context, tx db.DBTX, h *hotel.Hotel) error
	Exists(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
}

// CredentialsReader is served by the read side; login never opens a transaction
type CredentialsReader interface {
	FindCredentialsByEmail(ctx context.Context, email user.Email) (*UserCredentials, error)
}
