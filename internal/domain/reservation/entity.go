package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Reservation is a committed stay of one user in one room.
// New reservations are only created by the admission use case.
type Reservation struct {
	id        uuid.UUID
	roomID    uuid.UUID
	userID    uuid.UUID
	stay      Stay
	createdAt time.Time
}

func NewReservation(roomID, userID uuid.UUID, stay Stay, now time.Time) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		roomID:    roomID,
		userID:    userID,
		stay:      stay,
		createdAt: now,
	}
}

func ReconstructReservation(id, roomID, userID uuid.UUID, stay Stay, createdAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		roomID:    roomID,
		userID:    userID,
		stay:      stay,
		createdAt: createdAt,
	}
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) RoomID() uuid.UUID    { return r.roomID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Stay() Stay           { return r.stay }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
