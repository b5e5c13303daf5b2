package repository

import (
	"context"
	"time"

	"hotel-platform/internal/domain/reservation"
	"hotel-platform/internal/infra"
	"hotel-platform/internal/infra/db"

	"github.com/google/uuid"
)

const (
	overlapsSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE room_id = $1
      AND check_in_date < $3
      AND check_out_date > $2
      AND ($4::uuid IS NULL OR id <> $4::uuid)
)`

	createReservationSQL = `
INSERT INTO bookings (id, room_id, user_id, check_in_date, check_out_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	findReservationForUpdateSQL = `
SELECT id, room_id, user_id, check_in_date, check_out_date, created_at
FROM bookings
WHERE id = $1
FOR UPDATE`

	deleteReservationSQL = `DELETE FROM bookings WHERE id = $1`
)

// ReservationRepository is the interval store: per room, the set of committed
// [check_in, check_out) ranges.
type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

// Overlaps reports whether any committed reservation of roomID other than
// exclude intersects stay. Ranges that only touch do not intersect.
func (r *ReservationRepository) Overlaps(ctx context.Context, tx db.DBTX, roomID uuid.UUID, stay reservation.Stay, exclude *uuid.UUID) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, overlapsSQL, roomID, stay.CheckIn(), stay.CheckOut(), exclude).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to query overlapping reservations", err)
	}
	return exists, nil
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	_, err := tx.Exec(ctx, createReservationSQL,
		res.ID(), res.RoomID(), res.UserID(), res.Stay().CheckIn(), res.Stay().CheckOut(), res.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	var (
		resID, roomID, userID uuid.UUID
		checkIn, checkOut     time.Time
		createdAt             time.Time
	)
	err := tx.QueryRow(ctx, findReservationForUpdateSQL, id).
		Scan(&resID, &roomID, &userID, &checkIn, &checkOut, &createdAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	stay, err := reservation.NewStay(checkIn, checkOut)
	if err != nil {
		return nil, infra.WrapRepoErr("stored reservation has an invalid stay", err)
	}
	return reservation.ReconstructReservation(resID, roomID, userID, stay, createdAt), nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteReservationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewNotFound("reservation not found")
	}
	return nil
}
