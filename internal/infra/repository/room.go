package repository

import (
	"context"

	"hotel-platform/internal/domain/hotel"
	"hotel-platform/internal/infra"
	"hotel-platform/internal/infra/db"

	"github.com/google/uuid"
)

const (
	lockRoomSQL = `
SELECT id, hotel_id, room_number, room_type, (price_per_night * 100)::bigint, img_url
FROM rooms
WHERE id = $1
FOR UPDATE`

	createRoomSQL = `
INSERT INTO rooms (id, hotel_id, room_number, room_type, price_per_night, img_url)
VALUES ($1, $2, $3, $4, $5::numeric / 100, $6)`
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

// LockForUpdate blocks until no other transaction holds the room row, bounded
// by the transaction's lock_timeout, and returns the locked row. A missing room
// yields KindNotFound.
func (r *RoomRepository) LockForUpdate(ctx context.Context, tx db.DBTX, roomID uuid.UUID) (*hotel.Room, error) {
	var (
		id, hotelID uuid.UUID
		number      string
		roomType    int
		cents       int64
		imgURL      *string
	)
	err := tx.QueryRow(ctx, lockRoomSQL, roomID).Scan(&id, &hotelID, &number, &roomType, &cents, &imgURL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return hotel.ReconstructRoom(id, hotelID, number, roomType, hotel.NewMoney(cents), imgURL), nil
}

func (r *RoomRepository) Create(ctx context.Context, tx db.DBTX, room *hotel.Room) error {
	_, err := tx.Exec(ctx, createRoomSQL,
		room.ID(), room.HotelID(), room.RoomNumber(), room.RoomType(), room.PricePerNight().Cents(), room.ImgURL())
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}
