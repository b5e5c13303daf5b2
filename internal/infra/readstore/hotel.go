package readstore

import (
	"context"
	"time"

	"hotel-platform/internal/domain/hotel"
	"hotel-platform/internal/infra"
	"hotel-platform/internal/infra/db"
	"hotel-platform/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	listHotelsSQL = `
SELECT id, name, location, description, img_url, created_at
FROM hotels
ORDER BY created_at, id`

	hotelExistsReadSQL = `SELECT EXISTS (SELECT 1 FROM hotels WHERE id = $1)`

	listRoomsByHotelSQL = `
SELECT id, hotel_id, room_number, room_type, (price_per_night * 100)::bigint, img_url
FROM rooms
WHERE hotel_id = $1
ORDER BY room_number, id`

	findRoomByIDSQL = `
SELECT id, hotel_id, room_number, room_type, (price_per_night * 100)::bigint, img_url
FROM rooms
WHERE id = $1`
)

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(db db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: db}
}

func (r *HotelReadStore) ListHotels(ctx context.Context) ([]*queries.HotelView, error) {
	rows, err := r.db.Query(ctx, listHotelsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	views := make([]*queries.HotelView, 0)
	for rows.Next() {
		var (
			v         queries.HotelView
			createdAt time.Time
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.Description, &v.ImgURL, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel", err)
		}
		v.CreatedAt = createdAt.UTC()
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotels", err)
	}
	return views, nil
}

func (r *HotelReadStore) HotelExists(ctx context.Context, hotelID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, hotelExistsReadSQL, hotelID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check hotel", err)
	}
	return exists, nil
}

func (r *HotelReadStore) ListRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.RoomView, error) {
	rows, err := r.db.Query(ctx, listRoomsByHotelSQL, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	views := make([]*queries.RoomView, 0)
	for rows.Next() {
		v, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return views, nil
}

func (r *HotelReadStore) FindRoomByID(ctx context.Context, roomID uuid.UUID) (*queries.RoomView, error) {
	v, err := scanRoom(r.db.QueryRow(ctx, findRoomByIDSQL, roomID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return v, nil
}

func scanRoom(row pgx.Row) (*queries.RoomView, error) {
	var (
		v     queries.RoomView
		cents int64
	)
	if err := row.Scan(&v.ID, &v.HotelID, &v.RoomNumber, &v.RoomType, &cents, &v.ImgURL); err != nil {
		return nil, err
	}
	v.PricePerNight = hotel.NewMoney(cents).String()
	return &v, nil
}
