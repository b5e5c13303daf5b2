package readstore

import (
	"context"

	"hotel-platform/internal/domain/hotel"
	"hotel-platform/internal/infra"
	"hotel-platform/internal/infra/db"
	"hotel-platform/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationColumns = `
SELECT b.id, b.room_id, b.user_id, b.check_in_date, b.check_out_date, b.created_at,
       r.id, r.hotel_id, r.room_number, r.room_type, (r.price_per_night * 100)::bigint, r.img_url
FROM bookings b
JOIN rooms r ON r.id = b.room_id`

const findReservationsByUserSQL = reservationColumns + `
WHERE b.user_id = $1
ORDER BY b.created_at DESC, b.id`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, findReservationsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		v, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return views, nil
}

func scanReservation(row pgx.Row) (*queries.ReservationView, error) {
	var (
		v     queries.ReservationView
		cents int64
	)
	err := row.Scan(
		&v.ID, &v.RoomID, &v.UserID, &v.CheckIn, &v.CheckOut, &v.CreatedAt,
		&v.Room.ID, &v.Room.HotelID, &v.Room.RoomNumber, &v.Room.RoomType, &cents, &v.Room.ImgURL,
	)
	if err != nil {
		return nil, err
	}
	v.CheckIn = v.CheckIn.UTC()
	v.CheckOut = v.CheckOut.UTC()
	v.CreatedAt = v.CreatedAt.UTC()
	v.Room.PricePerNight = hotel.NewMoney(cents).String()
	return &v, nil
}
