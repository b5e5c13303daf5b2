package response

import (
	"time"

	"hotel-platform/internal/domain/reservation"
	"hotel-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID    `json:"id"`
	RoomID       uuid.UUID    `json:"room_id"`
	UserID       uuid.UUID    `json:"user_id"`
	CheckInDate  string       `json:"check_in_date"`
	CheckOutDate string       `json:"check_out_date"`
	CreatedAt    time.Time    `json:"created_at"`
	Room         RoomResponse `json:"room"`
}

func FromReservationView(v *queries.ReservationView) *BookingResponse {
	return &BookingResponse{
		ID:           v.ID,
		RoomID:       v.RoomID,
		UserID:       v.UserID,
		CheckInDate:  v.CheckIn.Format(reservation.DateLayout),
		CheckOutDate: v.CheckOut.Format(reservation.DateLayout),
		CreatedAt:    v.CreatedAt,
		Room: RoomResponse{
			ID:            v.Room.ID,
			HotelID:       v.Room.HotelID,
			RoomNumber:    v.Room.RoomNumber,
			RoomType:      v.Room.RoomType,
			PricePerNight: v.Room.PricePerNight,
			ImgURL:        v.Room.ImgURL,
		},
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromReservationView(v)
	}
	return res
}
