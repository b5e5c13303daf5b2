package response

import (
	"time"

	"hotel-platform/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HotelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	ImgURL      *string   `json:"img_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoomResponse struct {
	ID            uuid.UUID `json:"id"`
	HotelID       uuid.UUID `json:"hotel_id"`
	RoomNumber    string    `json:"room_number"`
	RoomType      int       `json:"room_type"`
	PricePerNight string    `json:"price_per_night"`
	ImgURL        *string   `json:"img_url"`
}

func FromHotelView(v *queries.HotelView) (*HotelResponse, error) {
	var res HotelResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromHotelViews(vs []*queries.HotelView) ([]*HotelResponse, error) {
	res := make([]*HotelResponse, 0, len(vs))
	if err := copier.Copy(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var res RoomResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromRoomViews(vs []*queries.RoomView) ([]*RoomResponse, error) {
	res := make([]*RoomResponse, 0, len(vs))
	if err := copier.Copy(&res, vs); err != nil {
		return nil, err
	}
	return res, nil
}
