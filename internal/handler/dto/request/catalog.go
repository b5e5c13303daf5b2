package request

import (
	"encoding/json"

	"hotel-platform/internal/domain/hotel"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Location    string  `json:"location" binding:"required,max=255"`
	Description string  `json:"description" binding:"required"`
	ImgURL      *string `json:"img_url" binding:"omitempty,max=500"`
}

func (r CreateHotelRequest) ToInput() commands.CreateHotelInput {
	return commands.CreateHotelInput{
		Name:        r.Name,
		Location:    r.Location,
		Description: r.Description,
		ImgURL:      r.ImgURL,
	}
}

// PricePerNight accepts a JSON number or a numeric string, e.g. 120.5 or "120.50".
type CreateRoomRequest struct {
	RoomNumber    string      `json:"room_number" binding:"required,max=50"`
	RoomType      *int        `json:"room_type" binding:"required"`
	PricePerNight json.Number `json:"price_per_night" binding:"required"`
	ImgURL        *string     `json:"img_url" binding:"omitempty,max=500"`
}

func (r CreateRoomRequest) ToInput(hotelID uuid.UUID) (commands.CreateRoomInput, error) {
	price, err := hotel.ParseMoney(r.PricePerNight.String())
	if err != nil {
		return commands.CreateRoomInput{}, errs.Mark(err, errs.ErrValidation)
	}
	return commands.CreateRoomInput{
		HotelID:       hotelID,
		RoomNumber:    r.RoomNumber,
		RoomType:      *r.RoomType,
		PricePerNight: price,
		ImgURL:        r.ImgURL,
	}, nil
}
