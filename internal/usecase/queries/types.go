package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type HotelView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	ImgURL      *string   `json:"img_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoomView struct {
	ID         uuid.UUID `json:"id"`
	HotelID    uuid.UUID `json:"hotel_id"`
	RoomNumber string    `json:"room_number"`
	RoomType   int       `json:"room_type"`
	// Decimal string with two places, e.g. "120.00"
	PricePerNight string  `json:"price_per_night"`
	ImgURL        *string `json:"img_url,omitempty"`
}

type ReservationView struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	UserID    uuid.UUID `json:"user_id"`
	CheckIn   time.Time `json:"check_in_date"`
	CheckOut  time.Time `json:"check_out_date"`
	CreatedAt time.Time `json:"created_at"`
	Room      RoomView  `json:"room"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type LogView struct {
	ID          uuid.UUID `json:"id"`
	Level       int       `json:"level"`
	Message     string    `json:"message"`
	ServiceName string    `json:"service_name"`
	Timestamp   time.Time `json:"timestamp"`
}

type LogFilter struct {
	Level       *int
	ServiceName *string
	Limit       int
}

type LogPage struct {
	Logs  []*LogView `json:"logs"`
	Total int        `json:"total"`
}
