//go:build unit || e2e || integration

package builder

import (
	"time"

	"hotel-platform/internal/domain/reservation"
	"hotel-platform/internal/handler/dto/request"
	"hotel-platform/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	RoomID   uuid.UUID
	HotelID  uuid.UUID
	UserID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
	Price    string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RoomID:   uuid.New(),
		HotelID:  uuid.New(),
		UserID:   uuid.New(),
		CheckIn:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC),
		Price:    "120.00",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithRoomID(id uuid.UUID) *BookingBuilder {
	b.RoomID = id
	return b
}

func (b *BookingBuilder) WithUserID(id uuid.UUID) *BookingBuilder {
	b.UserID = id
	return b
}

func (b *BookingBuilder) WithDates(checkIn, checkOut string) *BookingBuilder {
	b.CheckIn, _ = time.Parse(reservation.DateLayout, checkIn)
	b.CheckOut, _ = time.Parse(reservation.DateLayout, checkOut)
	return b
}

func (b *BookingBuilder) BuildRequestDTO() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		RoomID:       b.RoomID,
		CheckInDate:  b.CheckIn.Format(reservation.DateLayout),
		CheckOutDate: b.CheckOut.Format(reservation.DateLayout),
	}
}

func (b *BookingBuilder) BuildRoomView() queries.RoomView {
	return queries.RoomView{
		ID:            b.RoomID,
		HotelID:       b.HotelID,
		RoomNumber:    "101",
		RoomType:      1,
		PricePerNight: b.Price,
	}
}

func (b *BookingBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:        uuid.New(),
		RoomID:    b.RoomID,
		UserID:    b.UserID,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Room:      b.BuildRoomView(),
	}
}
