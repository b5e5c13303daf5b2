package request

import (
	"time"

	"hotel-platform/internal/domain/reservation"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidDate = errs.Mark(errs.New("dates must use the YYYY-MM-DD format"), errs.ErrValidation)

// Dates are calendar days; the range is [check_in_date, check_out_date).
type CreateBookingRequest struct {
	RoomID       uuid.UUID `json:"room_id" binding:"required"`
	CheckInDate  string    `json:"check_in_date" binding:"required"`
	CheckOutDate string    `json:"check_out_date" binding:"required"`
}

func (r CreateBookingRequest) ToInput(userID uuid.UUID) (commands.ReserveInput, error) {
	in, err := time.Parse(reservation.DateLayout, r.CheckInDate)
	if err != nil {
		return commands.ReserveInput{}, ErrInvalidDate
	}
	out, err := time.Parse(reservation.DateLayout, r.CheckOutDate)
	if err != nil {
		return commands.ReserveInput{}, ErrInvalidDate
	}
	return commands.ReserveInput{
		RoomID:   r.RoomID,
		UserID:   userID,
		CheckIn:  in,
		CheckOut: out,
	}, nil
}
