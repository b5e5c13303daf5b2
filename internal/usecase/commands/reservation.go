package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-platform/internal/domain/hotel"
	"hotel-platform/internal/domain/reservation"
	"hotel-platform/internal/infra"
	"hotel-platform/internal/pkg/clock"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/usecase/queries"
	"hotel-platform/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation.go -package=commandsmock

var (
	ErrRoomUnavailable     = errs.New("room is not available for the requested dates")
	ErrRoomNotFound        = errs.New("room not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrForbidden           = errs.New("reservation belongs to another user")
	ErrAdmissionBusy       = errs.New("room is busy, retry later")
)

type ReserveInput struct {
	RoomID   uuid.UUID
	UserID   uuid.UUID
	CheckIn  time.Time
	CheckOut time.Time
}

type ReservationCommands interface {
	Reserve(ctx context.Context, in ReserveInput) (*queries.ReservationView, error)
	Cancel(ctx context.Context, reservationID, requesterID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, clock clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// Reserve admits a stay for a room. The room row lock serializes concurrent
// requests for the same room; the overlap check runs after it is held.
func (r *reservationCommandsImpl) Reserve(ctx context.Context, in ReserveInput) (*queries.ReservationView, error) {
	stay, err := reservation.NewStay(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	res := reservation.NewReservation(in.RoomID, in.UserID, stay, r.clock.Now())

	var view *queries.ReservationView
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.Rooms().LockForUpdate(ctx, tx.DB(), in.RoomID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return mapAdmissionErr(err)
		}

		taken, err := tx.Reservations().Overlaps(ctx, tx.DB(), in.RoomID, stay, nil)
		if err != nil {
			return mapAdmissionErr(err)
		}
		if taken {
			return ErrRoomUnavailable
		}

		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return mapAdmissionErr(err)
		}
		view = newReservationView(res, room)
		return nil
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrRoomUnavailable):
			slog.Warn("reservation conflict",
				"room_id", in.RoomID.String(),
				"user_id", in.UserID.String(),
				"stay", stay.String())
		case errs.Is(err, ErrAdmissionBusy):
			slog.Warn("reservation lock wait exceeded",
				"room_id", in.RoomID.String(),
				"user_id", in.UserID.String())
		}
		return nil, err
	}

	slog.Info("reservation created",
		"reservation_id", res.ID().String(),
		"room_id", in.RoomID.String(),
		"user_id", in.UserID.String(),
		"stay", stay.String())
	return view, nil
}

// newReservationView is built inside the admission transaction from the
// inserted row and the locked room.
func newReservationView(res *reservation.Reservation, room *hotel.Room) *queries.ReservationView {
	stay := res.Stay()
	return &queries.ReservationView{
		ID:        res.ID(),
		RoomID:    res.RoomID(),
		UserID:    res.UserID(),
		CheckIn:   stay.CheckIn(),
		CheckOut:  stay.CheckOut(),
		CreatedAt: res.CreatedAt().UTC(),
		Room: queries.RoomView{
			ID:            room.ID(),
			HotelID:       room.HotelID(),
			RoomNumber:    room.RoomNumber(),
			RoomType:      room.RoomType(),
			PricePerNight: room.PricePerNight().String(),
			ImgURL:        room.ImgURL(),
		},
	}
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, reservationID, requesterID uuid.UUID) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return mapAdmissionErr(err)
		}

		if !res.IsOwnedBy(requesterID) {
			return ErrForbidden
		}

		if err := tx.Reservations().Delete(ctx, tx.DB(), reservationID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return mapAdmissionErr(err)
		}
		return nil
	})
	if err != nil {
		if errs.Is(err, ErrForbidden) {
			slog.Warn("forbidden reservation cancel attempt",
				"reservation_id", reservationID.String(),
				"requester_id", requesterID.String())
		}
		return err
	}

	slog.Info("reservation cancelled",
		"reservation_id", reservationID.String(),
		"user_id", requesterID.String())
	return nil
}

func mapAdmissionErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindExclusionViolated):
		return ErrRoomUnavailable
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrRoomNotFound
	case infra.IsKind(err, infra.KindLockTimeout):
		return errs.Mark(err, ErrAdmissionBusy)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
