package queries

import (
	"context"

	"hotel-platform/internal/infra"
	"hotel-platform/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=hotel.go -destination=../../../tests/mock/queries/hotel.go -package=queriesmock

var (
	ErrHotelNotFound = errs.New("hotel not found")
	ErrRoomNotFound  = errs.New("room not found")
)

type HotelQueries interface {
	ListHotels(ctx context.Context) ([]*HotelView, error)
	ListRooms(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
	GetRoom(ctx context.Context, roomID uuid.UUID) (*RoomView, error)
}

type HotelReadStore interface {
	ListHotels(ctx context.Context) ([]*HotelView, error)
	HotelExists(ctx context.Context, hotelID uuid.UUID) (bool, error)
	ListRoomsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error)
	FindRoomByID(ctx context.Context, roomID uuid.UUID) (*RoomView, error)
}

type hotelQueriesImpl struct {
	readStore HotelReadStore
}

func NewHotelQueries(readStore HotelReadStore) HotelQueries {
	return &hotelQueriesImpl{readStore: readStore}
}

func (q *hotelQueriesImpl) ListHotels(ctx context.Context) ([]*HotelView, error) {
	hotels, err := q.readStore.ListHotels(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return hotels, nil
}

func (q *hotelQueriesImpl) ListRooms(ctx context.Context, hotelID uuid.UUID) ([]*RoomView, error) {
	exists, err := q.readStore.HotelExists(ctx, hotelID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !exists {
		return nil, ErrHotelNotFound
	}

	rooms, err := q.readStore.ListRoomsByHotel(ctx, hotelID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rooms, nil
}

func (q *hotelQueriesImpl) GetRoom(ctx context.Context, roomID uuid.UUID) (*RoomView, error) {
	room, err := q.readStore.FindRoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return room, nil
}
