package commands

import (
	"context"
	"log/slog"

	"hotel-platform/internal/domain/hotel"
	"hotel-platform/internal/infra"
	"hotel-platform/internal/pkg/clock"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/usecase/queries"
	"hotel-platform/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog.go -package=commandsmock

var (
	ErrHotelNotFound   = errs.New("hotel not found")
	ErrRoomNumberTaken = errs.New("room number already exists in this hotel")
)

type CreateHotelInput struct {
	Name        string
	Location    string
	Description string
	ImgURL      *string
}

type CreateRoomInput struct {
	HotelID       uuid.UUID
	RoomNumber    string
	RoomType      int
	PricePerNight hotel.Money
	ImgURL        *string
}

type CatalogCommands interface {
	CreateHotel(ctx context.Context, in CreateHotelInput) (*queries.HotelView, error)
	CreateRoom(ctx context.Context, in CreateRoomInput) (*queries.RoomView, error)
}

type catalogCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogCommands(uow shared.UnitOfWork, clock clock.Clock) CatalogCommands {
	return &catalogCommandsImpl{uow: uow, clock: clock}
}

func (c *catalogCommandsImpl) CreateHotel(ctx context.Context, in CreateHotelInput) (*queries.HotelView, error) {
	h, err := hotel.NewHotel(in.Name, in.Location, in.Description, in.ImgURL, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Hotels().Create(ctx, tx.DB(), h)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("hotel created", "hotel_id", h.ID().String())

	return &queries.HotelView{
		ID:          h.ID(),
		Name:        h.Name(),
		Location:    h.Location(),
		Description: h.Description(),
		ImgURL:      h.ImgURL(),
		CreatedAt:   h.CreatedAt(),
	}, nil
}

func (c *catalogCommandsImpl) CreateRoom(ctx context.Context, in CreateRoomInput) (*queries.RoomView, error) {
	room, err := hotel.NewRoom(in.HotelID, in.RoomNumber, in.RoomType, in.PricePerNight, in.ImgURL)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Hotels().Exists(ctx, tx.DB(), in.HotelID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrHotelNotFound
		}
		return tx.Rooms().Create(ctx, tx.DB(), room)
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrHotelNotFound), infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, ErrHotelNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrRoomNumberTaken
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	slog.Info("room created", "room_id", room.ID().String(), "hotel_id", in.HotelID.String())

	return &queries.RoomView{
		ID:            room.ID(),
		HotelID:       room.HotelID(),
		RoomNumber:    room.RoomNumber(),
		RoomType:      room.RoomType(),
		PricePerNight: room.PricePerNight().String(),
		ImgURL:        room.ImgURL(),
	}, nil
}
