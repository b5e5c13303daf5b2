//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-platform/internal/domain/hotel"
	"hotel-platform/internal/infra"
	"hotel-platform/internal/pkg/clock"
	"hotel-platform/internal/pkg/errs"
	"hotel-platform/internal/usecase/commands"
	"hotel-platform/internal/usecase/shared"
	sharedmock "hotel-platform/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCatalogFixture(t *testing.T) (commands.CatalogCommands, *sharedmock.MockHotelRepository, *sharedmock.MockRoomRepository) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	hotels := sharedmock.NewMockHotelRepository(ctrl)
	rooms := sharedmock.NewMockRoomRepository(ctrl)

	tx.EXPECT().Hotels().Return(hotels).AnyTimes()
	tx.EXPECT().Rooms().Return(rooms).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()

	return commands.NewCatalogCommands(uow, clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))), hotels, rooms
}

func TestCreateHotel(t *testing.T) {
	cmds, hotels, _ := newCatalogFixture(t)
	hotels.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	view, err := cmds.CreateHotel(context.Background(), commands.CreateHotelInput{
		Name: "Sea View", Location: "Porto", Description: "By the river",
	})

	require.NoError(t, err)
	assert.Equal(t, "Sea View", view.Name)
	assert.NotEqual(t, uuid.Nil, view.ID)
}

func TestCreateHotel_Validation(t *testing.T) {
	cmds, _, _ := newCatalogFixture(t)

	_, err := cmds.CreateHotel(context.Background(), commands.CreateHotelInput{Location: "Porto", Description: "x"})

	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestCreateRoom(t *testing.T) {
	hotelID := uuid.New()
	in := commands.CreateRoomInput{HotelID: hotelID, RoomNumber: "101", RoomType: 2, PricePerNight: hotel.NewMoney(12050)}

	t.Run("success", func(t *testing.T) {
		cmds, hotels, rooms := newCatalogFixture(t)
		hotels.EXPECT().Exists(gomock.Any(), gomock.Any(), hotelID).Return(true, nil)
		rooms.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		view, err := cmds.CreateRoom(context.Background(), in)

		require.NoError(t, err)
		assert.Equal(t, "120.50", view.PricePerNight)
		assert.Equal(t, hotelID, view.HotelID)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		cmds, hotels, _ := newCatalogFixture(t)
		hotels.EXPECT().Exists(gomock.Any(), gomock.Any(), hotelID).Return(false, nil)

		_, err := cmds.CreateRoom(context.Background(), in)

		assert.ErrorIs(t, err, commands.ErrHotelNotFound)
	})

	t.Run("duplicate room number", func(t *testing.T) {
		cmds, hotels, rooms := newCatalogFixture(t)
		hotels.EXPECT().Exists(gomock.Any(), gomock.Any(), hotelID).Return(true, nil)
		rooms.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert", &pgconn.PgError{Code: "23505"}))

		_, err := cmds.CreateRoom(context.Background(), in)

		assert.ErrorIs(t, err, commands.ErrRoomNumberTaken)
	})

	t.Run("non-positive price", func(t *testing.T) {
		cmds, _, _ := newCatalogFixture(t)
		bad := in
		bad.PricePerNight = hotel.NewMoney(0)

		_, err := cmds.CreateRoom(context.Background(), bad)

		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}
