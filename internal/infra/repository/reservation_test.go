//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"hotel-platform/internal/domain/reservation"
	"hotel-platform/internal/infra"
	"hotel-platform/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, in, out string) reservation.Stay {
	t.Helper()
	s, err := reservation.ParseStay(in, out)
	require.NoError(t, err)
	return s
}

func TestReservationRepository_Overlaps(t *testing.T) {
	roomID := uuid.New()
	stay := mustStay(t, "2025-07-01", "2025-07-04")
	exclude := uuid.New()

	tests := []struct {
		name    string
		exclude *uuid.UUID
		row     dbtest.FakeRow
		want    bool
		wantErr bool
	}{
		{name: "overlap found", row: dbtest.FakeRow{Values: []any{true}}, want: true},
		{name: "free", row: dbtest.FakeRow{Values: []any{false}}, want: false},
		{name: "free excluding self", exclude: &exclude, row: dbtest.FakeRow{Values: []any{false}}, want: false},
		{name: "query failure", row: dbtest.FakeRow{Err: assert.AnError}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(dbtest.MockDBTX)
			mockDB.On("QueryRow", mock.Anything, overlapsSQL,
				[]any{roomID, stay.CheckIn(), stay.CheckOut(), tt.exclude}).Return(tt.row)

			got, err := NewReservationRepository().Overlaps(context.Background(), mockDB, roomID, stay, tt.exclude)

			if tt.wantErr {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			mockDB.AssertExpectations(t)
		})
	}
}

func TestReservationRepository_Create(t *testing.T) {
	stay := mustStay(t, "2025-07-01", "2025-07-02")
	res := reservation.NewReservation(uuid.New(), uuid.New(), stay, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	t.Run("success", func(t *testing.T) {
		mockDB := new(dbtest.MockDBTX)
		mockDB.On("Exec", mock.Anything, createReservationSQL,
			[]any{res.ID(), res.RoomID(), res.UserID(), stay.CheckIn(), stay.CheckOut(), res.CreatedAt()}).
			Return(pgconn.NewCommandTag("INSERT 0 1"), nil)

		require.NoError(t, NewReservationRepository().Create(context.Background(), mockDB, res))
		mockDB.AssertExpectations(t)
	})

	t.Run("exclusion constraint", func(t *testing.T) {
		mockDB := new(dbtest.MockDBTX)
		mockDB.On("Exec", mock.Anything, createReservationSQL, mock.Anything).
			Return(pgconn.CommandTag{}, &pgconn.PgError{Code: "23P01"})

		err := NewReservationRepository().Create(context.Background(), mockDB, res)

		assert.True(t, infra.IsKind(err, infra.KindExclusionViolated))
	})
}

func TestReservationRepository_FindForUpdate(t *testing.T) {
	id, roomID, userID := uuid.New(), uuid.New(), uuid.New()
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mockDB := new(dbtest.MockDBTX)
		mockDB.On("QueryRow", mock.Anything, findReservationForUpdateSQL, []any{id}).
			Return(dbtest.FakeRow{Values: []any{id, roomID, userID,
				time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC), created}})

		res, err := NewReservationRepository().FindForUpdate(context.Background(), mockDB, id)

		require.NoError(t, err)
		assert.Equal(t, id, res.ID())
		assert.True(t, res.IsOwnedBy(userID))
		assert.Equal(t, 2, res.Stay().Nights())
	})

	t.Run("not found", func(t *testing.T) {
		mockDB := new(dbtest.MockDBTX)
		mockDB.On("QueryRow", mock.Anything, findReservationForUpdateSQL, []any{id}).
			Return(dbtest.FakeRow{Err: pgx.ErrNoRows})

		_, err := NewReservationRepository().FindForUpdate(context.Background(), mockDB, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationRepository_Delete(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		tag      pgconn.CommandTag
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "deleted", tag: pgconn.NewCommandTag("DELETE 1")},
		{name: "already gone", tag: pgconn.NewCommandTag("DELETE 0"), wantKind: infra.KindNotFound},
		{name: "lock timeout", err: &pgconn.PgError{Code: "55P03"}, wantKind: infra.KindLockTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(dbtest.MockDBTX)
			mockDB.On("Exec", mock.Anything, deleteReservationSQL, []any{id}).Return(tt.tag, tt.err)

			err := NewReservationRepository().Delete(context.Background(), mockDB, id)

			if tt.wantKind == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, infra.IsKind(err, tt.wantKind))
		})
	}
}

func TestRoomRepository_LockForUpdate(t *testing.T) {
	roomID := uuid.New()
	hotelID := uuid.New()

	t.Run("locked", func(t *testing.T) {
		mockDB := new(dbtest.MockDBTX)
		mockDB.On("QueryRow", mock.Anything, lockRoomSQL, []any{roomID}).
			Return(dbtest.FakeRow{Values: []any{roomID, hotelID, "101", 2, int64(8990), nil}})

		room, err := NewRoomRepository().LockForUpdate(context.Background(), mockDB, roomID)

		require.NoError(t, err)
		assert.Equal(t, roomID, room.ID())
		assert.Equal(t, hotelID, room.HotelID())
		assert.Equal(t, "101", room.RoomNumber())
		assert.Equal(t, "89.90", room.PricePerNight().String())
		assert.Nil(t, room.ImgURL())
	})

	t.Run("missing room", func(t *testing.T) {
		mockDB := new(dbtest.MockDBTX)
		mockDB.On("QueryRow", mock.Anything, lockRoomSQL, []any{roomID}).Return(dbtest.FakeRow{Err: pgx.ErrNoRows})

		room, err := NewRoomRepository().LockForUpdate(context.Background(), mockDB, roomID)

		assert.Nil(t, room)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
