package components

import (
	"hotel-platform/internal/infra/db"
	"hotel-platform/internal/infra/readstore"
	"hotel-platform/internal/infra/uow"
	"hotel-platform/internal/usecase/queries"
	"hotel-platform/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		readstore.NewUserReadStore,
		func(s *readstore.UserReadStore) queries.UserReadStore { return s },
		func(s *readstore.UserReadStore) shared.CredentialsReader { return s },
		// Hotel
		fx.Annotate(
			readstore.NewHotelReadStore,
			fx.As(new(queries.HotelReadStore)),
		),
		// Reservation
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

// Read stores run on the pool directly; writes go through the unit of work.
func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
