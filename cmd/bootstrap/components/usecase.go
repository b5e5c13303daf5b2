package components

import (
	"hotel-platform/internal/pkg/clock"
	"hotel-platform/internal/pkg/password"
	"hotel-platform/internal/usecase/commands"
	"hotel-platform/internal/usecase/queries"

	"go.uber.org/fx"
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		password.NewDefaultHasher,
		fx.As(new(commands.PasswordHasher)),
	),
)

var IdentityUseCaseModule = fx.Module("usecase/identity",
	usecaseBaseOption,
	fx.Provide(
		commands.NewAuthCommands,
		queries.NewUserQueries,
	),
)

var BookingUseCaseModule = fx.Module("usecase/booking",
	usecaseBaseOption,
	fx.Provide(
		commands.NewCatalogCommands,
		commands.NewReservationCommands,
		queries.NewHotelQueries,
		queries.NewReservationQueries,
	),
)

var LoggingUseCaseModule = fx.Module("usecase/logging",
	fx.Provide(
		clock.NewRealClock,
		commands.NewLogIngest,
		queries.NewLogQueries,
	),
)
