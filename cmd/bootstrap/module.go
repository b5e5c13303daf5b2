package bootstrap

import (
	"hotel-platform/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// The service modules leave out configuration and the HTTP listener so tests
// can supply their own config and drive the engine in-process.

var IdentityModule = fx.Options(
	QueueModule,
	LogShipModule,
	LoggerModule,
	DBModule,
	JWTModule,
	fx.Provide(NewEngine),
	components.PersistenceModule,
	components.IdentityUseCaseModule,
	components.IdentityHandlerModule,
)

var BookingModule = fx.Options(
	QueueModule,
	LogShipModule,
	LoggerModule,
	DBModule,
	JWTModule,
	fx.Provide(NewEngine),
	components.PersistenceModule,
	components.BookingUseCaseModule,
	components.BookingHandlerModule,
)

// LoggingModule never ships its own logs: it is the far end of the queue.
var LoggingModule = fx.Options(
	LoggerModule,
	LogStoreModule,
	ConsumerModule,
	fx.Provide(NewEngine),
	components.LoggingUseCaseModule,
	components.LoggingHandlerModule,
)
