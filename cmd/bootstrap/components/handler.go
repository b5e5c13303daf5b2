package components

import (
	"hotel-platform/internal/handler"
	"hotel-platform/internal/handler/api"
	"hotel-platform/internal/handler/middleware"
	"hotel-platform/internal/infra/queue"
	"hotel-platform/internal/pkg/config"

	"go.uber.org/fx"
)

var IdentityHandlerModule = fx.Module("handler/identity",
	fx.Provide(
		newHealthHandler,
		api.NewAuthHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewIdentityRouter),
)

var BookingHandlerModule = fx.Module("handler/booking",
	fx.Provide(
		newHealthHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewBookingRouter),
)

var LoggingHandlerModule = fx.Module("handler/logging",
	fx.Provide(
		newLoggingHealthHandler,
		api.NewLogHandler,
	),
	fx.Invoke(handler.NewLoggingRouter),
)

func newHealthHandler(cfg config.Config) *api.HealthHandler {
	return api.NewHealthHandler(cfg.Service.Name, nil)
}

func newLoggingHealthHandler(cfg config.Config, consumer *queue.Consumer) *api.HealthHandler {
	return api.NewHealthHandler(cfg.Service.Name, func() bool {
		return consumer.State() == queue.StateConsuming
	})
}
