package bootstrap

import (
	"log/slog"

	"hotel-platform/internal/handler/middleware"
	"hotel-platform/internal/pkg/config"
	"hotel-platform/internal/pkg/logship"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		func(l *middleware.Logger) *slog.Logger { return l.GetSlogLogger() },
	),
	// Install the default logger before anything else logs.
	fx.Invoke(func(*slog.Logger) {}),
)

type LoggerParams struct {
	fx.In

	Config  config.Config
	Shipper *logship.Shipper `optional:"true"`
}

// NewLogger builds the console logger and, when a shipper is present, tees
// every record into the log queue. The result becomes the slog default.
func NewLogger(p LoggerParams) *middleware.Logger {
	logger := middleware.NewLogger(p.Config.Log)
	if p.Shipper != nil {
		logger.Wrap(func(inner slog.Handler) slog.Handler {
			return logship.NewHandler(inner, p.Shipper, p.Config.Service.Name)
		})
	}
	slog.SetDefault(logger.GetSlogLogger())
	return logger
}
