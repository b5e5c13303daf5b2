package bootstrap

import (
	"hotel-platform/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

// WithServiceName fills Service.Name for the binary when SERVICE_NAME is unset.
func WithServiceName(name string) fx.Option {
	return fx.Decorate(func(cfg config.Config) config.Config {
		cfg.Service.Name = cfg.ServiceName(name)
		return cfg
	})
}
