package bootstrap

import (
	"context"
	"log/slog"

	"hotel-platform/internal/pkg/config"
	"hotel-platform/internal/pkg/logship"

	"go.uber.org/fx"
)

var LogShipModule = fx.Module("logship",
	fx.Provide(
		NewShipper,
	),
)

// NewShipper returns nil when shipping is disabled; the logger then stays
// console-only.
func NewShipper(lc fx.Lifecycle, cfg config.Config, pub logship.Publisher) *logship.Shipper {
	if !cfg.LogShip.Enabled {
		return nil
	}

	shipper := logship.NewShipper(pub, cfg.LogShip, cfg.Queue.WriteTimeout)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			shipper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			err := shipper.Stop(ctx)
			if err != nil || shipper.Dropped() > 0 {
				slog.Info("log shipper stopped",
					logship.ComponentKey, "queue",
					"delivered", shipper.Delivered(),
					"dropped", shipper.Dropped())
			}
			return nil
		},
	})
	return shipper
}
