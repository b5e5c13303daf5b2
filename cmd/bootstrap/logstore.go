package bootstrap

import (
	"context"

	"hotel-platform/internal/infra/logstore"
	"hotel-platform/internal/pkg/config"
	"hotel-platform/internal/usecase/commands"
	"hotel-platform/internal/usecase/queries"

	"go.uber.org/fx"
)

// LogStore is both ends of log persistence: the consumer writes, the query API reads.
type LogStore interface {
	commands.LogEventStore
	queries.LogReadStore
}

var LogStoreModule = fx.Module("logstore",
	fx.Provide(
		NewLogStore,
		func(s LogStore) commands.LogEventStore { return s },
		func(s LogStore) queries.LogReadStore { return s },
	),
)

// NewLogStore picks the backend from LOG_STORE. The PostgreSQL pool is opened
// here rather than injected so a Mongo-backed logging service never needs one.
func NewLogStore(lc fx.Lifecycle, cfg config.Config) (LogStore, error) {
	if err := cfg.LogStore.Validate(); err != nil {
		return nil, err
	}

	if cfg.LogStore.Driver == config.LogStoreMongo {
		store, cleanup, err := logstore.ConnectMongo(context.Background(), cfg.LogStore)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		return store, nil
	}

	pool, err := NewDB(lc, cfg)
	if err != nil {
		return nil, err
	}
	return logstore.NewPostgresStore(pool), nil
}
