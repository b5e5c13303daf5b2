package bootstrap

import (
	"context"
	"log/slog"

	"hotel-platform/internal/infra/queue"
	"hotel-platform/internal/pkg/config"
	"hotel-platform/internal/pkg/logship"
	"hotel-platform/internal/usecase/commands"

	"go.uber.org/fx"
)

// QueueModule is the producer side used by services that ship their logs.
var QueueModule = fx.Module("queue",
	fx.Provide(
		NewPublisher,
		func(p *queue.KafkaPublisher) logship.Publisher { return p },
	),
)

// ConsumerModule is the logging service's side of the queue.
var ConsumerModule = fx.Module("queue/consumer",
	fx.Provide(
		NewConsumer,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (*queue.KafkaPublisher, error) {
	if err := cfg.Queue.Validate(); err != nil {
		return nil, err
	}

	pub := queue.NewKafkaPublisher(cfg.Queue)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}

// NewConsumer runs the consumer supervisor for the lifetime of the app. The
// broker being down at startup is not fatal; the supervisor keeps reconnecting
// and the health endpoint reports the state.
func NewConsumer(lc fx.Lifecycle, cfg config.Config, ingest commands.LogIngest) (*queue.Consumer, error) {
	if err := cfg.Queue.Validate(); err != nil {
		return nil, err
	}

	consumer := queue.NewConsumer(cfg.Queue, ingest)
	runCtx, cancel := context.WithCancel(context.Background())
	supervisorDone := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(supervisorDone)
				consumer.Run(runCtx)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-supervisorDone:
			case <-ctx.Done():
				return ctx.Err()
			}
			if err := consumer.Stop(ctx); err != nil {
				slog.Warn("log consumer did not stop cleanly", "error", err.Error())
			}
			return nil
		},
	})
	return consumer, nil
}
