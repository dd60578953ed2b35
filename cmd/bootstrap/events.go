package bootstrap

import (
	"context"

	"unistay/internal/infra/events"
	"unistay/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		fx.Annotate(
			NewPublisher,
			fx.As(new(events.Publisher)),
		),
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) *events.Producer {
	p := events.NewProducer(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})

	return p
}
