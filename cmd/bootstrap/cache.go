package bootstrap

import (
	"context"

	"unistay/internal/infra/cache"
	"unistay/internal/pkg/config"
	"unistay/internal/usecase/commands"
	"unistay/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			NewAvailabilityCache,
			fx.As(new(queries.AvailabilityCache)),
			fx.As(new(commands.CacheInvalidator)),
		),
	),
)

func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config) *cache.AvailabilityCache {
	c := cache.NewAvailabilityCache(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return c
}
