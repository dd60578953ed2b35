package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"unistay/cmd/bootstrap"
	"unistay/cmd/bootstrap/components"
	"unistay/internal/handler/middleware"
	"unistay/internal/infra/events"
	"unistay/internal/pkg/clock"
	"unistay/internal/pkg/config"
	"unistay/internal/worker"

	"go.uber.org/fx"
)

func runConsumer(lc fx.Lifecycle, shutdowner fx.Shutdowner, consumer *events.Consumer, notifier *worker.Notifier, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("starting booking events worker")
			go func() {
				err := consumer.Consume(ctx, notifier.Handle)
				if err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("consumer stopped", "error", err)
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping booking events worker")
			cancel()
			return consumer.Close()
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.DBModule,
		components.PersistenceModule,
		fx.Provide(
			func(cfg config.Config) *slog.Logger {
				logger := middleware.NewLogger(cfg.Log)
				return logger.GetSlogLogger()
			},
			clock.NewRealClock,
			func(cfg config.Config) *events.Consumer {
				return events.NewConsumer(cfg.Kafka)
			},
			worker.NewNotifier,
		),
		fx.Invoke(
			runConsumer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("worker failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("worker failed to stop cleanly", "error", err)
	}

	slog.Info("worker stopped")
}
