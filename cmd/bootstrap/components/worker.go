package components

import (
	"context"
	"log/slog"

	"roomdesk/internal/pkg/clock"
	"roomdesk/internal/pkg/config"
	"roomdesk/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(startSweeper),
)

func NewSweeper(source worker.ReservationSource, clk clock.Clock, cfg config.Config, logger *slog.Logger) *worker.Sweeper {
	return worker.NewSweeper(source, clk, worker.SweeperConfig{
		Interval:    cfg.Sweeper.Interval,
		GracePeriod: cfg.Sweeper.GracePeriod,
	}, logger)
}

// The sweep loop lives and dies with the process, not with any request.
func startSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sweeper.Start(context.Background())
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
