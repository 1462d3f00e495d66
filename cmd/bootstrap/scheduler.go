package bootstrap

import (
	"context"
	"log/slog"

	"talent-services/internal/pkg/clock"
	"talent-services/internal/pkg/config"
	"talent-services/internal/scheduler"
	"talent-services/internal/usecase/shared"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewExpirySweeper,
	),
	fx.Invoke(startSweeper),
)

func NewExpirySweeper(cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) *scheduler.ExpirySweeper {
	return scheduler.NewExpirySweeper(uow, clk, cfg.Scheduler.LeaseDuration, logger)
}

func startSweeper(lc fx.Lifecycle, cfg config.Config, sweeper *scheduler.ExpirySweeper, logger *slog.Logger) {
	if !cfg.Scheduler.Enabled {
		logger.Info("expiry sweeper disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				sweeper.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
