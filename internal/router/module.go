package router

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
)

// Module wires the aggregation router into the application lifecycle: it
// starts Run in a background goroutine on OnStart and performs the
// unsubscribe-and-join teardown on OnStop (§4.1, §5).
var Module = fx.Module("router",
	fx.Provide(New),

	fx.Invoke(func(lc fx.Lifecycle, r *Router, logger *slog.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := r.Run(context.Background()); err != nil {
						logger.Error("router: run returned error", "err", err)
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return r.Term(ctx)
			},
		})
	}),
)
