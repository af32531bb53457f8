package httpapi

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/webitel/cel-engine/config"
	"github.com/webitel/cel-engine/internal/registry"
)

// Addr is the ops server's listen address, e.g. ":9090". Empty disables it.
type Addr string

var Module = fx.Module("httpapi",
	fx.Provide(
		func(addr Addr, holder *config.Holder, watcher *config.Watcher, backends *registry.Registry, logger *slog.Logger) *Server {
			return NewServer(string(addr), holder, watcher, backends, logger)
		},
	),

	fx.Invoke(func(lc fx.Lifecycle, addr Addr, s *Server, logger *slog.Logger) {
		if addr == "" {
			return
		}
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := s.Start(); err != nil {
						logger.Error("httpapi: server error", "err", err)
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				return s.Shutdown(ctx)
			},
		})
	}),
)
