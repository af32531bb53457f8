package config

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
)

// Path is the resolved location of cel.conf, provided by the CLI layer.
type Path string

// Module wires the live Holder and its Watcher into the application. The
// Holder is what every other package depends on; the Watcher is only
// invoked so its Start hook runs.
var Module = fx.Module("config",
	fx.Provide(
		func(path Path, logger *slog.Logger) (*Watcher, error) {
			holder := NewHolder(NewDefault())
			return NewWatcher(string(path), holder, logger)
		},
		func(w *Watcher) *Holder { return w.holder },
	),

	fx.Invoke(func(lc fx.Lifecycle, w *Watcher) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				w.Start()
				return nil
			},
		})
	}),
)
