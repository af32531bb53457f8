package cmd

import (
	"go.uber.org/fx"

	"github.com/webitel/cel-engine/config"
	"github.com/webitel/cel-engine/internal/bus"
	"github.com/webitel/cel-engine/internal/correlator"
	"github.com/webitel/cel-engine/internal/dialstatus"
	"github.com/webitel/cel-engine/internal/domain/event"
	"github.com/webitel/cel-engine/internal/filter"
	"github.com/webitel/cel-engine/internal/httpapi"
	"github.com/webitel/cel-engine/internal/linkedid"
	"github.com/webitel/cel-engine/internal/registry"
	"github.com/webitel/cel-engine/internal/router"
)

// NewApp wires the whole engine: config loading and hot-reload, the
// linkedid tracker and dial-status store, the filter and correlators, the
// backend registry, the aggregation router, and the ops HTTP server.
func NewApp(configPath string, httpAddr string) *fx.App {
	return fx.New(
		fx.Provide(
			func() config.Path { return config.Path(configPath) },
			func() httpapi.Addr { return httpapi.Addr(httpAddr) },
			ProvideLogger,
			ProvideWatermillLogger,
		),

		config.Module,
		linkedid.Module,
		dialstatus.Module,
		event.Module,
		registry.Module,
		filter.Module,
		correlator.Module,
		bus.Module,
		router.Module,
		httpapi.Module,
	)
}
