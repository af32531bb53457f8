package registry

import "go.uber.org/fx"

// Module provides the shared backend Registry that the httpapi status
// endpoint and the CLI "status" subcommand both read from, and that the
// filter dispatches every built record to (§4.13).
var Module = fx.Module("registry",
	fx.Provide(New),
)
