package correlator

import "go.uber.org/fx"

// Module provides the Correlators bundle the router dispatches every
// decoded upstream message to.
var Module = fx.Module("correlator",
	fx.Provide(New),
)
