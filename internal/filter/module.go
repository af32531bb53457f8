package filter

import "go.uber.org/fx"

// Module provides the Filter that implements the §4.11 enable/mask/app
// decision function shared by every correlator.
var Module = fx.Module("filter",
	fx.Provide(New),
)
