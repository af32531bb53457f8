package dialstatus

import "go.uber.org/fx"

// Module provides the shared Store the dial correlator writes to and the
// channel correlator's hangup handling reads from (§4.10).
var Module = fx.Module("dialstatus",
	fx.Provide(New),
)
