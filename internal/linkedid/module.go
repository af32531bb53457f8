package linkedid

import "go.uber.org/fx"

// Module provides the shared Tracker the filter and the channel correlator
// both use to decide when a LINKEDID_END fires (§4.9).
var Module = fx.Module("linkedid",
	fx.Provide(New),
)
