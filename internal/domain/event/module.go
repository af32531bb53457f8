package event

import "go.uber.org/fx"

// Module provides the record Builder used to turn a correlator's decision
// into a wire Record (§4.12).
var Module = fx.Module("event",
	fx.Provide(
		func() Clock { return RealClock{} },
		NewBuilder,
	),
)
