package bus

import (
	"github.com/ThreeDotsLabs/watermill"
	"go.uber.org/fx"
)

// Module provides the default in-process Provider. Production deployments
// that want a real broker override this with internal/bus/factory instead.
var Module = fx.Module("bus",
	fx.Provide(
		func(logger watermill.LoggerAdapter) Provider {
			return NewInProcess(logger)
		},
	),
)
