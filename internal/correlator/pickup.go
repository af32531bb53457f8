package correlator

import (
	"context"

	"github.com/webitel/cel-engine/internal/celtype"
	"github.com/webitel/cel-engine/internal/domain/model"
)

// OnPickup implements the §4.7 pickup correlator.
func (c *Correlators) OnPickup(ctx context.Context, env *model.PickupEnvelope) {
	c.Filter.Report(ctx, celtype.Pickup, env.Target, "", map[string]any{
		"pickup_channel": channelName(env.Channel),
	})
}

// OnLocalOptimize implements the §4.7 local-channel-optimization
// correlator. Per spec.md §9's open question, only channel 2's name is
// carried in extra; channel 1 is already the attributed channel.
func (c *Correlators) OnLocalOptimize(ctx context.Context, env *model.LocalOptimizeEnvelope) {
	c.Filter.Report(ctx, celtype.LocalOptimize, env.One, "", map[string]any{
		"local_two": channelName(env.Two),
	})
}
