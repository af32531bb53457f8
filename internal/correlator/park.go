package correlator

import (
	"context"

	"github.com/webitel/cel-engine/internal/celtype"
	"github.com/webitel/cel-engine/internal/domain/model"
)

// OnParkedCall implements the §4.6 parking correlator: a single dispatch
// per message, keyed on the envelope's event subtype.
func (c *Correlators) OnParkedCall(ctx context.Context, env *model.ParkEnvelope) {
	if env.Event == model.ParkedCall {
		c.Filter.Report(ctx, celtype.ParkStart, env.Parkee, "", map[string]any{
			"parker_dial_string": env.ParkerDialString,
			"parking_lot":        env.ParkingLot,
		})
		return
	}

	c.Filter.Report(ctx, celtype.ParkEnd, env.Parkee, "", map[string]any{
		"reason": env.Event.Reason(),
	})
}
