package correlator

import (
	"context"

	"github.com/webitel/cel-engine/internal/celtype"
	"github.com/webitel/cel-engine/internal/domain/model"
)

// OnUserEvent implements the §4.8 generic user-event correlator. Only
// USER_DEFINED envelopes produce a CEL event; anything else is logged and
// dropped (§7: "Unhandled generic event subtype: log and drop").
func (c *Correlators) OnUserEvent(ctx context.Context, env *model.UserEventEnvelope) {
	if !env.IsUserDefined() {
		c.Logger.Error("correlator: unhandled generic event subtype", "event_type", env.EventType)
		return
	}

	c.Filter.Report(ctx, celtype.UserDefined, env.Channel, env.EventName, env.Extra)
}
