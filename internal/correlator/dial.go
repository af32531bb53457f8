package correlator

import (
	"context"

	"github.com/webitel/cel-engine/internal/celtype"
	"github.com/webitel/cel-engine/internal/domain/model"
)

// OnDial implements the §4.5 dial correlator. A non-empty Forward produces
// an immediate FORWARD event; a non-empty DialStatus is deferred into the
// dial-status store, to be consumed later by the hangup rule in
// Correlators.stateChange.
func (c *Correlators) OnDial(ctx context.Context, env *model.DialEnvelope) {
	if env.Caller == nil || env.Caller.IsInternal() || env.Caller.UniqueID == "" {
		return
	}

	if env.Forward != "" {
		c.Filter.Report(ctx, celtype.Forward, env.Caller, "", map[string]any{
			"forward": env.Forward,
		})
	}

	if env.DialStatus != "" {
		c.DialStatus.Put(env.Caller.UniqueID, env)
	}
}
