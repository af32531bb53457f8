package correlator

import (
	"context"

	"github.com/webitel/cel-engine/internal/celtype"
	"github.com/webitel/cel-engine/internal/domain/model"
)

// OnSnapshotUpdate is the §4.2 channel-snapshot diff correlator. It
// consumes a (old, new) snapshot pair and applies three ordered
// sub-handlers; the ordering is load-bearing (see doc comments below and
// spec.md §4.2's rationale paragraph).
func (c *Correlators) OnSnapshotUpdate(ctx context.Context, old, newSnap *model.ChannelSnapshot) {
	if old.IsInternal() || newSnap.IsInternal() {
		return
	}

	c.applChange(ctx, old, newSnap)
	c.stateChange(ctx, old, newSnap)
	c.linkedIDChange(ctx, old, newSnap)
}

// applChange emits APP_END for the outgoing application and/or APP_START
// for the incoming one. It must run before stateChange so that a final
// APP_END is logged before HANGUP.
func (c *Correlators) applChange(ctx context.Context, old, newSnap *model.ChannelSnapshot) {
	if old != nil && newSnap != nil && old.Appl == newSnap.Appl {
		return
	}
	if old != nil && old.Appl != "" {
		c.Filter.Report(ctx, celtype.AppEnd, old, "", nil)
	}
	if newSnap != nil && newSnap.Appl != "" {
		c.Filter.Report(ctx, celtype.AppStart, newSnap, "", nil)
	}
}

// stateChange handles channel birth, death, hangup, and answer.
func (c *Correlators) stateChange(ctx context.Context, old, newSnap *model.ChannelSnapshot) {
	switch {
	case old == nil && newSnap != nil:
		c.Filter.Report(ctx, celtype.ChannelStart, newSnap, "", nil)

	case newSnap == nil && old != nil:
		c.Filter.Report(ctx, celtype.ChannelEnd, old, "", nil)
		c.Filter.RetireLinkedID(ctx, old)

	case old != nil && newSnap != nil:
		if !old.Dead && newSnap.Dead {
			dialStatus := ""
			if env, ok := c.DialStatus.FindAndRemove(newSnap.UniqueID); ok {
				dialStatus = env.DialStatus
			}
			c.Filter.Report(ctx, celtype.Hangup, newSnap, "", map[string]any{
				"hangupcause":  newSnap.HangupCause,
				"hangupsource": newSnap.HangupSource,
				"dialstatus":   dialStatus,
			})
		} else if old.State != newSnap.State && newSnap.State == model.StateUp {
			c.Filter.Report(ctx, celtype.Answer, newSnap, "", nil)
		}
	}
}

// linkedIDChange runs last so CHANNEL_END is emitted while the old
// linkedid still holds a reference: acquiring the new linkedid and only
// then retiring the old one guarantees the retirement check never observes
// a reference count that already dropped to zero through some other path.
func (c *Correlators) linkedIDChange(ctx context.Context, old, newSnap *model.ChannelSnapshot) {
	if old == nil || newSnap == nil {
		return
	}
	if old.LinkedID == "" || newSnap.LinkedID == "" {
		return
	}
	if old.LinkedID == newSnap.LinkedID {
		return
	}

	if c.Filter.LinkedIDEndTracked() {
		c.LinkedID.Acquire(newSnap.LinkedID)
	}
	c.Filter.RetireLinkedID(ctx, old)
}
