package correlator

import (
	"context"

	"github.com/webitel/cel-engine/internal/celtype"
	"github.com/webitel/cel-engine/internal/domain/model"
)

// OnBlindTransfer implements the §4.4 blind-transfer correlator. Anything
// but a successful result is dropped.
func (c *Correlators) OnBlindTransfer(ctx context.Context, env *model.BlindTransferEnvelope) {
	if env.Result != model.BlindTransferSuccess {
		return
	}
	if env.Exten == "" || env.Context == "" {
		return
	}

	c.Filter.Report(ctx, celtype.BlindTransfer, env.Transferer, "", map[string]any{
		"extension": env.Exten,
		"context":   env.Context,
		"bridge_id": env.BridgeID,
	})
}

// OnAttendedTransfer implements the §4.4 attended-transfer correlator.
//
// The upstream envelope may deliver ToTransferee with a nil bridge (the
// transferee leg was not bridged); in that case the transferee/target
// pairs are swapped so that the "primary" pair (bridge1, channel1) is
// always the one that was actually bridged. dest_type == FAIL is dropped
// outright, before normalization even matters.
func (c *Correlators) OnAttendedTransfer(ctx context.Context, env *model.AttendedTransferEnvelope) {
	if env.DestType == model.AttendedTransferFail {
		return
	}

	primary, secondary := env.ToTransferee, env.ToTransferTarget
	if primary.Bridge == nil {
		primary, secondary = secondary, primary
	}

	bridge1ID := ""
	if primary.Bridge != nil {
		bridge1ID = primary.Bridge.UniqueID
	}

	var extra map[string]any
	switch env.DestType {
	case model.AttendedTransferBridgeMerge, model.AttendedTransferLink, model.AttendedTransferThreeway:
		bridge2ID := ""
		if secondary.Bridge != nil {
			bridge2ID = secondary.Bridge.UniqueID
		}
		extra = map[string]any{
			"bridge1_id":    bridge1ID,
			"channel2_name": channelName(secondary.Channel),
			"bridge2_id":    bridge2ID,
		}
	case model.AttendedTransferApp:
		extra = map[string]any{
			"bridge1_id":    bridge1ID,
			"channel2_name": channelName(secondary.Channel),
			"app":           env.App,
		}
	default:
		return
	}

	c.Filter.Report(ctx, celtype.AttendedTransfer, primary.Channel, "", extra)
}

func channelName(s *model.ChannelSnapshot) string {
	if s == nil {
		return ""
	}
	return s.Name
}
