package correlator

import (
	"context"

	"github.com/webitel/cel-engine/internal/celtype"
	"github.com/webitel/cel-engine/internal/domain/model"
)

// OnEnteredBridge implements the §4.3 bridge-enter half of the correlator.
func (c *Correlators) OnEnteredBridge(ctx context.Context, bridge *model.BridgeSnapshot, channel *model.ChannelSnapshot) {
	if channel.IsInternal() {
		return
	}
	c.Filter.Report(ctx, celtype.BridgeEnter, channel, "", map[string]any{
		"bridge_id": bridge.UniqueID,
	})
}

// OnLeftBridge implements the §4.3 bridge-exit half of the correlator,
// symmetric to OnEnteredBridge.
func (c *Correlators) OnLeftBridge(ctx context.Context, bridge *model.BridgeSnapshot, channel *model.ChannelSnapshot) {
	if channel.IsInternal() {
		return
	}
	c.Filter.Report(ctx, celtype.BridgeExit, channel, "", map[string]any{
		"bridge_id": bridge.UniqueID,
	})
}
