package correlator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webitel/cel-engine/internal/domain/model"
)

func TestOnEnteredAndLeftBridge(t *testing.T) {
	h := newHarness(t)
	bridge := &model.BridgeSnapshot{UniqueID: "bridge-1"}
	channel := &model.ChannelSnapshot{UniqueID: "1", LinkedID: "l1"}

	h.Correlators.OnEnteredBridge(context.Background(), bridge, channel)
	h.Correlators.OnLeftBridge(context.Background(), bridge, channel)

	assert.Equal(t, []string{"BRIDGE_ENTER", "BRIDGE_EXIT"}, h.types())
	assert.Contains(t, h.Records[0].Extra, "bridge-1")
}

func TestOnEnteredBridgeDropsInternal(t *testing.T) {
	h := newHarness(t)
	bridge := &model.BridgeSnapshot{UniqueID: "bridge-1"}
	channel := &model.ChannelSnapshot{UniqueID: "1", TechProperties: model.TechInternal}

	h.Correlators.OnEnteredBridge(context.Background(), bridge, channel)

	assert.Empty(t, h.Records)
}

func TestOnBlindTransferRequiresSuccess(t *testing.T) {
	h := newHarness(t)
	env := &model.BlindTransferEnvelope{
		Result:     model.BlindTransferFail,
		Transferer: &model.ChannelSnapshot{UniqueID: "1"},
		Exten:      "100",
		Context:    "default",
	}
	h.Correlators.OnBlindTransfer(context.Background(), env)
	assert.Empty(t, h.Records)

	env.Result = model.BlindTransferSuccess
	h.Correlators.OnBlindTransfer(context.Background(), env)
	require.Len(t, h.Records, 1)
	assert.Equal(t, "BLINDTRANSFER", h.Records[0].EventType.String())
}

func TestOnBlindTransferRequiresExtenAndContext(t *testing.T) {
	h := newHarness(t)
	env := &model.BlindTransferEnvelope{
		Result:     model.BlindTransferSuccess,
		Transferer: &model.ChannelSnapshot{UniqueID: "1"},
	}
	h.Correlators.OnBlindTransfer(context.Background(), env)
	assert.Empty(t, h.Records)
}

func TestOnAttendedTransferFailDropped(t *testing.T) {
	h := newHarness(t)
	env := &model.AttendedTransferEnvelope{DestType: model.AttendedTransferFail}
	h.Correlators.OnAttendedTransfer(context.Background(), env)
	assert.Empty(t, h.Records)
}

func TestOnAttendedTransferNormalizesPrimaryBridge(t *testing.T) {
	h := newHarness(t)
	env := &model.AttendedTransferEnvelope{
		DestType: model.AttendedTransferLink,
		ToTransferee: model.TransferPair{
			Bridge:  nil,
			Channel: &model.ChannelSnapshot{UniqueID: "1", Name: "chan-1"},
		},
		ToTransferTarget: model.TransferPair{
			Bridge:  &model.BridgeSnapshot{UniqueID: "bridge-2"},
			Channel: &model.ChannelSnapshot{UniqueID: "2", Name: "chan-2"},
		},
	}

	h.Correlators.OnAttendedTransfer(context.Background(), env)

	require.Len(t, h.Records, 1)
	rec := h.Records[0]
	assert.Equal(t, "chan-2", rec.ChannelName, "primary swaps to whichever leg was actually bridged")
	assert.Contains(t, rec.Extra, "chan-1")
}

func TestOnDialEmitsForwardAndStoresDialStatus(t *testing.T) {
	h := newHarness(t)
	env := &model.DialEnvelope{
		Caller:     &model.ChannelSnapshot{UniqueID: "1", LinkedID: "l1"},
		Forward:    "PJSIP/bob",
		DialStatus: "BUSY",
	}

	h.Correlators.OnDial(context.Background(), env)

	require.Len(t, h.Records, 1)
	assert.Equal(t, "FORWARD", h.Records[0].EventType.String())
	assert.Equal(t, 1, h.Correlators.DialStatus.Len())
}

func TestOnDialDropsInternalOrEmptyCaller(t *testing.T) {
	h := newHarness(t)
	h.Correlators.OnDial(context.Background(), &model.DialEnvelope{Caller: nil})
	h.Correlators.OnDial(context.Background(), &model.DialEnvelope{Caller: &model.ChannelSnapshot{TechProperties: model.TechInternal}})
	h.Correlators.OnDial(context.Background(), &model.DialEnvelope{Caller: &model.ChannelSnapshot{}})
	assert.Empty(t, h.Records)
}

func TestOnParkedCallStartAndEnd(t *testing.T) {
	h := newHarness(t)
	parkee := &model.ChannelSnapshot{UniqueID: "1"}

	h.Correlators.OnParkedCall(context.Background(), &model.ParkEnvelope{
		Event: model.ParkedCall, Parkee: parkee, ParkingLot: "lot1",
	})
	h.Correlators.OnParkedCall(context.Background(), &model.ParkEnvelope{
		Event: model.ParkedCallTimeOut, Parkee: parkee,
	})

	assert.Equal(t, []string{"PARK_START", "PARK_END"}, h.types())
	assert.Contains(t, h.Records[1].Extra, "ParkedCallTimeOut")
}

func TestOnPickup(t *testing.T) {
	h := newHarness(t)
	env := &model.PickupEnvelope{
		Channel: &model.ChannelSnapshot{UniqueID: "1", Name: "picker"},
		Target:  &model.ChannelSnapshot{UniqueID: "2", Name: "target"},
	}

	h.Correlators.OnPickup(context.Background(), env)

	require.Len(t, h.Records, 1)
	assert.Equal(t, "PICKUP", h.Records[0].EventType.String())
	assert.Equal(t, "target", h.Records[0].ChannelName)
	assert.Contains(t, h.Records[0].Extra, "picker")
}

func TestOnLocalOptimize(t *testing.T) {
	h := newHarness(t)
	env := &model.LocalOptimizeEnvelope{
		One: &model.ChannelSnapshot{UniqueID: "1", Name: "local-one"},
		Two: &model.ChannelSnapshot{UniqueID: "2", Name: "local-two"},
	}

	h.Correlators.OnLocalOptimize(context.Background(), env)

	require.Len(t, h.Records, 1)
	assert.Equal(t, "LOCAL_OPTIMIZE", h.Records[0].EventType.String())
	assert.Equal(t, "local-one", h.Records[0].ChannelName)
	assert.Contains(t, h.Records[0].Extra, "local-two")
}

func TestOnUserEventDropsNonUserDefined(t *testing.T) {
	h := newHarness(t)
	env := &model.UserEventEnvelope{EventType: 3, Channel: &model.ChannelSnapshot{UniqueID: "1"}}
	h.Correlators.OnUserEvent(context.Background(), env)
	assert.Empty(t, h.Records)
}

func TestOnUserEventReportsUserDefined(t *testing.T) {
	h := newHarness(t)
	env := &model.UserEventEnvelope{
		EventType: 9,
		Channel:   &model.ChannelSnapshot{UniqueID: "1"},
		EventName: "MYEVENT",
		Extra:     map[string]any{"k": "v"},
	}
	h.Correlators.OnUserEvent(context.Background(), env)

	require.Len(t, h.Records, 1)
	assert.Equal(t, "USER_DEFINED", h.Records[0].EventType.String())
	assert.Equal(t, "MYEVENT", h.Records[0].UserDefinedName)
}
