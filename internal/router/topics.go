package router

// Upstream topics the router aggregates (§4.1). These stand in for the
// real platform's channel cache, bridge, parking, and CEL-internal
// user-event streams; production wiring binds each to whatever the
// upstream bus actually names them.
const (
	TopicChannelCache = "channel.cache_update"
	TopicBridge       = "bridge.events"
	TopicParking      = "parking.events"
	TopicCelInternal  = "cel.generic"

	// TopicAggregation is the single topic every upstream message is
	// forwarded into before dispatch.
	TopicAggregation = "cel.aggregation"
)

// MessageType is the dispatch tag carried in every aggregated message's
// metadata under the "type" key (§4.1's "dispatches by message type tag").
type MessageType string

const (
	TypeCacheUpdate          MessageType = "cache_update"
	TypeChannelDial          MessageType = "channel_dial"
	TypeChannelEnteredBridge MessageType = "channel_entered_bridge"
	TypeChannelLeftBridge    MessageType = "channel_left_bridge"
	TypeParkedCall           MessageType = "parked_call"
	TypeCelGeneric           MessageType = "cel_generic"
	TypeBlindTransfer        MessageType = "blind_transfer"
	TypeAttendedTransfer     MessageType = "attended_transfer"
	TypeCallPickup           MessageType = "call_pickup"
	TypeLocalOptimizationEnd MessageType = "local_optimization_end"
)

// metadataTypeKey is the message.Message.Metadata key carrying MessageType.
const metadataTypeKey = "type"
