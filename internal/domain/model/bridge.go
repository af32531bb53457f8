package model

// BridgeSnapshot is an immutable copy of a mixing bridge's identity, as
// carried on channel_entered_bridge / channel_left_bridge messages.
type BridgeSnapshot struct {
	UniqueID string
}
