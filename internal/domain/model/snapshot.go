// Package model holds the immutable value types the correlation core
// consumes: channel/bridge snapshots and the per-correlator envelopes
// carried on the aggregation topic.
package model

// TechFlag is a bitfield of channel technology properties.
type TechFlag uint32

const (
	// TechInternal marks a channel as belonging to internal call-control
	// machinery (e.g. the local-channel optimizer's scratch channels).
	// Snapshots carrying this flag never produce CEL events.
	TechInternal TechFlag = 1 << iota
)

// Has reports whether the flag set contains f.
func (t TechFlag) Has(f TechFlag) bool { return t&f != 0 }

// ChannelState is the channel's call-progress state.
type ChannelState int

const (
	StateDown ChannelState = iota
	StateRing
	StateRinging
	StateUp
	StateBusy
)

// CallerID groups the caller-identification fields carried on every
// snapshot.
type CallerID struct {
	Name   string
	Number string
	ANI    string
	RDNIS  string
	DNID   string
}

// ChannelSnapshot is an immutable point-in-time copy of one channel's state,
// as delivered by a cache-update message. Two snapshots (old, new) bracket
// every transition the correlation core observes.
type ChannelSnapshot struct {
	UniqueID    string
	LinkedID    string
	Name        string
	State       ChannelState
	Dead        bool
	Appl        string
	Data        string
	Context     string
	Exten       string
	AMAFlags    int
	AccountCode string
	PeerAccount string
	UserField   string
	CID         CallerID

	HangupCause  int
	HangupSource string

	TechProperties TechFlag
}

// IsInternal reports whether the snapshot must be ignored by every
// correlator (§4.2: "If either snapshot has the INTERNAL tech flag the
// update is ignored entirely").
func (s *ChannelSnapshot) IsInternal() bool {
	return s != nil && s.TechProperties.Has(TechInternal)
}
