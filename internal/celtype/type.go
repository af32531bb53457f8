// Package celtype defines the closed set of CEL event types and their
// external numeric contract (see cel.conf's `events` option and the wire
// shape consumed by backends).
package celtype

import "fmt"

// EventType is a CEL event type code. The numeric values are part of the
// external contract: backends persist them verbatim, so they must never be
// renumbered.
type EventType int

const (
	ChannelStart     EventType = 1
	ChannelEnd       EventType = 2
	Answer           EventType = 3
	Hangup           EventType = 4
	AppStart         EventType = 5
	AppEnd           EventType = 6
	ParkStart        EventType = 7
	ParkEnd          EventType = 8
	UserDefined      EventType = 9
	BridgeEnter      EventType = 10
	BridgeExit       EventType = 11
	BlindTransfer    EventType = 12
	AttendedTransfer EventType = 13
	Pickup           EventType = 14
	Forward          EventType = 15
	LinkedIDEnd      EventType = 16
	LocalOptimize    EventType = 17

	// MaxEventID bounds the closed enumeration; code 0 is reserved for the
	// config-file ALL sentinel and is never attached to an emitted record.
	MaxEventID = 17
)

// names holds the config-file spelling (without the AST_CEL_ prefix) for
// every tracked event type, in code order starting at 1.
var names = [MaxEventID + 1]string{
	0:                "Unknown",
	ChannelStart:     "CHAN_START",
	ChannelEnd:       "CHAN_END",
	Answer:           "ANSWER",
	Hangup:           "HANGUP",
	AppStart:         "APP_START",
	AppEnd:           "APP_END",
	ParkStart:        "PARK_START",
	ParkEnd:          "PARK_END",
	UserDefined:      "USER_DEFINED",
	BridgeEnter:      "BRIDGE_ENTER",
	BridgeExit:       "BRIDGE_EXIT",
	BlindTransfer:    "BLINDTRANSFER",
	AttendedTransfer: "ATTENDEDTRANSFER",
	Pickup:           "PICKUP",
	Forward:          "FORWARD",
	LinkedIDEnd:      "LINKEDID_END",
	LocalOptimize:    "LOCAL_OPTIMIZE",
}

// String returns the config-file spelling of the event type, or "Unknown"
// for an out-of-range value.
func (t EventType) String() string {
	if t < 0 || int(t) >= len(names) {
		return "Unknown"
	}
	return names[t]
}

// ALL is the config-file sentinel name that sets the event mask to all-ones.
// It is never a valid EventType on its own; it is only recognized while
// parsing the `events` config option.
const ALL = "ALL"

// Parse resolves a config-file event name (case-sensitive, without the
// AST_CEL_ prefix) to its EventType. It returns false for "ALL" (handled by
// the caller as a mask-wide sentinel) and for any unrecognized name.
func Parse(name string) (EventType, bool) {
	for code := EventType(1); int(code) < len(names); code++ {
		if names[code] == name {
			return code, true
		}
	}
	return 0, false
}

// ErrUnknownEventName is returned by config parsing when an `events` entry
// matches neither a known EventType nor the ALL sentinel.
type ErrUnknownEventName struct {
	Name string
}

func (e *ErrUnknownEventName) Error() string {
	return fmt.Sprintf("cel: unknown event name %q", e.Name)
}
