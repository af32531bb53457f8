package model

// DialEnvelope carries a dial-progress observation for one caller (§4.5).
// Forward and DialStatus are independently optional; either, both, or
// neither may be populated on a given message.
type DialEnvelope struct {
	Caller     *ChannelSnapshot
	Forward    string
	DialStatus string
}

// ParkEventType distinguishes the parking-lot transitions carried on
// parked_call messages (§4.6).
type ParkEventType int

const (
	ParkedCall ParkEventType = iota
	ParkedCallTimeOut
	ParkedCallGiveUp
	ParkedCallUnparked
	ParkedCallFailed
	ParkedCallSwap
)

// reasonNames maps every non-PARKED_CALL park event to the literal string
// attached as the PARK_END event's `reason` extra field.
var reasonNames = map[ParkEventType]string{
	ParkedCallTimeOut:  "ParkedCallTimeOut",
	ParkedCallGiveUp:   "ParkedCallGiveUp",
	ParkedCallUnparked: "ParkedCallUnparked",
	ParkedCallFailed:   "ParkedCallFailed",
	ParkedCallSwap:     "ParkedCallSwap",
}

// Reason returns the literal PARK_END reason string for this event type, or
// "" for ParkedCall (which produces PARK_START, not PARK_END).
func (t ParkEventType) Reason() string {
	return reasonNames[t]
}

// ParkEnvelope carries one parking-lot transition.
type ParkEnvelope struct {
	Event            ParkEventType
	Parkee           *ChannelSnapshot
	ParkerDialString string
	ParkingLot       string
}

// BlindTransferResult is the outcome of a blind-transfer attempt.
type BlindTransferResult int

const (
	BlindTransferFail BlindTransferResult = iota
	BlindTransferSuccess
)

// BlindTransferEnvelope carries a completed (or failed) blind transfer
// (§4.4).
type BlindTransferEnvelope struct {
	Result     BlindTransferResult
	Transferer *ChannelSnapshot
	Exten      string
	Context    string
	BridgeID   string
}

// AttendedTransferDestType classifies how an attended transfer resolved.
type AttendedTransferDestType int

const (
	AttendedTransferFail AttendedTransferDestType = iota
	AttendedTransferBridgeMerge
	AttendedTransferLink
	AttendedTransferThreeway
	AttendedTransferApp
)

// TransferPair groups one leg of an attended transfer: the bridge the leg
// was in (nil if the leg was not bridged) and the channel performing it.
type TransferPair struct {
	Bridge  *BridgeSnapshot
	Channel *ChannelSnapshot
}

// AttendedTransferEnvelope carries a completed (or failed) attended
// transfer. ToTransferee and ToTransferTarget are as delivered upstream;
// §4.4 requires normalizing so bridge1/channel1 is always non-null before
// building the event, which the transfer correlator does internally.
type AttendedTransferEnvelope struct {
	DestType         AttendedTransferDestType
	ToTransferee     TransferPair
	ToTransferTarget TransferPair
	App              string
}

// PickupEnvelope carries a completed call pickup (§4.7).
type PickupEnvelope struct {
	Channel *ChannelSnapshot // the picker
	Target  *ChannelSnapshot // the picked-up channel
}

// LocalOptimizeEnvelope carries a local-channel optimization completion
// (§4.7).
type LocalOptimizeEnvelope struct {
	One *ChannelSnapshot
	Two *ChannelSnapshot
}

// UserEventEnvelope wraps an internal CEL-generic user event (§4.8).
type UserEventEnvelope struct {
	EventType int
	Channel   *ChannelSnapshot
	EventName string
	Extra     map[string]any
}

// IsUserDefined reports whether this envelope's EventType corresponds to
// celtype.UserDefined. This package does not import celtype; the check is
// a plain int comparison against the same numeric contract.
func (e *UserEventEnvelope) IsUserDefined() bool {
	const userDefinedCode = 9
	return e.EventType == userDefinedCode
}
