// Package event builds immutable CEL event records from channel snapshots
// and provides the inverse "fabricate a channel" helper backends use to
// feed a record through templating logic that expects a channel-like
// object (§4.12).
package event

import "github.com/webitel/cel-engine/internal/celtype"

// Record is the immutable value published to backends. Every string field
// is a verbatim copy of the triggering snapshot; Extra is a JSON-encoded,
// free-form payload whose shape depends on EventType.
type Record struct {
	EventType       celtype.EventType
	EventTimeSec    int64
	EventTimeUsec   int64
	UserDefinedName string // only non-empty for celtype.UserDefined

	ChannelName string
	UniqueID    string
	LinkedID    string
	AMAFlags    int
	AccountCode string
	PeerAccount string
	UserField   string

	CIDName  string
	CIDNum   string
	CIDANI   string
	CIDRDNIS string
	CIDDNID  string

	Exten   string
	Context string
	Appl    string
	Data    string

	HangupCause  int
	HangupSource string

	Extra string // JSON-encoded, "" if no extra fields for this event

	// Peer is always empty when a record leaves the builder; some backends
	// populate it downstream (e.g. after resolving the other leg of a
	// bridge) before re-templating the record.
	Peer string
}
