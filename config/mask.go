package config

import "github.com/webitel/cel-engine/internal/celtype"

// EventMask is a 64-bit bitmask indexed by celtype.EventType code. Code 0
// (the ALL sentinel) never appears as a bit; AllEventsMask sets every bit
// from 1 through celtype.MaxEventID.
type EventMask uint64

// AllEventsMask is the mask produced by the "ALL" sentinel in cel.conf:
// every bit from 1 through celtype.MaxEventID, bit 0 (the ALL sentinel
// itself) excluded.
const AllEventsMask EventMask = (1 << (celtype.MaxEventID + 1)) - 1 - 1<<0

// Set returns a copy of m with t's bit set.
func (m EventMask) Set(t celtype.EventType) EventMask {
	return m | (1 << uint(t))
}

// Has reports whether t's bit is set.
func (m EventMask) Has(t celtype.EventType) bool {
	return m&(1<<uint(t)) != 0
}

// Names returns the config-file names of every event type set in m, in
// ascending code order, skipping "Unknown". Used by `cel show status`.
func (m EventMask) Names() []string {
	var out []string
	for code := celtype.EventType(1); int(code) <= celtype.MaxEventID; code++ {
		if m.Has(code) {
			if name := code.String(); name != "Unknown" {
				out = append(out, name)
			}
		}
	}
	return out
}
