package event

import (
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/ncruces/go-strftime"

	"github.com/webitel/cel-engine/internal/celtype"
	"github.com/webitel/cel-engine/internal/domain/model"
)

// Clock is overridable for tests; production code always uses
// RealClock.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// Builder constructs Records from snapshots. It is stateless apart from its
// clock, and safe for concurrent use.
type Builder struct {
	clock Clock
}

func NewBuilder(clock Clock) *Builder {
	if clock == nil {
		clock = RealClock{}
	}
	return &Builder{clock: clock}
}

// Build returns an immutable Record carrying the snapshot's fields plus the
// given event type, optional user-event name, and optional extra payload
// (marshaled to JSON; a nil extra produces an empty string, never "null").
//
// §4.12's documented discrepancy: the source's record-fill path populates
// the PEERACCT fabricated-channel variable from the snapshot's account
// code, not its peer-account field. This builder keeps AccountCode and
// PeerAccount as distinct, faithful fields; see FabricateChannelFromEvent
// for where the discrepancy actually surfaces.
func (b *Builder) Build(snapshot *model.ChannelSnapshot, eventType celtype.EventType, userEventName string, extra map[string]any) (*Record, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("event: build record: nil snapshot")
	}

	now := b.clock.Now()
	extraJSON := ""
	if len(extra) > 0 {
		buf, err := json.Marshal(extra)
		if err != nil {
			return nil, fmt.Errorf("event: build record: marshal extra: %w", err)
		}
		extraJSON = string(buf)
	}

	r := &Record{
		EventType:       eventType,
		EventTimeSec:    now.Unix(),
		EventTimeUsec:   int64(now.Nanosecond() / 1000),
		UserDefinedName: userEventName,

		ChannelName: snapshot.Name,
		UniqueID:    snapshot.UniqueID,
		LinkedID:    snapshot.LinkedID,
		AMAFlags:    snapshot.AMAFlags,
		AccountCode: snapshot.AccountCode,
		PeerAccount: snapshot.PeerAccount,
		UserField:   snapshot.UserField,

		CIDName:  snapshot.CID.Name,
		CIDNum:   snapshot.CID.Number,
		CIDANI:   snapshot.CID.ANI,
		CIDRDNIS: snapshot.CID.RDNIS,
		CIDDNID:  snapshot.CID.DNID,

		Exten:   snapshot.Exten,
		Context: snapshot.Context,
		Appl:    snapshot.Appl,
		Data:    snapshot.Data,

		HangupCause:  snapshot.HangupCause,
		HangupSource: snapshot.HangupSource,

		Extra: extraJSON,
	}

	if eventType != celtype.UserDefined {
		r.UserDefinedName = ""
	}

	return r, nil
}

// FabricatedChannel is the dummy channel-like object backends use to feed a
// Record through templating/variable-expansion logic. It carries both the
// structural fields a real channel would have and the synthetic
// CEL-specific variables listed in §4.12.
type FabricatedChannel struct {
	// Structural fields, mirroring a real channel object.
	CIDName     string
	CIDNum      string
	Exten       string
	Context     string
	ChannelName string
	UniqueID    string
	LinkedID    string
	AccountCode string
	PeerAccount string
	UserField   string
	AMAFlags    int
	Appl        string
	Data        string

	// Synthetic variables, named exactly as the original engine exposes
	// them to its variable-expansion layer.
	Vars map[string]string
}

// fabricateCache memoizes fabricated channels keyed by a record identity
// (event type + unique id + event time) plus the dateformat and the
// record's Peer, the same cache-aside shape as
// this repository's peer-enrichment precedent: compute once, serve many
// template expansions cheaply.
var fabricateCache, _ = lru.New[string, *FabricatedChannel](4096)

// FabricateChannelFromEvent builds (or returns a cached) FabricatedChannel
// for a record, for backends that need to run the record through
// channel-variable templating.
//
// Open question (§9, carried from the original source): the fabricated
// channel's PEERACCT variable is populated from r.AccountCode, not
// r.PeerAccount — this mirrors a discrepancy in the original engine that
// may or may not be intentional. Callers that need the real peer-account
// value should read r.PeerAccount directly rather than the fabricated
// channel's PEERACCT variable.
func FabricateChannelFromEvent(r *Record, dateformat string) *FabricatedChannel {
	key := fmt.Sprintf("%d|%s|%d.%06d|%s|%s", r.EventType, r.UniqueID, r.EventTimeSec, r.EventTimeUsec, dateformat, r.Peer)
	if cached, ok := fabricateCache.Get(key); ok {
		return cached
	}

	displayName := r.EventType.String()
	if r.EventType == celtype.UserDefined && r.UserDefinedName != "" {
		displayName = r.UserDefinedName
	}

	eventTime := formatEventTime(r, dateformat)

	fc := &FabricatedChannel{
		CIDName:     r.CIDName,
		CIDNum:      r.CIDNum,
		Exten:       r.Exten,
		Context:     r.Context,
		ChannelName: r.ChannelName,
		UniqueID:    r.UniqueID,
		LinkedID:    r.LinkedID,
		AccountCode: r.AccountCode,
		PeerAccount: r.PeerAccount,
		UserField:   r.UserField,
		AMAFlags:    r.AMAFlags,
		Appl:        r.Appl,
		Data:        r.Data,
		Vars: map[string]string{
			"eventtype":   displayName,
			"eventtime":   eventTime,
			"eventenum":   fmt.Sprintf("%d", r.EventType),
			"userdeftype": r.UserDefinedName,
			"eventextra":  r.Extra,
			"BRIDGEPEER":  r.Peer,
			// PEERACCT intentionally mirrors AccountCode; see doc comment above.
			"PEERACCT": r.AccountCode,
		},
	}

	fabricateCache.Add(key, fc)
	return fc
}

func formatEventTime(r *Record, dateformat string) string {
	if dateformat == "" {
		return fmt.Sprintf("%d.%06d", r.EventTimeSec, r.EventTimeUsec)
	}
	t := time.Unix(r.EventTimeSec, r.EventTimeUsec*1000).UTC()
	return strftime.Format(dateformat, t)
}
