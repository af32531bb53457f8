package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webitel/cel-engine/internal/celtype"
	"github.com/webitel/cel-engine/internal/domain/model"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestBuildCopiesSnapshotFields(t *testing.T) {
	clock := fixedClock{t: time.Date(2026, 1, 2, 3, 4, 5, 6000, time.UTC)}
	b := NewBuilder(clock)

	snap := &model.ChannelSnapshot{
		UniqueID:    "1700000000.1",
		LinkedID:    "1700000000.1",
		Name:        "PJSIP/alice-00000001",
		Appl:        "Dial",
		Data:        "PJSIP/bob",
		Context:     "default",
		Exten:       "100",
		AMAFlags:    3,
		AccountCode: "acct1",
		PeerAccount: "peer1",
		UserField:   "uf",
		CID:         model.CallerID{Name: "Alice", Number: "100"},
	}

	rec, err := b.Build(snap, celtype.Answer, "", nil)
	require.NoError(t, err)

	assert.Equal(t, celtype.Answer, rec.EventType)
	assert.Equal(t, snap.UniqueID, rec.UniqueID)
	assert.Equal(t, snap.AccountCode, rec.AccountCode)
	assert.Equal(t, snap.PeerAccount, rec.PeerAccount)
	assert.Equal(t, "Alice", rec.CIDName)
	assert.Equal(t, "", rec.UserDefinedName)
	assert.Equal(t, "", rec.Extra)
}

func TestBuildKeepsUserDefinedNameOnlyForUserDefined(t *testing.T) {
	b := NewBuilder(fixedClock{t: time.Now()})
	snap := &model.ChannelSnapshot{UniqueID: "1"}

	rec, err := b.Build(snap, celtype.UserDefined, "MYEVENT", map[string]any{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, "MYEVENT", rec.UserDefinedName)
	assert.JSONEq(t, `{"k":"v"}`, rec.Extra)

	rec2, err := b.Build(snap, celtype.Answer, "MYEVENT", nil)
	require.NoError(t, err)
	assert.Equal(t, "", rec2.UserDefinedName, "non-USER_DEFINED records never carry a user-event name")
}

func TestBuildRejectsNilSnapshot(t *testing.T) {
	b := NewBuilder(fixedClock{t: time.Now()})
	_, err := b.Build(nil, celtype.Answer, "", nil)
	assert.Error(t, err)
}

func TestFabricateChannelPeerAcctMirrorsAccountCode(t *testing.T) {
	rec := &Record{
		EventType:    celtype.Hangup,
		UniqueID:     "fabricate-test-unique-id",
		AccountCode:  "the-account-code",
		PeerAccount:  "the-peer-account",
		EventTimeSec: 1700000000,
	}

	fc := FabricateChannelFromEvent(rec, "")

	assert.Equal(t, "the-account-code", fc.Vars["PEERACCT"],
		"documented discrepancy: PEERACCT mirrors AccountCode, not PeerAccount")
	assert.Equal(t, "the-account-code", fc.AccountCode)
}

func TestFabricateChannelIsCached(t *testing.T) {
	rec := &Record{EventType: celtype.Answer, UniqueID: "cache-test", EventTimeSec: 42}
	first := FabricateChannelFromEvent(rec, "")
	second := FabricateChannelFromEvent(rec, "")
	assert.Same(t, first, second, "identical record identity should hit the cache")
}

func TestFormatEventTimeFallsBackWithoutDateformat(t *testing.T) {
	rec := &Record{EventTimeSec: 1700000000, EventTimeUsec: 123456}
	assert.Equal(t, "1700000000.123456", formatEventTime(rec, ""))
}

func TestFormatEventTimeUsesStrftime(t *testing.T) {
	rec := &Record{EventTimeSec: 1700000000}
	out := formatEventTime(rec, "%Y-%m-%d")
	assert.Len(t, out, len("2023-11-14"))
}
