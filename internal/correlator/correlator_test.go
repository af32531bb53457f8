package correlator

import (
	"context"
	"testing"
	"time"

	"github.com/webitel/cel-engine/config"
	"github.com/webitel/cel-engine/internal/dialstatus"
	"github.com/webitel/cel-engine/internal/domain/event"
	"github.com/webitel/cel-engine/internal/filter"
	"github.com/webitel/cel-engine/internal/linkedid"
	"github.com/webitel/cel-engine/internal/registry"
)

type stubClock struct{ t time.Time }

func (c stubClock) Now() time.Time { return c.t }

// testHarness wires a full Correlators bundle with every event tracked, and
// records every record a test backend receives for assertion.
type testHarness struct {
	Correlators *Correlators
	Records     []*event.Record
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	return newHarnessWithApps(t, nil)
}

// newHarnessWithApps is like newHarness but also tracks the given
// (lowercased) application names, for tests exercising the APP_START/
// APP_END app filter.
func newHarnessWithApps(t *testing.T, apps []string) *testHarness {
	t.Helper()

	cfg := config.NewDefault()
	cfg.Enable = true
	cfg.Events = config.AllEventsMask
	for _, a := range apps {
		cfg.Apps[a] = struct{}{}
	}

	holder := config.NewHolder(cfg)
	linked := linkedid.New(nil)
	builder := event.NewBuilder(stubClock{t: time.Now()})
	backends := registry.New(nil)
	f := filter.New(holder, linked, builder, backends)
	dial := dialstatus.New()

	h := &testHarness{Correlators: New(f, linked, dial, nil)}
	backends.Register("recorder", func(ctx context.Context, rec *event.Record) error {
		h.Records = append(h.Records, rec)
		return nil
	})
	return h
}

func (h *testHarness) types() []string {
	var out []string
	for _, r := range h.Records {
		out = append(out, r.EventType.String())
	}
	return out
}
