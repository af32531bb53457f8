// Package filter implements the configuration-gated decision of whether a
// candidate event is actually reported (§4.11).
package filter

import (
	"context"

	"github.com/webitel/cel-engine/config"
	"github.com/webitel/cel-engine/internal/celtype"
	"github.com/webitel/cel-engine/internal/domain/event"
	"github.com/webitel/cel-engine/internal/domain/model"
	"github.com/webitel/cel-engine/internal/linkedid"
	"github.com/webitel/cel-engine/internal/registry"
)

// Filter evaluates candidate events against the current configuration and,
// when accepted, builds and dispatches the resulting record.
type Filter struct {
	cfg      *config.Holder
	linked   *linkedid.Tracker
	builder  *event.Builder
	backends *registry.Registry
}

func New(cfg *config.Holder, linked *linkedid.Tracker, builder *event.Builder, backends *registry.Registry) *Filter {
	return &Filter{cfg: cfg, linked: linked, builder: builder, backends: backends}
}

// Report runs the §4.11 decision function:
//
//	if !cfg.enable: drop
//	if event_type == CHANNEL_START and LINKEDID_END is tracked: acquire linkedid
//	if !(cfg.events bit event_type): drop
//	if event_type in {APP_START, APP_END} and lower(appl) not in cfg.apps: drop
//	build record, fan out
//
// The linkedid acquisition on CHANNEL_START happens even if CHANNEL_START
// itself is not being reported, because LINKEDID_END depends on it having
// run.
func (f *Filter) Report(ctx context.Context, eventType celtype.EventType, snapshot *model.ChannelSnapshot, userEventName string, extra map[string]any) {
	cfg := f.cfg.Get()

	if !cfg.Enable {
		return
	}

	if eventType == celtype.ChannelStart && cfg.Tracks(celtype.LinkedIDEnd) {
		f.linked.Acquire(snapshot.LinkedID)
	}

	if !cfg.Tracks(eventType) {
		return
	}

	if eventType == celtype.AppStart || eventType == celtype.AppEnd {
		if !cfg.TracksApp(snapshot.Appl) {
			return
		}
	}

	rec, err := f.builder.Build(snapshot, eventType, userEventName, extra)
	if err != nil {
		return
	}

	f.backends.Dispatch(ctx, rec)
}

// LinkedIDEndTracked reports whether the current config tracks
// LINKEDID_END. Correlators consult this before running any linkedid
// bookkeeping at all (not just before emission) — see SPEC_FULL.md's
// supplemented-feature note on ast_cel_track_event.
func (f *Filter) LinkedIDEndTracked() bool {
	return f.cfg.Get().Tracks(celtype.LinkedIDEnd)
}

// RetireLinkedID runs the linkedid retirement check for old and, if it
// fires, reports LINKEDID_END attributed to old. It is the one path by
// which LINKEDID_END bypasses the normal Report flow's own linkedid
// acquisition step, since retirement (not acquisition) is what triggers
// this particular event type.
func (f *Filter) RetireLinkedID(ctx context.Context, old *model.ChannelSnapshot) {
	if old == nil || old.LinkedID == "" || !f.LinkedIDEndTracked() {
		return
	}
	if f.linked.RetirementCheck(old.LinkedID) {
		f.Report(ctx, celtype.LinkedIDEnd, old, "", nil)
	}
}
