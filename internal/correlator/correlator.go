// Package correlator implements the stateful correlators that translate
// raw state-change observations into CEL events (§4.2–§4.8).
package correlator

import (
	"log/slog"

	"github.com/webitel/cel-engine/internal/dialstatus"
	"github.com/webitel/cel-engine/internal/filter"
	"github.com/webitel/cel-engine/internal/linkedid"
)

// Correlators bundles the shared state every correlator needs: the
// config-gate filter (which owns record building and backend fan-out), the
// linkedid lifetime tracker, and the dial-status carry-over store.
type Correlators struct {
	Filter     *filter.Filter
	LinkedID   *linkedid.Tracker
	DialStatus *dialstatus.Store
	Logger     *slog.Logger
}

func New(f *filter.Filter, linked *linkedid.Tracker, dial *dialstatus.Store, logger *slog.Logger) *Correlators {
	if logger == nil {
		logger = slog.Default()
	}
	return &Correlators{Filter: f, LinkedID: linked, DialStatus: dial, Logger: logger}
}
