// Package linkedid implements the reference-counted linkedid lifetime
// tracker (§4.9): it emits LINKEDID_END exactly once per logical call tree,
// attributed to the last channel observed carrying that linkedid.
package linkedid

import (
	"log/slog"
	"sync"
)

// entry mirrors the original engine's refcounted map entry: refcount
// starts at 2 on first acquisition — one reference for the "link" itself,
// one held by the tracker's own map entry — and retires when it would drop
// to a value that means only the tracker's own reference is left.
type entry struct {
	refcount int
}

// Tracker guards one mutex over the whole map; the decrement-and-unlink
// decision must happen under that same lock so a racing Acquire cannot
// resurrect an entry that is mid-retirement (§5).
type Tracker struct {
	mu      sync.Mutex
	entries map[string]*entry
	logger  *slog.Logger
}

func New(logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		entries: make(map[string]*entry),
		logger:  logger,
	}
}

// Acquire registers one more live channel carrying linkedid. Calling it
// with an empty linkedid is a programming error: it is logged and no state
// is mutated.
func (t *Tracker) Acquire(linkedID string) {
	if linkedID == "" {
		t.logger.Error("linkedid: acquire called with empty linkedid")
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[linkedID]
	if !ok {
		t.entries[linkedID] = &entry{refcount: 2}
		return
	}
	e.refcount++
}

// RetirementCheck decrements the refcount for old.LinkedID and reports
// whether this call brought it down to the point that only the tracker's
// own reference remains -- i.e. whether the caller should now emit
// LINKEDID_END attributed to old. It is a no-op returning false when
// linkedID is empty (nothing to retire) or when the tracker has no entry
// for it (logged as a tolerated anomaly: the channel may have arrived
// before LINKEDID_END tracking was enabled).
func (t *Tracker) RetirementCheck(linkedID string) (fire bool) {
	if linkedID == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[linkedID]
	if !ok {
		t.logger.Warn("linkedid: retirement check found no tracked entry", "linkedid", linkedID)
		return false
	}

	e.refcount--
	if e.refcount > 1 {
		return false
	}

	// refcount has dropped to (or below) 1: only the tracker's own
	// reference is left and no live channel holds it. Unlink now, under
	// the same lock that performed the decrement, so a concurrent Acquire
	// cannot observe and resurrect a half-retired entry.
	delete(t.entries, linkedID)
	return true
}

// Len reports the number of linkedids currently tracked. Exposed for tests.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
