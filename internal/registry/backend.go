// Package registry implements the backend registry and fan-out (§4.13):
// named callbacks, idempotent-by-failure registration, and a dispatch path
// that isolates a single failing backend from the rest (§7).
package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"

	"github.com/webitel/cel-engine/internal/domain/event"
)

// Callback is the function signature backends register to receive built
// records.
type Callback func(ctx context.Context, rec *event.Record) error

type backendEntry struct {
	name     string
	callback Callback
	breaker  *gobreaker.CircuitBreaker
}

// Registry owns the set of registered backends. Dispatch takes a snapshot
// of the current entries under the lock, then invokes callbacks outside
// the lock, so a callback may itself call Register/Unregister without
// deadlocking (§5).
type Registry struct {
	mu       sync.RWMutex
	backends map[string]*backendEntry
	logger   *slog.Logger
}

func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		backends: make(map[string]*backendEntry),
		logger:   logger,
	}
}

// Register adds a named backend. Empty names are rejected. A duplicate
// name is rejected too (registration is idempotent-by-failure: calling it
// twice with the same name never silently replaces the first callback).
func (r *Registry) Register(name string, cb Callback) error {
	if name == "" {
		return fmt.Errorf("registry: backend name must not be empty")
	}
	if cb == nil {
		return fmt.Errorf("registry: backend %q: callback must not be nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[name]; exists {
		return fmt.Errorf("registry: backend %q already registered", name)
	}

	r.backends[name] = &backendEntry{
		name:     name,
		callback: cb,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				r.logger.Warn("registry: backend circuit breaker state change",
					"backend", name, "from", from.String(), "to", to.String())
			},
		}),
	}
	return nil
}

// Unregister removes a backend by name. Unregistering an absent name is a
// no-op that reports failure (nothing to unlink).
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.backends[name]; !ok {
		return fmt.Errorf("registry: backend %q not registered", name)
	}
	delete(r.backends, name)
	return nil
}

// Names returns the currently registered backend names, for the `cel show
// status` CLI and the HTTP /status surface.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch fans a record out to every currently registered backend
// concurrently. Each backend's callback is wrapped in its own circuit
// breaker, so a backend that fails repeatedly is isolated (skipped while
// its breaker is open) without affecting delivery to the others. A
// per-backend error is logged and does not fail the overall dispatch;
// Dispatch returns once every callback has finished and reports no error
// of its own.
func (r *Registry) Dispatch(ctx context.Context, rec *event.Record) {
	r.mu.RLock()
	entries := make([]*backendEntry, 0, len(r.backends))
	for _, e := range r.backends {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	if len(entries) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, e := range entries {
		e := e
		g.Go(func() error {
			_, err := e.breaker.Execute(func() (any, error) {
				return nil, e.callback(gctx, rec)
			})
			if err != nil {
				r.logger.Error("registry: backend callback failed",
					"backend", e.name, "err", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}
