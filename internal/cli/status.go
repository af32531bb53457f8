// Package cli implements the operator-facing "cel" commands: status,
// watch, and reload (§6).
package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/webitel/cel-engine/config"
	"github.com/webitel/cel-engine/internal/registry"
)

// PrintStatus renders "cel show status" in the three-pass order the
// original Asterisk CLI handler uses: logging enabled/disabled, then every
// tracked event, then every tracked application, then every registered
// subscriber (§6, SUPPLEMENTED FEATURES).
func PrintStatus(w io.Writer, holder *config.Holder, backends *registry.Registry) {
	cfg := holder.Get()

	if cfg.Enable {
		fmt.Fprintln(w, "CEL Logging: Enabled")
	} else {
		fmt.Fprintln(w, "CEL Logging: Disabled")
	}

	for _, name := range cfg.Events.Names() {
		fmt.Fprintf(w, "CEL Tracking Event: %s\n", name)
	}

	apps := make([]string, 0, len(cfg.Apps))
	for app := range cfg.Apps {
		apps = append(apps, app)
	}
	sort.Strings(apps)
	for _, app := range apps {
		fmt.Fprintf(w, "CEL Tracking Application: %s\n", app)
	}

	for _, name := range backends.Names() {
		fmt.Fprintf(w, "CEL Event Subscriber: %s\n", name)
	}
}
