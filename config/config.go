// Package config models cel.conf's [general] section: the enable flag,
// optional strftime dateformat, tracked-event mask, and tracked-app set
// (§4.11, §6).
package config

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/spf13/viper"

	"github.com/webitel/cel-engine/internal/celtype"
)

// Config is an immutable snapshot of cel.conf's [general] section. Readers
// take a reference (a pointer load) and hold it for the duration of one
// handler invocation; reloads never mutate a live Config, they publish a
// new one (§3 Ownership & lifecycle).
type Config struct {
	Enable     bool
	DateFormat string
	Events     EventMask
	Apps       map[string]struct{} // case-insensitively lowercased
}

// NewDefault returns the zero-value configuration: disabled, no events, no
// apps. Used before the first successful load.
func NewDefault() *Config {
	return &Config{Apps: map[string]struct{}{}}
}

// TracksApp reports whether appl (case-insensitive) is in the configured
// app set.
func (c *Config) TracksApp(appl string) bool {
	_, ok := c.Apps[strings.ToLower(appl)]
	return ok
}

// Tracks reports whether t's bit is set in the configured event mask.
func (c *Config) Tracks(t celtype.EventType) bool {
	return c.Events.Has(t)
}

// parseBool parses the `enable` option's permitted spellings (§6:
// `enable = yes|no`). viper's GetBool/cast.ToBool only understands
// true/false/1/0/t/f and would silently read a documented `enable = yes`
// as false, so this is parsed explicitly rather than left to viper.
func parseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", "on", "true", "1", "t":
		return true, nil
	case "no", "off", "false", "0", "f", "":
		return false, nil
	default:
		return false, fmt.Errorf("cel: invalid boolean value %q", raw)
	}
}

// validate implements the §4.11 pre-apply rule: if apps is non-empty but
// neither APP_START nor APP_END is tracked, the config is meaningless (app
// filtering can never fire) and must be rejected.
func validate(c *Config) error {
	if len(c.Apps) == 0 {
		return nil
	}
	if c.Events.Has(celtype.AppStart) || c.Events.Has(celtype.AppEnd) {
		return nil
	}
	return fmt.Errorf("cel: config rejected: apps configured but neither APP_START nor APP_END is tracked")
}

// parseEvents parses the comma-separated `events` option, honoring the ALL
// sentinel and rejecting any unrecognized name.
func parseEvents(raw string) (EventMask, error) {
	var mask EventMask
	for _, tok := range splitCSV(raw) {
		if tok == celtype.ALL {
			return AllEventsMask, nil
		}
		t, ok := celtype.Parse(tok)
		if !ok {
			return 0, &celtype.ErrUnknownEventName{Name: tok}
		}
		mask = mask.Set(t)
	}
	return mask, nil
}

// parseApps parses the comma-separated `apps` option: case-insensitive,
// trimmed, stored lowercased.
func parseApps(raw string) map[string]struct{} {
	out := map[string]struct{}{}
	for _, tok := range splitCSV(raw) {
		out[strings.ToLower(tok)] = struct{}{}
	}
	return out
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// FromViper builds a Config from a viper instance that has already read
// cel.conf's [general] section (sections [manager] and [radius], if
// present in the same file, are owned by other modules and are never
// consulted here).
func FromViper(v *viper.Viper) (*Config, error) {
	enable, err := parseBool(v.GetString("general.enable"))
	if err != nil {
		return nil, fmt.Errorf("cel: parse general.enable: %w", err)
	}

	c := &Config{
		Enable:     enable,
		DateFormat: v.GetString("general.dateformat"),
		Apps:       parseApps(v.GetString("general.apps")),
	}

	mask, err := parseEvents(v.GetString("general.events"))
	if err != nil {
		return nil, err
	}
	c.Events = mask

	if err := validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Holder publishes an immutable *Config behind an atomic pointer, matching
// the original engine's AO2_GLOBAL_OBJ_STATIC(cel_configs) pattern: readers
// load a reference, reloads swap the pointer without ever mutating a live
// value.
type Holder struct {
	ptr atomic.Pointer[Config]
}

func NewHolder(initial *Config) *Holder {
	h := &Holder{}
	if initial == nil {
		initial = NewDefault()
	}
	h.ptr.Store(initial)
	return h
}

// Get returns the current config snapshot.
func (h *Holder) Get() *Config {
	return h.ptr.Load()
}

// Swap validates and publishes a new config, returning an error (and
// leaving the previous config in effect) if validation fails.
func (h *Holder) Swap(next *Config) error {
	if err := validate(next); err != nil {
		return err
	}
	h.ptr.Store(next)
	return nil
}
