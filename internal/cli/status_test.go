package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webitel/cel-engine/config"
	"github.com/webitel/cel-engine/internal/celtype"
	"github.com/webitel/cel-engine/internal/domain/event"
	"github.com/webitel/cel-engine/internal/registry"
)

func TestPrintStatusDisabled(t *testing.T) {
	holder := config.NewHolder(config.NewDefault())
	backends := registry.New(nil)

	var buf bytes.Buffer
	PrintStatus(&buf, holder, backends)

	assert.Contains(t, buf.String(), "CEL Logging: Disabled")
}

func TestPrintStatusEnabledListsEventsAppsAndBackends(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Enable = true
	cfg.Events = cfg.Events.Set(celtype.Answer).Set(celtype.Hangup)
	cfg.Apps = map[string]struct{}{"dial": {}, "playback": {}}
	holder := config.NewHolder(cfg)

	backends := registry.New(nil)
	require.NoError(t, backends.Register("syslog", func(context.Context, *event.Record) error { return nil }))

	var buf bytes.Buffer
	PrintStatus(&buf, holder, backends)
	out := buf.String()

	assert.Contains(t, out, "CEL Logging: Enabled")
	assert.Contains(t, out, "CEL Tracking Event: ANSWER")
	assert.Contains(t, out, "CEL Tracking Event: HANGUP")
	assert.Contains(t, out, "CEL Tracking Application: dial")
	assert.Contains(t, out, "CEL Tracking Application: playback")
	assert.Contains(t, out, "CEL Event Subscriber: syslog")
}
