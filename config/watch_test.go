package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webitel/cel-engine/internal/celtype"
)

func writeConf(t *testing.T, body string) string {
	t.Helper()
	path := t.TempDir() + "/cel.conf"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadParsesGeneralSection(t *testing.T) {
	path := writeConf(t, "[general]\nenable=yes\nevents=ANSWER,HANGUP,APP_START\napps=Dial,Playback\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Enable)
	assert.True(t, cfg.Tracks(celtype.Answer))
	assert.True(t, cfg.Tracks(celtype.Hangup))
	assert.False(t, cfg.Tracks(celtype.ChannelStart))
	assert.True(t, cfg.TracksApp("dial"))
	assert.True(t, cfg.TracksApp("DIAL"))
	assert.False(t, cfg.TracksApp("background"))
}

func TestLoadIgnoresOtherSections(t *testing.T) {
	path := writeConf(t, "[manager]\nenable=yes\n\n[general]\nenable=no\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Enable)
}

func TestLoadRejectsBadFile(t *testing.T) {
	_, err := Load(t.TempDir() + "/missing.conf")
	assert.Error(t, err)
}

func TestWatcherReloadAppliesFileChanges(t *testing.T) {
	path := writeConf(t, "[general]\nenable=no\nevents=ANSWER\n")

	holder := NewHolder(NewDefault())
	w, err := NewWatcher(path, holder, nil)
	require.NoError(t, err)
	assert.False(t, holder.Get().Enable)

	require.NoError(t, os.WriteFile(path, []byte("[general]\nenable=yes\nevents=ANSWER\n"), 0o644))
	require.NoError(t, w.Reload())

	assert.True(t, holder.Get().Enable)
}

func TestWatcherReloadRejectsInvalidAndKeepsPrevious(t *testing.T) {
	path := writeConf(t, "[general]\nenable=yes\nevents=ANSWER\n")

	holder := NewHolder(NewDefault())
	w, err := NewWatcher(path, holder, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[general]\nenable=yes\nevents=ANSWER\napps=dial\n"), 0o644))
	err = w.Reload()

	assert.Error(t, err)
	assert.True(t, holder.Get().Enable, "rejected reload must leave the previous config active")
	assert.Empty(t, holder.Get().Apps)
}

func TestNewWatcherPerformsInitialSyncLoad(t *testing.T) {
	path := writeConf(t, "[general]\nenable=yes\nevents=ANSWER\n")

	holder := NewHolder(NewDefault())
	_, err := NewWatcher(path, holder, nil)
	require.NoError(t, err)

	assert.True(t, holder.Get().Enable, "NewWatcher must synchronously load before returning")
}
