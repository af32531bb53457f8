package config

import (
	"fmt"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Load reads cel.conf from path (an INI document; [manager] and [radius]
// sections are tolerated but ignored) and returns its parsed [general]
// Config. [manager]/[radius] keys never leak into the returned Config
// because FromViper only ever reads under the "general." prefix.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("cel: load config %s: %w", path, err)
	}
	return FromViper(v)
}

// Watcher hot-reloads cel.conf into a Holder whenever the file changes on
// disk, using viper's fsnotify-backed WatchConfig. A reload that fails
// validation is logged and discarded; the previous config remains active
// (§7: "Config error ... rejects the config load; previous config remains
// in effect").
type Watcher struct {
	v      *viper.Viper
	holder *Holder
	logger *slog.Logger
}

// NewWatcher constructs a Watcher and performs the initial synchronous
// load. The returned Watcher's Start method must be called to begin
// watching for subsequent changes.
func NewWatcher(path string, holder *Holder, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("cel: load config %s: %w", path, err)
	}

	cfg, err := FromViper(v)
	if err != nil {
		return nil, err
	}
	holder.Swap(cfg)

	return &Watcher{v: v, holder: holder, logger: logger}, nil
}

// Start begins watching cel.conf for changes, reloading and swapping the
// Holder's config on every write. It returns immediately; the watch runs
// on viper's own fsnotify goroutine for the lifetime of the process (or
// until the caller's context is otherwise torn down at a higher layer —
// viper itself exposes no stop hook for WatchConfig).
func (w *Watcher) Start() {
	w.v.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := FromViper(w.v)
		if err != nil {
			w.logger.Error("cel: config reload rejected", "err", err, "file", e.Name)
			return
		}
		if err := w.holder.Swap(cfg); err != nil {
			w.logger.Error("cel: config reload rejected", "err", err, "file", e.Name)
			return
		}
		w.logger.Info("cel: config reloaded", "file", e.Name)
	})
	w.v.WatchConfig()
}

// Reload forces a synchronous re-read of cel.conf, for the CLI `reload`
// subcommand and the CEL engine's own `engine_reload` equivalent.
func (w *Watcher) Reload() error {
	if err := w.v.ReadInConfig(); err != nil {
		return fmt.Errorf("cel: reload config: %w", err)
	}
	cfg, err := FromViper(w.v)
	if err != nil {
		return err
	}
	return w.holder.Swap(cfg)
}
