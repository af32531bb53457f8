// Package httpapi exposes the engine's operational surface: a liveness
// probe and a JSON rendering of the same status information the CLI
// "status" subcommand prints, covering config and registered backends
// (§6).
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/webitel/cel-engine/config"
	"github.com/webitel/cel-engine/internal/registry"
)

// Server is the minimal ops HTTP surface: no auth, no TLS termination —
// it is meant to sit behind the platform's own ingress, mirroring how the
// teacher's own health endpoint is left unauthenticated.
type Server struct {
	http *http.Server
	log  *slog.Logger
}

// StatusResponse is the JSON shape served at /status, reused by the "cel
// status" CLI subcommand when querying a running engine remotely.
type StatusResponse struct {
	Enabled    bool     `json:"enabled"`
	DateFormat string   `json:"dateformat"`
	Events     []string `json:"events"`
	Apps       []string `json:"apps"`
	Backends   []string `json:"backends"`
}

// NewServer builds the chi-routed ops server. addr is an empty string to
// disable the server entirely (the caller then skips Start).
func NewServer(addr string, holder *config.Holder, watcher *config.Watcher, backends *registry.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/reload", func(w http.ResponseWriter, req *http.Request) {
		if err := watcher.Reload(); err != nil {
			logger.Error("httpapi: reload rejected", "err", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/status", func(w http.ResponseWriter, req *http.Request) {
		cfg := holder.Get()
		resp := StatusResponse{
			Enabled:    cfg.Enable,
			DateFormat: cfg.DateFormat,
			Events:     cfg.Events.Names(),
			Backends:   backends.Names(),
		}
		for app := range cfg.Apps {
			resp.Apps = append(resp.Apps, app)
		}
		sort.Strings(resp.Apps)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("httpapi: encode status failed", "err", err)
		}
	})

	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: logger,
	}
}

func (s *Server) Start() error {
	s.log.Info("httpapi: listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
