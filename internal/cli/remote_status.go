package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/webitel/cel-engine/internal/httpapi"
)

// TriggerReload calls a running engine's /reload endpoint, forcing a
// synchronous re-read of cel.conf instead of waiting on fsnotify.
func TriggerReload(addr string) error {
	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Post("http://"+addr+"/reload", "", nil)
	if err != nil {
		return fmt.Errorf("cel: trigger reload at %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("cel: reload rejected: %s", string(body))
	}
	return nil
}

// FetchStatus queries a running engine's /status endpoint (§6: "cel show
// status" against a live instance rather than a cold read of cel.conf).
func FetchStatus(addr string) (*httpapi.StatusResponse, error) {
	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + addr + "/status")
	if err != nil {
		return nil, fmt.Errorf("cel: fetch status from %s: %w", addr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cel: status endpoint %s returned %d", addr, resp.StatusCode)
	}

	var out httpapi.StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("cel: decode status response: %w", err)
	}
	return &out, nil
}

// PrintRemoteStatus renders a fetched StatusResponse in the same
// three-pass order as PrintStatus.
func PrintRemoteStatus(w io.Writer, s *httpapi.StatusResponse) {
	if s.Enabled {
		fmt.Fprintln(w, "CEL Logging: Enabled")
	} else {
		fmt.Fprintln(w, "CEL Logging: Disabled")
	}
	for _, name := range s.Events {
		fmt.Fprintf(w, "CEL Tracking Event: %s\n", name)
	}
	for _, app := range s.Apps {
		fmt.Fprintf(w, "CEL Tracking Application: %s\n", app)
	}
	for _, name := range s.Backends {
		fmt.Fprintf(w, "CEL Event Subscriber: %s\n", name)
	}
}
