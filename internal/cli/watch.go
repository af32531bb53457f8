package cli

import (
	"fmt"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

// Watch renders a live terminal dashboard of a running engine's config and
// registered backends ("cel watch"), polling addr's /status endpoint once
// a second until 'q' or Ctrl-C is pressed.
func Watch(addr string) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("cel: init terminal: %w", err)
	}
	defer ui.Close()

	status := widgets.NewParagraph()
	status.Title = "cel watch: " + addr
	status.SetRect(0, 0, 60, 12)

	render := func() {
		s, err := FetchStatus(addr)
		if err != nil {
			status.Text = fmt.Sprintf("unreachable: %v\n", err)
			ui.Render(status)
			return
		}
		text := fmt.Sprintf("Logging: %v\nDateFormat: %s\nEvents tracked: %d\nApps tracked: %d\nSubscribers: %d\n",
			s.Enabled, s.DateFormat, len(s.Events), len(s.Apps), len(s.Backends))
		for _, name := range s.Backends {
			text += fmt.Sprintf(" - %s\n", name)
		}
		status.Text = text
		ui.Render(status)
	}

	render()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	events := ui.PollEvents()
	for {
		select {
		case e := <-events:
			switch e.ID {
			case "q", "<C-c>":
				return nil
			}
		case <-ticker.C:
			render()
		}
	}
}
