package tui

import "time"

// Messages for the tea program (polling-based)

// TickMsg is sent periodically to refresh the rendered snapshot.
type TickMsg struct {
	Time time.Time
}

// ActionDoneMsg is sent when a dispatched command or identity track finishes.
type ActionDoneMsg struct{}
