package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pulse/session"
)

// tickCmd creates a command that ticks every 500ms to refresh the snapshot
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// dispatchCmd runs one free-text command through the session. Long pipelines
// (video) block this command, not the UI; progress arrives via ticks.
func dispatchCmd(s *session.Session, text string) tea.Cmd {
	return func() tea.Msg {
		s.HandleRequest(context.Background(), text)
		return ActionDoneMsg{}
	}
}

// trackCmd looks up the author behind the active reel entry.
func trackCmd(s *session.Session, handle string) tea.Cmd {
	return func() tea.Msg {
		s.TrackIdentity(context.Background(), handle)
		return ActionDoneMsg{}
	}
}
