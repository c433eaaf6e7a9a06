package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"pulse/session"
)

// Model is the terminal client over an in-process session. All domain state
// lives in the session; the model only keeps the command input line and the
// last snapshot it rendered.
type Model struct {
	Session *session.Session

	Input    string
	Snapshot session.Snapshot
	Width    int
	Height   int
}

// NewModel creates a new TUI model
func NewModel(s *session.Session) Model {
	return Model{
		Session:  s,
		Snapshot: s.Snapshot(),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tickCmd()
}
