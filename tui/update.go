package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"pulse/types"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	case TickMsg:
		m.Snapshot = m.Session.Snapshot()
		return m, tickCmd()
	case ActionDoneMsg:
		m.Snapshot = m.Session.Snapshot()
		return m, nil
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Session.Stop()
		return m, tea.Quit

	case "enter":
		text := m.Input
		m.Input = ""
		if text == "" {
			return m, nil
		}
		return m, dispatchCmd(m.Session, text)

	case "backspace":
		if len(m.Input) > 0 {
			runes := []rune(m.Input)
			m.Input = string(runes[:len(runes)-1])
		}
		return m, nil

	case "tab":
		m.Session.SetMode(nextMode(m.Snapshot.Mode))
		m.Snapshot = m.Session.Snapshot()
		return m, nil

	case "esc":
		// Back to the stream from any mode
		m.Session.SetMode(types.ModeNews)
		m.Snapshot = m.Session.Snapshot()
		return m, nil

	case "ctrl+l":
		m.Session.SetLive(!m.Snapshot.Live)
		m.Snapshot = m.Session.Snapshot()
		return m, nil

	case "up":
		if m.Snapshot.Mode == types.ModeReel && m.Snapshot.ActiveReel > 0 {
			m.Session.SetReelScroll(float64(m.Snapshot.ActiveReel-1), 1)
			m.Snapshot = m.Session.Snapshot()
		}
		return m, nil

	case "down":
		if m.Snapshot.Mode == types.ModeReel && m.Snapshot.ActiveReel < len(m.Snapshot.Reel)-1 {
			m.Session.SetReelScroll(float64(m.Snapshot.ActiveReel+1), 1)
			m.Snapshot = m.Session.Snapshot()
		}
		return m, nil

	case "ctrl+t":
		if m.Snapshot.Mode != types.ModeReel {
			return m, nil
		}
		if item := m.activeReelItem(); item != nil && item.AccountHandle != "" {
			return m, trackCmd(m.Session, item.AccountHandle)
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.Input += string(msg.Runes)
	} else if msg.Type == tea.KeySpace {
		m.Input += " "
	}
	return m, nil
}

func (m Model) activeReelItem() *types.NewsItem {
	if m.Snapshot.ActiveReel < 0 || m.Snapshot.ActiveReel >= len(m.Snapshot.Reel) {
		return nil
	}
	return m.Snapshot.Reel[m.Snapshot.ActiveReel]
}

func nextMode(mode types.ViewMode) types.ViewMode {
	switch mode {
	case types.ModeNews:
		return types.ModeReel
	case types.ModeReel:
		return types.ModeCreative
	case types.ModeCreative:
		return types.ModeIntel
	default:
		return types.ModeNews
	}
}
