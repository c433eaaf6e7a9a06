package tui

import (
	"fmt"
	"strings"

	"pulse/types"
)

const maxVisibleStories = 8

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("📡 Pulse Command Deck"))
	b.WriteString("\n")

	// Status line: topic | live | mode
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	// Progress / error
	if m.Snapshot.Busy && m.Snapshot.Progress != "" {
		b.WriteString(StatusStyle.Render("⏳ " + m.Snapshot.Progress))
		b.WriteString("\n\n")
	}
	if m.Snapshot.Error != "" {
		b.WriteString(ErrorStyle.Render("⚠ " + m.Snapshot.Error))
		b.WriteString("\n\n")
	}

	// Main panel per mode
	switch m.Snapshot.Mode {
	case types.ModeReel:
		b.WriteString(m.reelView())
	case types.ModeIntel:
		b.WriteString(m.dossierView())
	case types.ModeCreative:
		b.WriteString(m.assetsView())
	default:
		b.WriteString(m.newsView())
	}
	b.WriteString("\n")

	// Command line
	b.WriteString(HighlightStyle.Render("> " + m.Input + "█"))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("enter: dispatch | tab: cycle view | esc: stream | ctrl+l: live | ↑/↓: reel | ctrl+t: track author | ctrl+c: quit"))

	return b.String()
}

func (m Model) statusLine() string {
	live := "⏸ PAUSED"
	style := InfoStyle
	if m.Snapshot.Live {
		live = "● LIVE"
		style = StatusStyle
	}
	return fmt.Sprintf("%s  %s  %s",
		style.Render(live),
		InfoStyle.Render("topic: "+m.Snapshot.Topic),
		InfoStyle.Render("view: "+string(m.Snapshot.Mode)))
}

func (m Model) newsView() string {
	if len(m.Snapshot.News) == 0 {
		return InfoStyle.Render("Scanning the wire...")
	}

	var b strings.Builder
	count := len(m.Snapshot.News)
	if count > maxVisibleStories {
		count = maxVisibleStories
	}
	for _, item := range m.Snapshot.News[:count] {
		b.WriteString(renderStoryLine(item))
		b.WriteString("\n")
	}
	if len(m.Snapshot.News) > count {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("   ... %d more stories", len(m.Snapshot.News)-count)))
		b.WriteString("\n")
	}
	return b.String()
}

func renderStoryLine(item *types.NewsItem) string {
	title := item.Title
	if item.Sentiment == types.SentimentBreaking {
		title = BreakingStyle.Render("🔴 " + title)
	}
	meta := fmt.Sprintf("%s · %s · %s", item.Platform, item.Category, item.Timestamp.Format("15:04"))
	return fmt.Sprintf("%s\n   %s", title, InfoStyle.Render(meta))
}

func (m Model) reelView() string {
	if len(m.Snapshot.Reel) == 0 {
		return InfoStyle.Render("No video stories in the current stream.")
	}

	idx := m.Snapshot.ActiveReel
	if idx < 0 || idx >= len(m.Snapshot.Reel) {
		idx = 0
	}
	item := m.Snapshot.Reel[idx]

	var b strings.Builder
	b.WriteString(item.Title)
	b.WriteString("\n\n")
	b.WriteString(item.Summary)
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render(fmt.Sprintf("@%s · %s", item.AccountHandle, item.MediaURL)))

	box := BoxStyle.Render(b.String())
	counter := InfoStyle.Render(fmt.Sprintf("reel %d/%d", idx+1, len(m.Snapshot.Reel)))
	return box + "\n" + counter + "\n"
}

func (m Model) dossierView() string {
	d := m.Snapshot.Dossier
	if d == nil {
		return InfoStyle.Render("No identity tracked yet. Try: track @handle")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s — %s\n", d.FullName, d.Occupation))
	b.WriteString(fmt.Sprintf("Residence: %s\n", d.CurrentResidence))
	if len(d.FamilyLinks) > 0 {
		b.WriteString("Family: " + strings.Join(d.FamilyLinks, ", ") + "\n")
	}
	if len(d.PublicIdentifiers) > 0 {
		b.WriteString("Identifiers: " + strings.Join(d.PublicIdentifiers, ", ") + "\n")
	}
	if d.RecentActivity != "" {
		b.WriteString("\nRecent activity:\n  " + d.RecentActivity + "\n")
	}
	b.WriteString(fmt.Sprintf("\nFootprint score: %.0f%%", d.DigitalFootprintScore))
	if d.Location != nil {
		b.WriteString(fmt.Sprintf("\nLast seen: %s (%.4f, %.4f)", d.Location.Address, d.Location.Lat, d.Location.Lng))
	}
	return BoxStyle.Render(b.String()) + "\n"
}

func (m Model) assetsView() string {
	if len(m.Snapshot.Assets) == 0 {
		return InfoStyle.Render("No generated assets yet. Try: generate an image of ...")
	}

	var b strings.Builder
	for _, asset := range m.Snapshot.Assets {
		icon := "🖼"
		if asset.Kind == types.MediaVideo {
			icon = "🎬"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", icon, asset.Prompt))
		b.WriteString(InfoStyle.Render(fmt.Sprintf("   %s · %s", asset.Timestamp.Format("15:04:05"), asset.URL)))
		b.WriteString("\n")
	}
	return b.String()
}
