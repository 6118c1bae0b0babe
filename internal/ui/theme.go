package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shared theme for the CLI and the dashboard.
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconQuest   = "⚔️"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconGold    = "💰"
	IconLevel   = "🆙"
	IconStore   = "🛒"
	IconFocus   = "🌲"
	IconScroll  = "📜"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconBell    = "🔔"
	IconCrown   = "👑"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
	BadgePenalty = lipgloss.NewStyle().Bold(true).Foreground(cBad).Render("SYSTEM PENALTY")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// XPBar renders a simple progress bar for xp toward the next level.
func XPBar(xp, xpToNext, width int) string {
	if width < 4 {
		width = 4
	}
	if xpToNext <= 0 {
		xpToNext = 1
	}
	filled := xp * width / xpToNext
	if filled > width {
		filled = width
	}
	bar := Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %d/%d", bar, xp, xpToNext)
}
