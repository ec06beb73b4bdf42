package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokercoach/coach"
	"github.com/lox/pokercoach/poker"
)

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1)

	HandInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ActionsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// CardStyle colours red suits red
func CardStyle(c poker.Card) lipgloss.Style {
	if c.Suit == poker.Hearts || c.Suit == poker.Diamonds {
		return RedCardStyle
	}
	return BlackCardStyle
}

// VerdictStyle picks the colour a verdict is rendered in
func VerdictStyle(v coach.Verdict) lipgloss.Style {
	switch v {
	case coach.VerdictPerfect, coach.VerdictGreat:
		return SuccessStyle
	case coach.VerdictGood, coach.VerdictNeutral:
		return WarningStyle
	default:
		return ErrorStyle
	}
}
