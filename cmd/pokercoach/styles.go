package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokercoach/coach"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	goodStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#96CEB4"))
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFEAA7"))
	badStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

func verdictStyle(v coach.Verdict) lipgloss.Style {
	switch v {
	case coach.VerdictPerfect, coach.VerdictGreat:
		return goodStyle
	case coach.VerdictGood, coach.VerdictNeutral:
		return warnStyle
	default:
		return badStyle
	}
}
