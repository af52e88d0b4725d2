package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderInputFrame draws a rounded bordered container around a rendered input view.
// Pass the already-rendered input view string.
func renderInputFrame(inputView string, focused bool, contentWidth int) string {
	borderColor := MutedColor
	if focused {
		borderColor = AccentColor
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(contentWidth + 4).
		Render(inputView)
}

// renderMuted renders text in muted color (utility wrapper).
func renderMuted(text string) string {
	return lipgloss.NewStyle().Foreground(MutedColor).Render(text)
}
