package tui

import "github.com/charmbracelet/lipgloss"

const AppName = "Podcasts"

// Brand colors
var (
	PrimaryColor   = lipgloss.Color("#FF6B6B") // Warm coral
	SecondaryColor = lipgloss.Color("#4ECDC4") // Teal
	AccentColor    = lipgloss.Color("#95E1D3") // Mint
	TextColor      = lipgloss.Color("#EAEAEA") // Soft white
	MutedColor     = lipgloss.Color("#94A3B8") // Muted gray-blue
)

// Styled components
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	FeedTitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true).
				Italic(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Empty style for resetting
	EmptyStyle = lipgloss.NewStyle()
)

// ContentWrapper returns a style for wrapping content with width and height constraints
func ContentWrapper(width, height int) lipgloss.Style {
	return EmptyStyle.Width(width).Height(height).MaxHeight(height)
}
