package styles

import "github.com/charmbracelet/lipgloss"

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Status colors shared by readings and the animation badge.
	Healthy  = lipgloss.Color("46")
	Warning  = lipgloss.Color("220")
	Critical = lipgloss.Color("196")
	Idle     = lipgloss.Color("#666")

	TitleStyle = lipgloss.NewStyle().
			MarginLeft(1).
			MarginRight(2).
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("#FFF7DB"))

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(1, 2).
			Margin(1, 1)

	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFF"))
)
