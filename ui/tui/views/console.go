package views

import (
	"fmt"
	"strings"

	"circleprogress/ui/tui/state"

	"github.com/charmbracelet/lipgloss"
)

type ConsoleView struct{}

func (v ConsoleView) Render(s state.AppState, props ViewProps) string {
	header := MenuHeaderStyle.Width(props.Width).Render("Event Console")

	availableHeight := props.Height - lipgloss.Height(header) - 4
	if availableHeight < 1 {
		availableHeight = 1
	}

	lines := s.ConsoleLogs
	totalLines := len(lines)
	start, end := visibleWindow(totalLines, availableHeight, props.ScrollY)
	viewContent := strings.Join(lines[start:end], "\n")

	box := lipgloss.NewStyle().
		Width(props.Width-4).
		Height(availableHeight).
		Padding(0, 1).
		Render(viewContent)

	footerText := fmt.Sprintf("Scroll: %d/%d • Press 'b' to go back", start, totalLines)
	if totalLines > availableHeight {
		footerText += " • Use ↑/↓ to scroll"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.NewStyle().Padding(1, 2).Render(box),
		lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#555")).Render(footerText),
	)
}

// visibleWindow clamps a scroll offset so the window of height lines stays
// inside total lines, and returns the slice bounds to show.
func visibleWindow(total, height, scroll int) (start, end int) {
	start = max(0, min(scroll, total-height))
	end = min(total, start+height)
	return start, end
}
