package views

import (
	"fmt"

	"circleprogress/ui/tui/state"
	"circleprogress/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

type GaugeView struct{}

func (v GaugeView) Render(s state.AppState, props ViewProps) string {
	title := "Manual Ring Control"
	if s.Source != "" {
		title = "Watching " + s.Source
	}
	header := MenuHeaderStyle.Width(props.Width).Render(title)

	status := lipgloss.JoinHorizontal(lipgloss.Left,
		props.SpinnerView,
		styles.TitleStyle.Render(props.Label),
		StateBadge(props.RingState),
	)

	ringCard := styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center,
			status,
			props.RingView,
		),
	)

	right := lipgloss.JoinVertical(lipgloss.Left,
		v.renderReading(s),
		props.ChartView,
	)

	controls := "[0-9] Animate to n×10 • [F] Fill • [+/-] Nudge 5 • [S/Space/Click] Pause/Resume • [B] Back • [Q] Quit"
	if s.Source != "" {
		controls = "[S/Space/Click] Pause/Resume • [B] Back • [Q] Quit"
	}

	return props.scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, ringCard, right),
		lipgloss.NewStyle().Padding(0, 2).Foreground(styles.Subtle).Render(controls),
	))
}

func (v GaugeView) renderReading(s state.AppState) string {
	var body string
	switch {
	case s.Err != nil:
		body = ColorForStatus("CRIT").Render(fmt.Sprintf("Error: %v", s.Err))
	case s.Source == "":
		body = "Driven from the keyboard."
	case !s.HasSample:
		body = "Waiting for the first reading..."
	default:
		r := s.Result
		body = fmt.Sprintf("%-15s : %s\n%-15s : %s\n%-15s : %s",
			r.Name, ColorForStatus(r.Status).Render(fmt.Sprintf("%.1f%% [%s]", r.Value, r.Status)),
			"Detail", s.Sample.Detail,
			"Last Update", s.LastUpdate.Format("15:04:05"),
		)
	}

	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render("Reading"),
			body,
		),
	)
}
