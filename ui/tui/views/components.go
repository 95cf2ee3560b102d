package views

import (
	"circleprogress/internal/animator"
	"circleprogress/internal/engine"
	"circleprogress/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func ColorForStatus(status string) lipgloss.Style {
	sStyle := styles.StatusStyle
	if status == engine.StatusWarning {
		return sStyle.Foreground(styles.Warning)
	} else if status == engine.StatusCritical {
		return sStyle.Foreground(styles.Critical)
	}
	return sStyle.Foreground(styles.Healthy)
}

// StateBadge renders the animator state as a short colored tag.
func StateBadge(st animator.State) string {
	color := styles.Idle
	switch st {
	case animator.Running:
		color = BrandColor
	case animator.Paused:
		color = styles.Warning
	}
	return styles.StatusStyle.Foreground(color).Render("[" + st.String() + "]")
}
