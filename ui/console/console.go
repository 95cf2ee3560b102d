package console

import (
	"fmt"
	"io"
	"strings"

	"circleprogress/internal/engine"
	"circleprogress/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// Print writes a rendered ring frame followed by its report in a compact
// format.
func Print(w io.Writer, frame string, report output.Report) {
	fmt.Fprintf(w, "%s%s %s%s\n", colorCyan, "■", "CIRCLEPROGRESS SNAPSHOT", colorReset)
	fmt.Fprintln(w, strings.TrimRight(frame, "\n"))

	for _, sec := range report.Sections {
		// Section Header
		fmt.Fprintf(w, "%s%s%s\n", colorCyan, "─ "+sec.Title, colorReset)

		for _, it := range sec.Items {
			label := it.Label
			if len(label) > 20 {
				label = label[:17] + "..."
			}

			valStr := ""
			if it.Unit != "" {
				valStr = fmt.Sprintf("%.1f%s", it.Value, it.Unit)
			} else if it.Note != "" {
				valStr = it.Note
				if len(valStr) > 25 {
					valStr = valStr[:22] + "..."
				}
			}

			// Dots leader
			dots := strings.Repeat("·", max(0, 22-len(label)))

			fmt.Fprintf(w, "  %s%s %10s%s\n", label, colorCyan+dots+colorReset, valStr, statusMarker(it.Status))
		}
	}
	fmt.Fprintln(w)
}

func statusMarker(status string) string {
	color := colorFor(status)
	switch status {
	case "":
		return ""
	case engine.StatusWarning:
		return fmt.Sprintf(" %s!%s", color, colorReset)
	case engine.StatusCritical:
		return fmt.Sprintf(" %sX%s", color, colorReset)
	case engine.StatusHealthy:
		return fmt.Sprintf(" %s✓%s", color, colorReset)
	}
	return fmt.Sprintf(" %s%s%s", color, status[:1], colorReset)
}

func colorFor(status string) string {
	switch status {
	case engine.StatusWarning:
		return colorYellow
	case engine.StatusCritical:
		return colorRed
	default:
		return colorGreen
	}
}
